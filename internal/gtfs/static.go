package gtfs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jamespfennell/gtfs"
)

// ErrFeedNotFound indicates that no feed snapshot is available yet; the caller
// should refresh the feed (or point StaticSource at an existing zip).
var ErrFeedNotFound = errors.New("gtfs feed not found")

// rawFeedData reads a GTFS zip from either a URL or a local file.
func rawFeedData(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFeedNotFound, source)
			}
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer resp.Body.Close() // nolint

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
	}
	return b, nil
}

// loadStatic loads and parses GTFS data from either a URL or a local file.
func loadStatic(source string, isLocalFile bool) (*gtfs.Static, error) {
	b, err := rawFeedData(source, isLocalFile)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return staticData, nil
}
