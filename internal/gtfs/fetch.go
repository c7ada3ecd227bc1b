package gtfs

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	tfwmFeedURLHTTP  = "http://api.tfwm.org.uk/gtfs/tfwm_gtfs.zip"
	tfwmFeedURLHTTPS = "https://api.tfwm.org.uk/gtfs/tfwm_gtfs.zip"

	downloadTimeout = 120 * time.Second
	userAgent       = "transitmap/0.1"
)

// downloadAttempt is one way of asking the upstream API for the feed. The
// TfWM endpoint is erratic: plain HTTP sometimes works where HTTPS 403s, and
// some deployments want app_id only. Attempts are tried in order and the last
// error is reported if none succeeds.
type downloadAttempt struct {
	url        string
	includeKey bool
	// skipVerify disables TLS verification; the HTTPS endpoint serves a
	// certificate that does not validate.
	skipVerify bool
}

func downloadAttempts(config Config) []downloadAttempt {
	return []downloadAttempt{
		{url: tfwmFeedURLHTTP, includeKey: true},
		{url: tfwmFeedURLHTTP, includeKey: false},
		{url: tfwmFeedURLHTTPS, includeKey: true, skipVerify: true},
		{url: tfwmFeedURLHTTPS, includeKey: false, skipVerify: true},
	}
}

// looksLikeZip reports whether content starts with the ZIP magic bytes. The
// API returns HTML error pages with a 200 status often enough that the
// signature check is required.
func looksLikeZip(content []byte) bool {
	return len(content) >= 2 && content[0] == 'P' && content[1] == 'K'
}

// Download fetches the TfWM GTFS zip and writes it to config.CachePath. It
// tries each endpoint/credential combination in turn and fails only when all
// attempts are exhausted.
func Download(ctx context.Context, config Config) error {
	if err := os.MkdirAll(filepath.Dir(config.CachePath), 0o755); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}

	var lastErr error
	for _, attempt := range downloadAttempts(config) {
		b, err := fetchOnce(ctx, config, attempt)
		if err != nil {
			lastErr = err
			continue
		}

		if err := writeFileAtomic(config.CachePath, b); err != nil {
			return fmt.Errorf("error writing feed cache: %w", err)
		}
		return nil
	}

	return fmt.Errorf("failed to download GTFS zip after multiple attempts: %w", lastErr)
}

func fetchOnce(ctx context.Context, config Config, attempt downloadAttempt) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, attempt.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building feed request: %w", err)
	}

	params := url.Values{}
	params.Set("app_id", config.AppID)
	if attempt.includeKey {
		params.Set("app_key", config.AppKey)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")

	client := &http.Client{}
	if attempt.skipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // nolint:gosec
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, attempt.url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	if !looksLikeZip(b) {
		return nil, fmt.Errorf("response from %s was not a ZIP (content-type %s)",
			attempt.url, resp.Header.Get("Content-Type"))
	}

	return b, nil
}

func writeFileAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
