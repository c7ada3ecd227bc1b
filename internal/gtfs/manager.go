package gtfs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Manager owns access to the feed snapshot on disk. Every Tables call
// re-reads and re-parses the feed so a request always sees the current
// snapshot; there is no caching of parsed data or built networks.
type Manager struct {
	config Config
	logger *slog.Logger

	mu            sync.Mutex
	lastRefreshed time.Time
}

// Status describes the state of the feed pipeline for the status endpoint.
type Status struct {
	HasCredentials bool       `json:"hasCredentials"`
	CacheZipExists bool       `json:"cacheZipExists"`
	LastRefreshed  *time.Time `json:"lastRefreshed"`
}

func NewManager(config Config, logger *slog.Logger) *Manager {
	return &Manager{
		config: config,
		logger: logger,
	}
}

// SourceLabel is the provenance string recorded in network meta.
func (manager *Manager) SourceLabel() string {
	if manager.config.SourceLabel != "" {
		return manager.config.SourceLabel
	}
	return "tfwm-gtfs"
}

// source resolves where the feed zip is read from. An explicit StaticSource
// wins; otherwise the download cache is used.
func (manager *Manager) source() (string, bool) {
	if manager.config.StaticSource != "" {
		src := manager.config.StaticSource
		isLocalFile := !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://")
		return src, isLocalFile
	}
	return manager.config.CachePath, true
}

// Tables loads a fresh snapshot of the five feed tables.
func (manager *Manager) Tables() (*Tables, error) {
	source, isLocalFile := manager.source()

	start := time.Now()
	staticData, err := loadStatic(source, isLocalFile)
	if err != nil {
		return nil, err
	}

	tables, err := TablesFromStatic(staticData)
	if err != nil {
		return nil, fmt.Errorf("error flattening GTFS data: %w", err)
	}

	if manager.config.Verbose {
		manager.logger.Info("loaded GTFS tables",
			"source", source,
			"stops", len(tables.Stops),
			"routes", len(tables.Routes),
			"trips", len(tables.Trips),
			"duration", time.Since(start).String(),
		)
	}

	return tables, nil
}

// Refresh downloads a new feed snapshot into the cache file.
func (manager *Manager) Refresh(ctx context.Context) error {
	if !manager.config.hasCredentials() {
		return fmt.Errorf("missing TFWM_APP_ID/TFWM_APP_KEY credentials")
	}

	if err := Download(ctx, manager.config); err != nil {
		return err
	}

	manager.mu.Lock()
	manager.lastRefreshed = time.Now()
	manager.mu.Unlock()

	manager.logger.Info("refreshed GTFS feed", "cache", manager.config.CachePath)
	return nil
}

// Status reports credential and cache state.
func (manager *Manager) Status() Status {
	manager.mu.Lock()
	last := manager.lastRefreshed
	manager.mu.Unlock()

	status := Status{
		HasCredentials: manager.config.hasCredentials(),
	}
	if _, err := os.Stat(manager.config.CachePath); err == nil {
		status.CacheZipExists = true
	}
	if !last.IsZero() {
		status.LastRefreshed = &last
	}
	return status
}
