package gtfs

// Config holds the feed-acquisition settings. StaticSource, when set, points
// at a local file or URL and bypasses the TfWM download path entirely;
// otherwise requests are served from the cache file maintained by Refresh.
type Config struct {
	// StaticSource is an optional local path or URL for a GTFS zip.
	StaticSource string
	// CachePath is where the downloaded TfWM feed zip is stored.
	CachePath string
	// AppID and AppKey are the TfWM API credentials used by Refresh.
	AppID  string
	AppKey string
	// SourceLabel is the provenance string recorded in network meta.
	SourceLabel string
	Verbose     bool
}

func (config Config) hasCredentials() bool {
	return config.AppID != "" && config.AppKey != ""
}
