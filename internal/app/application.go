package app

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/astonmobility/transitmap/internal/gtfs"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware.
type Application struct {
	Config      Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	FeedManager *gtfs.Manager
}

// Config holds the settings for the Application: the port to listen on, the
// operating environment, the region of interest the network is built around,
// and the front-end origins allowed through CORS. Values are read from
// command-line flags and the environment when the Application starts.
type Config struct {
	Port           int      `validate:"gt=0,lte=65535"`
	Env            string   `validate:"oneof=development staging production test"`
	CenterLat      float64  `validate:"gte=-90,lte=90"`
	CenterLng      float64  `validate:"gte=-180,lte=180"`
	AllowedOrigins []string `validate:"min=1,dive,required"`
}

// Validate checks the assembled configuration before the server starts.
func (config Config) Validate() error {
	v := validator.New()
	return v.Struct(config)
}
