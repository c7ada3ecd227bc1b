package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/astonmobility/transitmap/internal/app"
	"github.com/astonmobility/transitmap/internal/gtfs"
	"github.com/astonmobility/transitmap/internal/logging"
	"github.com/astonmobility/transitmap/internal/restapi"
)

func main() {
	// .env carries the TfWM API credentials during development; missing the
	// file is fine in production where real env vars are set.
	_ = godotenv.Load()

	var cfg app.Config
	var gtfsCfg gtfs.Config
	var originsFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.Float64Var(&cfg.CenterLat, "center-lat", 52.492, "Latitude of the region center")
	flag.Float64Var(&cfg.CenterLng, "center-lng", -1.890, "Longitude of the region center")
	flag.StringVar(&originsFlag, "cors-origins",
		"http://localhost:5173,http://localhost:8080,http://127.0.0.1:5173,http://127.0.0.1:8080",
		"Comma-separated CORS origins for the map front end")
	flag.StringVar(&gtfsCfg.StaticSource, "gtfs-source", "", "Optional local path or URL for a static GTFS zip (bypasses the TfWM download)")
	flag.StringVar(&gtfsCfg.CachePath, "gtfs-cache", "cache/tfwm_gtfs.zip", "Path for the downloaded GTFS zip")
	flag.BoolVar(&gtfsCfg.Verbose, "verbose", false, "Log per-request feed load details")
	flag.Parse()

	for _, origin := range strings.Split(originsFlag, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	gtfsCfg.AppID = os.Getenv("TFWM_APP_ID")
	gtfsCfg.AppKey = os.Getenv("TFWM_APP_KEY")

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:      cfg,
		GtfsConfig:  gtfsCfg,
		Logger:      logger,
		FeedManager: gtfs.NewManager(gtfsCfg, logger),
	}
	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Minute,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env,
		"hasCredentials", application.FeedManager.Status().HasCredentials)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
