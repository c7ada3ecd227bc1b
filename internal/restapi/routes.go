package restapi

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/julienschmidt/httprouter"
)

// Routes assembles the router with CORS and request logging applied. The CORS
// origins default to the Vite dev servers the front end runs on.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/health", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/network", api.networkHandler)
	router.HandlerFunc(http.MethodGet, "/api/gtfs/status", api.feedStatusHandler)
	router.HandlerFunc(http.MethodPost, "/api/gtfs/refresh", api.feedRefreshHandler)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   api.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	requestLogging := NewRequestLoggingMiddleware(api.Logger)

	return requestLogging(corsHandler(router))
}
