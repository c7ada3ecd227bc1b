// Package restapi exposes the network-building pipeline over HTTP for the map
// front end.
package restapi

import (
	"github.com/astonmobility/transitmap/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance around the application container.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
