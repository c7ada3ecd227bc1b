package restapi

import (
	"errors"
	"net/http"

	"github.com/astonmobility/transitmap/internal/geo"
	"github.com/astonmobility/transitmap/internal/gtfs"
	"github.com/astonmobility/transitmap/internal/network"
	"github.com/astonmobility/transitmap/internal/utils"
)

const (
	defaultBufferMeters   = 900
	defaultMinStopsInArea = 3
)

// networkHandler builds the network for the configured region and, when all
// four bbox parameters are present, re-filters it to the box with shape
// clipping. The feed is re-read on every request so the response always
// reflects the current snapshot.
func (api *RestAPI) networkHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	bufferMeters, fieldErrors := utils.ParseIntParam(queryParams, "bufferMeters", defaultBufferMeters, nil)
	minStopsInArea, fieldErrors := utils.ParseIntParam(queryParams, "minStopsInArea", defaultMinStopsInArea, fieldErrors)

	minLat, hasMinLat, fieldErrors := utils.ParseFloatParam(queryParams, "minLat", fieldErrors)
	minLng, hasMinLng, fieldErrors := utils.ParseFloatParam(queryParams, "minLng", fieldErrors)
	maxLat, hasMaxLat, fieldErrors := utils.ParseFloatParam(queryParams, "maxLat", fieldErrors)
	maxLng, hasMaxLng, fieldErrors := utils.ParseFloatParam(queryParams, "maxLng", fieldErrors)

	if err := utils.ValidateBufferMeters(bufferMeters); err != nil {
		fieldErrors["bufferMeters"] = append(fieldErrors["bufferMeters"], err.Error())
	}

	hasBBox := hasMinLat && hasMinLng && hasMaxLat && hasMaxLng
	if hasBBox {
		for key, errs := range utils.ValidateBBoxParams(minLat, minLng, maxLat, maxLng) {
			fieldErrors[key] = append(fieldErrors[key], errs...)
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	tables, err := api.FeedManager.Tables()
	if err != nil {
		if errors.Is(err, gtfs.ErrFeedNotFound) {
			api.badRequestResponse(w, r, err)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	net, err := network.Build(tables, network.BuildOptions{
		Center:       geo.Point{Lat: api.Config.CenterLat, Lng: api.Config.CenterLng},
		BufferMeters: bufferMeters,
		Source:       api.FeedManager.SourceLabel(),
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if hasBBox {
		box := geo.BBox{MinLat: minLat, MinLng: minLng, MaxLat: maxLat, MaxLng: maxLng}
		net = network.FilterByBBox(net, box, minStopsInArea, true)
	}

	api.sendResponse(w, r, net)
}
