package network

import (
	"math"

	"github.com/astonmobility/transitmap/internal/geo"
	"github.com/astonmobility/transitmap/internal/models"
)

// FilterByBBox restricts an already-built network to a bounding box. Stops
// outside the box are dropped, routes keeping fewer than minStopsInArea
// in-box stops are dropped, and when clipShapes is set each surviving route's
// polyline is clipped to the box unless clipping would leave fewer than two
// points, in which case the original polyline is kept.
//
// Unlike the builder, the filter is best-effort: a stop or shape point with a
// non-finite coordinate is skipped, never an error. The input network is not
// mutated; unclipped sub-slices may be aliased by the result. Route stop
// sequences are left intact, so they may still reference stops outside the
// box. Filter metadata is replaced, not accumulated: re-filtering by the same
// box is a fixed point.
func FilterByBBox(net *models.Network, bbox geo.BBox, minStopsInArea int, clipShapes bool) *models.Network {
	keepStopIDs := make(map[string]struct{})
	filteredStops := make([]models.Stop, 0)

	for _, stop := range net.Stops {
		if !finite(stop.Lat) || !finite(stop.Lng) {
			continue
		}
		if bbox.Contains(stop.Lat, stop.Lng) {
			keepStopIDs[stop.ID] = struct{}{}
			filteredStops = append(filteredStops, stop)
		}
	}

	filteredRoutes := make([]models.Route, 0)
	for _, route := range net.Routes {
		inArea := 0
		for _, id := range route.StopIDs {
			if _, ok := keepStopIDs[id]; ok {
				inArea++
			}
		}
		if inArea < minStopsInArea {
			continue
		}

		if clipShapes && len(route.Shape) > 0 {
			clipped := make([]models.LatLng, 0, len(route.Shape))
			for _, pt := range route.Shape {
				if !finite(pt.Lat()) || !finite(pt.Lng()) {
					continue
				}
				if bbox.Contains(pt.Lat(), pt.Lng()) {
					clipped = append(clipped, pt)
				}
			}
			// A 0-or-1-point polyline is useless; keep the original then.
			if len(clipped) >= 2 {
				route.Shape = clipped
			}
		}

		filteredRoutes = append(filteredRoutes, route)
	}

	meta := net.Meta
	meta.Filter = &models.FilterMeta{
		Type: "bbox",
		BBox: models.BBoxMeta{
			MinLat: bbox.MinLat,
			MinLng: bbox.MinLng,
			MaxLat: bbox.MaxLat,
			MaxLng: bbox.MaxLng,
		},
		MinStopsInArea: minStopsInArea,
		ClipShapes:     clipShapes,
	}

	return &models.Network{
		Stops:  filteredStops,
		Routes: filteredRoutes,
		Meta:   meta,
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
