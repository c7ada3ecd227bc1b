// Package network builds and filters the compact stop-and-polyline graph that
// the map front end consumes.
package network

import (
	"fmt"
	"sort"

	"github.com/astonmobility/transitmap/internal/geo"
	"github.com/astonmobility/transitmap/internal/gtfs"
	"github.com/astonmobility/transitmap/internal/models"
)

// DefaultBufferMeters is the builder's default radius around the region center.
const DefaultBufferMeters = 1500

const defaultSourceLabel = "tfwm-gtfs"

// BuildOptions selects the area of interest. When BBox is set it replaces the
// circular buffer around Center.
type BuildOptions struct {
	Center       geo.Point
	BufferMeters int
	BBox         *geo.BBox
	Source       string
}

// Build reduces a feed snapshot to the network around the area of interest.
//
// Stop selection is a circle of BufferMeters around Center (or the explicit
// BBox). Each route is represented by a single trip: the first trip, in feed
// row order, among trips that serve at least one selected stop. The route
// carries that trip's complete ordered stop sequence, even the parts outside
// the region, plus its shape polyline. Routes whose representative sequence
// never touches the selected stops are dropped.
//
// Output ordering follows feed row order throughout, so identical inputs
// produce identical output.
func Build(tables *gtfs.Tables, opts BuildOptions) (*models.Network, error) {
	if tables == nil {
		return nil, fmt.Errorf("no feed tables")
	}

	bufferMeters := opts.BufferMeters
	if bufferMeters <= 0 {
		bufferMeters = DefaultBufferMeters
	}
	source := opts.Source
	if source == "" {
		source = defaultSourceLabel
	}

	nearStops, nearSet := selectNearStops(tables.Stops, opts.Center, bufferMeters, opts.BBox)

	// Trips serving at least one selected stop. The whole stop-time table is
	// scanned; a candidate trip's itinerary is not restricted to the region.
	candidateTrips := make(map[string]struct{})
	for _, st := range tables.StopTimes {
		if _, ok := nearSet[st.StopID]; ok {
			candidateTrips[st.TripID] = struct{}{}
		}
	}

	// One representative trip per route: first candidate encountered in trip
	// row order. Deliberately not the most common stop pattern.
	repTrips := make(map[string]gtfs.TripRow)
	for _, trip := range tables.Trips {
		if _, ok := candidateTrips[trip.ID]; !ok {
			continue
		}
		if _, seen := repTrips[trip.RouteID]; !seen {
			repTrips[trip.RouteID] = trip
		}
	}

	repTripIDs := make(map[string]struct{}, len(repTrips))
	for _, trip := range repTrips {
		repTripIDs[trip.ID] = struct{}{}
	}

	stopTimesByTrip := make(map[string][]gtfs.StopTimeRow)
	for _, st := range tables.StopTimes {
		if _, ok := repTripIDs[st.TripID]; ok {
			stopTimesByTrip[st.TripID] = append(stopTimesByTrip[st.TripID], st)
		}
	}

	shapePaths := groupShapePoints(tables.ShapePoints)

	outRoutes := make([]models.Route, 0, len(repTrips))
	for _, route := range tables.Routes {
		trip, ok := repTrips[route.ID]
		if !ok {
			continue
		}

		stopIDs := orderedStopIDs(stopTimesByTrip[trip.ID])

		// A route must touch the region to be included.
		touches := false
		for _, id := range stopIDs {
			if _, ok := nearSet[id]; ok {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}

		shape := shapePaths[trip.ShapeID]
		if shape == nil {
			shape = []models.LatLng{}
		}

		color := route.Color
		if color == "" {
			color = models.DefaultRouteColor
		}

		outRoutes = append(outRoutes, models.Route{
			ID:          route.ID,
			ShortName:   route.ShortName,
			LongName:    route.LongName,
			Color:       color,
			StopIDs:     stopIDs,
			Shape:       shape,
			HeadwayMins: nil,
		})
	}

	outStops := make([]models.Stop, 0, len(nearStops))
	for _, s := range nearStops {
		outStops = append(outStops, models.NewStop(s.ID, s.Name, s.Lat, s.Lng))
	}

	return &models.Network{
		Stops:  outStops,
		Routes: outRoutes,
		Meta: models.Meta{
			Source:         source,
			BufferMeters:   bufferMeters,
			StopsReturned:  len(outStops),
			RoutesReturned: len(outRoutes),
		},
	}, nil
}

// selectNearStops returns the stops inside the area of interest, in feed row
// order, alongside their id set.
func selectNearStops(stops []gtfs.StopRow, center geo.Point, bufferMeters int, bbox *geo.BBox) ([]gtfs.StopRow, map[string]struct{}) {
	bufferKM := float64(bufferMeters) / 1000.0

	near := make([]gtfs.StopRow, 0)
	nearSet := make(map[string]struct{})
	for _, s := range stops {
		var inside bool
		if bbox != nil {
			inside = bbox.Contains(s.Lat, s.Lng)
		} else {
			inside = geo.DistanceKM(geo.Point{Lat: s.Lat, Lng: s.Lng}, center) <= bufferKM
		}
		if inside {
			near = append(near, s)
			nearSet[s.ID] = struct{}{}
		}
	}
	return near, nearSet
}

// orderedStopIDs sorts a trip's stop-times by stop_sequence and returns the
// stop ids in visiting order.
func orderedStopIDs(stopTimes []gtfs.StopTimeRow) []string {
	sorted := make([]gtfs.StopTimeRow, len(stopTimes))
	copy(sorted, stopTimes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StopSequence < sorted[j].StopSequence
	})

	ids := make([]string, 0, len(sorted))
	for _, st := range sorted {
		ids = append(ids, st.StopID)
	}
	return ids
}

// groupShapePoints builds shapeID -> polyline, ordered by point sequence.
func groupShapePoints(points []gtfs.ShapePointRow) map[string][]models.LatLng {
	grouped := make(map[string][]gtfs.ShapePointRow)
	for _, pt := range points {
		grouped[pt.ShapeID] = append(grouped[pt.ShapeID], pt)
	}

	paths := make(map[string][]models.LatLng, len(grouped))
	for shapeID, pts := range grouped {
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].Sequence < pts[j].Sequence
		})
		path := make([]models.LatLng, 0, len(pts))
		for _, pt := range pts {
			path = append(path, models.NewLatLng(pt.Lat, pt.Lng))
		}
		paths[shapeID] = path
	}
	return paths
}
