package gtfs

import (
	"fmt"
	"math"

	"github.com/jamespfennell/gtfs"
)

// The row types mirror the five GTFS tables the network builder consumes. All
// join keys are canonicalized to strings here, at the load boundary, so the
// pipeline itself never coerces types. Row order matches feed file order,
// which the builder relies on for deterministic tie-breaking.

type StopRow struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

type RouteRow struct {
	ID        string
	ShortName string
	LongName  string
	Color     string
}

type TripRow struct {
	ID      string
	RouteID string
	ShapeID string
}

type StopTimeRow struct {
	TripID       string
	StopID       string
	StopSequence int
}

type ShapePointRow struct {
	ShapeID  string
	Lat      float64
	Lng      float64
	Sequence int
}

// Tables is one parsed feed snapshot.
type Tables struct {
	Stops       []StopRow
	Routes      []RouteRow
	Trips       []TripRow
	StopTimes   []StopTimeRow
	ShapePoints []ShapePointRow
}

// TablesFromStatic flattens a parsed GTFS feed into the five tables. A stop
// with missing or non-finite coordinates is a fatal input error: the builder
// assumes clean, pre-validated numeric fields.
func TablesFromStatic(staticData *gtfs.Static) (*Tables, error) {
	if staticData == nil {
		return nil, fmt.Errorf("no static GTFS data")
	}

	tables := &Tables{
		Stops:       make([]StopRow, 0, len(staticData.Stops)),
		Routes:      make([]RouteRow, 0, len(staticData.Routes)),
		Trips:       make([]TripRow, 0, len(staticData.Trips)),
		StopTimes:   make([]StopTimeRow, 0),
		ShapePoints: make([]ShapePointRow, 0),
	}

	for i := range staticData.Stops {
		s := staticData.Stops[i]
		if s.Latitude == nil || s.Longitude == nil {
			return nil, fmt.Errorf("stop %q has no coordinates", s.Id)
		}
		if !isFinite(*s.Latitude) || !isFinite(*s.Longitude) {
			return nil, fmt.Errorf("stop %q has non-finite coordinates", s.Id)
		}
		tables.Stops = append(tables.Stops, StopRow{
			ID:   s.Id,
			Name: s.Name,
			Lat:  *s.Latitude,
			Lng:  *s.Longitude,
		})
	}

	for i := range staticData.Routes {
		r := staticData.Routes[i]
		tables.Routes = append(tables.Routes, RouteRow{
			ID:        r.Id,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Color:     r.Color,
		})
	}

	for i := range staticData.Trips {
		t := staticData.Trips[i]

		row := TripRow{ID: t.ID}
		if t.Route != nil {
			row.RouteID = t.Route.Id
		}
		if t.Shape != nil {
			row.ShapeID = t.Shape.ID
		}
		tables.Trips = append(tables.Trips, row)

		for _, st := range t.StopTimes {
			if st.Stop == nil {
				continue
			}
			tables.StopTimes = append(tables.StopTimes, StopTimeRow{
				TripID:       t.ID,
				StopID:       st.Stop.Id,
				StopSequence: st.StopSequence,
			})
		}
	}

	for i := range staticData.Shapes {
		shape := staticData.Shapes[i]
		// The parser already orders points by shape_pt_sequence, so the
		// point index is the canonical sequence number.
		for idx := range shape.Points {
			pt := shape.Points[idx]
			tables.ShapePoints = append(tables.ShapePoints, ShapePointRow{
				ShapeID:  shape.ID,
				Lat:      pt.Latitude,
				Lng:      pt.Longitude,
				Sequence: idx,
			})
		}
	}

	return tables, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
