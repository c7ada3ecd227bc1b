package models

// DefaultRouteColor is used when the feed leaves route_color empty.
const DefaultRouteColor = "2E7D32"

// LatLng is a single polyline point, serialized as a two-element [lat, lng]
// array to match the map front end's expectations.
type LatLng [2]float64

func NewLatLng(lat, lng float64) LatLng {
	return LatLng{lat, lng}
}

func (p LatLng) Lat() float64 { return p[0] }
func (p LatLng) Lng() float64 { return p[1] }

// Stop is a transit stop in the output network. Identity is ID, unique within
// a feed snapshot.
type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func NewStop(id, name string, lat, lng float64) Stop {
	return Stop{
		ID:   id,
		Name: name,
		Lat:  lat,
		Lng:  lng,
	}
}

// Route is one route in the output network. StopIDs is the visiting order of a
// single representative trip, not every stop the route ever serves, and its
// entries may reference stops that are absent from Network.Stops. HeadwayMins
// is reserved for a future schedule-derived value and is always null for now.
type Route struct {
	ID          string   `json:"id"`
	ShortName   string   `json:"shortName"`
	LongName    string   `json:"longName"`
	Color       string   `json:"color"`
	StopIDs     []string `json:"stopIds"`
	Shape       []LatLng `json:"shape"`
	HeadwayMins *float64 `json:"headwayMins"`
}

// BBoxMeta records the bounding box a network was filtered by.
type BBoxMeta struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// FilterMeta records the parameters of the most recent filter pass. A second
// filter pass replaces it rather than accumulating.
type FilterMeta struct {
	Type           string   `json:"type"`
	BBox           BBoxMeta `json:"bbox"`
	MinStopsInArea int      `json:"minStopsInArea"`
	ClipShapes     bool     `json:"clipShapes"`
}

// Meta carries provenance and filter parameters alongside the network.
type Meta struct {
	Source         string      `json:"source"`
	BufferMeters   int         `json:"bufferMeters"`
	StopsReturned  int         `json:"stopsReturned"`
	RoutesReturned int         `json:"routesReturned"`
	Filter         *FilterMeta `json:"filter,omitempty"`
}

// Network is the self-contained graph handed to the map front end.
type Network struct {
	Stops  []Stop  `json:"stops"`
	Routes []Route `json:"routes"`
	Meta   Meta    `json:"meta"`
}
