// Package geo provides the great-circle distance and bounding-box primitives
// used by the network builder and filter.
package geo

import "math"

const (
	earthRadiusKM     = 6371.0
	earthRadiusMeters = 6371000.0
)

// Point is a (latitude, longitude) pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKM returns the haversine great-circle distance between a and b in kilometers.
func DistanceKM(a, b Point) float64 {
	return haversine(a, b, earthRadiusKM)
}

// DistanceMeters returns the haversine great-circle distance between a and b in meters.
func DistanceMeters(a, b Point) float64 {
	return haversine(a, b, earthRadiusMeters)
}

func haversine(a, b Point, radius float64) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * radius * math.Asin(math.Sqrt(h))
}

// BBox is an axis-aligned bounding box in degrees. Bounds are inclusive.
type BBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// Contains reports whether the point (lat, lng) lies within the box, inclusive
// of the bounds.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}
