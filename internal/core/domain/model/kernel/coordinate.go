package kernel

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by HaversineKm.
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in decimal degrees.
//
// Stops imported without a geocode carry (0, 0): that pair is the "unset" sentinel,
// never a real location. IsUsable is the single place that decision is made, so
// a coordinate is always safe to construct and store; callers ask IsUsable before
// feeding it to distance computations.
//
// Example:
//
//	depot := kernel.NewCoordinate(-26.8241, -65.2226)
//	stop := kernel.NewCoordinate(-26.8300, -65.2050)
//	if stop.IsUsable() {
//	    fmt.Printf("%.2f km\n", depot.DistanceTo(stop))
//	}
type Coordinate struct {
	lat float64
	lng float64
}

// Unset is the (0, 0) sentinel for a stop without a usable location.
var Unset = Coordinate{}

// NewCoordinate builds a coordinate from decimal degrees. No validation is applied;
// see IsUsable.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{lat: lat, lng: lng}
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lng() float64 {
	return c.lng
}

// IsUsable reports whether both components are finite and the pair is not exactly (0, 0).
func (c Coordinate) IsUsable() bool {
	if !isFinite(c.lat) || !isFinite(c.lng) {
		return false
	}
	return c.lat != 0 || c.lng != 0
}

// IsEqual compares both components exactly.
func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.lat == other.lat && c.lng == other.lng
}

// DistanceTo returns the great-circle distance to other in kilometers.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return HaversineKm(c, other)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%.6f,%.6f)", c.lat, c.lng)
}

// HaversineKm computes the great-circle distance between a and b on a sphere of
// radius EarthRadiusKm. Both inputs must be finite.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.lat)
	lat2 := toRadians(b.lat)
	deltaLat := toRadians(b.lat - a.lat)
	deltaLng := toRadians(b.lng - a.lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Sin(deltaLng/2)*math.Sin(deltaLng/2)*math.Cos(lat1)*math.Cos(lat2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
