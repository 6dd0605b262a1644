package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// HaversineKm calculates the great-circle distance between two points in km.
func HaversineKm(a, b Point) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	s := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: whole meters below 1 km,
// one-decimal kilometers at or above it. Returns "" for NaN.
func FormatDistance(km float64) string {
	if math.IsNaN(km) {
		return ""
	}
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatDistancePtr is the nil-propagating variant used when a record may
// have no computed distance at all.
func FormatDistancePtr(km *float64) *string {
	if km == nil || math.IsNaN(*km) {
		return nil
	}
	s := FormatDistance(*km)
	return &s
}
