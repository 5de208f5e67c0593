// Package spatial provides great-circle geometry over WGS84 coordinates.
package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// DistanceKm calculates the great-circle distance between two points
// in kilometers using the haversine formula. Inputs are taken as-is;
// out-of-range or NaN coordinates propagate into the result.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// DistanceMeters calculates the great-circle distance between two points in meters
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000
}
