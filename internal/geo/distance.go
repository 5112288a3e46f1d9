// Package geo holds the pure distance, travel-time and sun/sea helpers the
// planner builds on.
//
// Distances are great-circle (haversine) on a spherical Earth. Travel time
// uses a fixed average speed per mobility mode, which is good enough for a
// day outline; a routing engine can replace it behind the same functions.
package geo

import (
	"math"

	"coastal-day-planner/internal/domain"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Distance is DistanceKm over Coordinates.
func Distance(a, b domain.Coordinates) float64 {
	return DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
