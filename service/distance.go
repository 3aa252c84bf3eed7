package services

import (
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"np-server/config"
	"np-server/models"
)

// GeodesicDistanceKm returns the great-circle distance between two coordinates in kilometers.
func GeodesicDistanceKm(from, to models.Coordinate) float64 {
	// orb points are [lng, lat]
	meters := geo.DistanceHaversine(orb.Point{from.Lng, from.Lat}, orb.Point{to.Lng, to.Lat})
	return meters / 1000
}

// FormatDistanceKm formats kilometers with two decimals.
func FormatDistanceKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 2, 64)
}

// IsNearKm applies the near filter to a distance in kilometers.
func IsNearKm(km float64) bool {
	return km < config.NEAR_THRESHOLD_KM
}

// IsNearMeters applies the near filter to a distance in meters.
func IsNearMeters(m float64) bool {
	return m < config.NEAR_THRESHOLD_METERS
}
