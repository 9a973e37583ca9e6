package suggestions

import (
	"fmt"
	"math"
)

const (
	earthRadiusKm = 6371
	// Effective door-to-door speed used for travel-time estimates.
	averageSpeedKmh = 40
)

// calculateDistance returns the great-circle distance between two coordinates
// using the Haversine formula, in kilometers.
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// estimateTravelMinutes converts a distance into an estimated travel duration
// at averageSpeedKmh, rounded to the nearest minute.
func estimateTravelMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / averageSpeedKmh * 60))
}

// formatDistance renders a distance for display: meters below 1 km, otherwise
// kilometers with one decimal.
func formatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(distanceKm*1000)))
	}
	return fmt.Sprintf("%.1fkm", distanceKm)
}

// formatTravelTime renders a duration for display: minutes below an hour,
// otherwise "Xh Ymin".
func formatTravelTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
