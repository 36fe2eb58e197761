package geo

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance in kilometers
// between two WGS84 coordinates.
func HaversineDistance(latitude1, longitude1, latitude2, longitude2 float64) float64 {
	deltaLatitude := (latitude2 - latitude1) * math.Pi / 180
	deltaLongitude := (longitude2 - longitude1) * math.Pi / 180
	a := math.Sin(deltaLatitude/2)*math.Sin(deltaLatitude/2) +
		math.Cos(latitude1*math.Pi/180)*math.Cos(latitude2*math.Pi/180)*
			math.Sin(deltaLongitude/2)*math.Sin(deltaLongitude/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
