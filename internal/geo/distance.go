// Package geo provides the great-circle distance used for proximity sorting.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the haversine distance in kilometers between origin and the
// target coordinates. Either target coordinate may be nil, meaning the target
// has no location fix; such targets are infinitely far away so proximity sorts
// push them to the end without special-casing. The result is never NaN.
func Distance(origin Point, lat, lon *float64) float64 {
	if lat == nil || lon == nil {
		return math.Inf(1)
	}
	return Haversine(origin.Latitude, origin.Longitude, *lat, *lon)
}

// Haversine computes the great-circle distance in kilometers between two
// coordinate pairs in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
