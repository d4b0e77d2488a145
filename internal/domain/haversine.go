package domain

import "math"

// Mean Earth radius in miles.
const earthRadiusMiles = 3959

// MaxMiles is the largest distance HaversineMiles can return (antipodal points).
const MaxMiles = math.Pi * earthRadiusMiles

func degreesToRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// HaversineMiles returns the great-circle distance between two coordinates in miles.
//
// The formula is applied uniformly: poles and the antimeridian get no special
// handling. Identical inputs yield exactly 0.
func HaversineMiles(from, to Coordinates) float64 {
	fromLat := degreesToRadians(from.Lat)
	fromLon := degreesToRadians(from.Lon)
	toLat := degreesToRadians(to.Lat)
	toLon := degreesToRadians(to.Lon)

	dLat := toLat - fromLat
	dLon := toLon - fromLon

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(fromLat)*math.Cos(toLat)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return c * earthRadiusMiles
}
