package geo

import "math"

const (
	// DecimicroScale converts decimicro-degrees (degrees * 1e7, the raw
	// storage format for node coordinates) to decimal degrees.
	DecimicroScale = 1e7

	kRad = math.Pi / 180.0
)

func DegToRad(deg float64) float64 {
	return deg * kRad
}

// SquaredDist is the squared euclidean distance between two coordinates in
// degree space. Cheap comparison metric for very short distances.
func SquaredDist(a, b GeoCoord) float64 {
	longDist := a.Long - b.Long
	latDist := a.Lat - b.Lat
	return longDist*longDist + latDist*latDist
}
