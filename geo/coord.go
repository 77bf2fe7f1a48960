// Package geo - coordinates and great-circle distance.
//
// Design:
//   - Haversine on a fixed-radius sphere (EarthRadiusKm); kilometers in, kilometers out.
//   - Deterministic and total: every input yields a finite float64, no error paths.
//   - Symmetric by construction: Haversine(a,b) and Haversine(b,a) are bit-identical
//     (squared sines absorb the sign of the deltas; IEEE multiplication commutes).
//
// Contracts:
//   - Coordinates are decimal degrees; the meaningful domain is [-90,90] latitude,
//     [-180,180] longitude. Values outside it are not rejected.
//   - Haversine(a,a) == 0 exactly.
//
// Complexity:
//   - O(1) time, O(1) space per call.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine, in kilometers.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180.0

// Coord is a geographic point in decimal degrees.
type Coord struct {
	Lat float64 // latitude, degrees north
	Lon float64 // longitude, degrees east
}

// Haversine returns the great-circle distance between a and b in kilometers
// on a sphere of radius EarthRadiusKm:
//
//	h = sin²(Δφ/2) + cosφ₁·cosφ₂·sin²(Δλ/2)
//	d = 2R·atan2(√h, √(1−h))
//
// The atan2 form stays numerically stable for near-antipodal points, where
// the asin variant loses precision.
func Haversine(a, b Coord) float64 {
	var (
		latA = a.Lat * degToRad           // φ₁
		latB = b.Lat * degToRad           // φ₂
		dLat = (b.Lat - a.Lat) * degToRad // Δφ
		dLon = (b.Lon - a.Lon) * degToRad // Δλ
	)

	// Half-angle sines; squaring removes the sign, which is what makes the
	// function exactly symmetric in its arguments.
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
