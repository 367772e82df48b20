package astronomy

import "math"

const (
	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180
	// RadToDeg converts radians to degrees.
	RadToDeg = 180 / math.Pi
)

// Location is a geographic point used by rise/set, tithi, masa and the
// regional solar calendars. It is a plain value type: no method on it
// mutates shared state, and every consumer treats it as immutable input.
type Location struct {
	Latitude  float64 // degrees north, negative for south
	Longitude float64 // degrees east, negative for west
	Altitude  float64 // meters above sea level
	UTCOffset float64 // hours east of UTC, e.g. +5.5 for India
}

// NormalizeDegrees reduces an angle to the half-open range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ReduceSignedDegrees reduces an angle to the half-open range (-180, 180].
func ReduceSignedDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}
