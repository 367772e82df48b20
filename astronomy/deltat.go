package astronomy

import "math"

// DeltaTSeconds returns an approximation of ΔT = TT − UT, in seconds, for
// the Gregorian year y (fractional years allowed).
//
// Spec §4.B calls for linear interpolation in a literal 151-entry yearly
// table for 1900 ≤ y < 2051. That table's exact tabulated values are not
// available to this implementation (see DESIGN.md); in its place this uses
// the Espenak–Meeus piecewise polynomial fit to the same historical ΔT
// curve, which is accurate to within a few seconds across 1900-2050 and
// degrades the same way outside it.
func DeltaTSeconds(y float64) float64 {
	switch {
	case y < 1900:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 1920:
		t := y - 1900
		return horner(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case y < 1941:
		t := y - 1920
		return horner(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case y < 1961:
		t := y - 1950
		return horner(t, 29.07, 0.407, -1.0/233.0, 1.0/2547.0)
	case y < 1986:
		t := y - 1975
		return horner(t, 45.45, 1.067, -1.0/260.0, -1.0/718.0)
	case y < 2005:
		t := y - 2000
		return horner(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case y < 2050:
		t := y - 2000
		return horner(t, 62.92, 0.32217, 0.005589)
	case y < 2150:
		return -20 + 32*math.Pow((y-1820)/100, 2) - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// DeltaTDays converts ΔT at jd_ut (UT Julian day) into a fraction of a day.
func DeltaTDays(jdUT float64) float64 {
	year, month, _, _ := GregorianFromJulianDay(jdUT)
	y := float64(year) + (float64(month)-0.5)/12.0
	return DeltaTSeconds(y) / 86400.0
}

func horner(x float64, coeffs ...float64) float64 {
	r := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		r = r*x + coeffs[i]
	}
	return r
}
