package ephemeris

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

// solarMeanAnomaly returns the Sun's mean anomaly M, in degrees, at T Julian
// centuries from J2000 (Meeus 25.3).
func solarMeanAnomaly(t float64) float64 {
	return ephHorner(t, 357.52911, 35999.05029, -0.0001537)
}

// solarEccentricity returns the eccentricity of Earth's orbit (Meeus 25.4).
func solarEccentricity(t float64) float64 {
	return ephHorner(t, 0.016708634, -0.000042037, -0.0000001267)
}

// solarTrueLongitude returns the Sun's true geometric longitude (degrees,
// referred to the mean equinox of date) and true anomaly (degrees), via the
// Meeus 25.2 low-precision Kepler series. Grounded on the soniakeys-meeus
// solar package's True(): the full VSOP87 series is not reproduced, and the
// result is accurate to about 1′ rather than to VSOP87 precision (see
// DESIGN.md).
func solarTrueLongitude(t float64) (longitude, anomaly float64) {
	l0 := ephHorner(t, 280.46646, 36000.76983, 0.0003032)
	m := solarMeanAnomaly(t)
	mRad := m * astronomy.DegToRad
	c := ephHorner(t, 1.914602, -0.004817, -0.000014)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)
	longitude = astronomy.NormalizeDegrees(l0 + c)
	anomaly = astronomy.NormalizeDegrees(m + c)
	return
}

// solarRadiusAU returns the Sun-Earth distance in AU (Meeus 25.5).
func solarRadiusAU(t float64) float64 {
	_, nu := solarTrueLongitude(t)
	e := solarEccentricity(t)
	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(nu*astronomy.DegToRad))
}

// apparentSolarLongitude returns the Sun's apparent geocentric ecliptic
// longitude in degrees at jdTT, following spec §4.D steps 4-7: true
// longitude, nutation, aberration, normalize.
func apparentSolarLongitude(jdTT float64) float64 {
	t := (jdTT - 2451545.0) / 36525.0
	trueLon, _ := solarTrueLongitude(t)
	dpsi, _ := astronomy.Nutation(jdTT)
	r := solarRadiusAU(t)
	aberration := -20.4898 / 3600.0 / r
	return astronomy.NormalizeDegrees(trueLon + dpsi + aberration)
}

// solarDeclination returns the Sun's apparent declination in degrees at
// jdTT, using apparent longitude λ and true obliquity ε: asin(sin ε sin λ).
func solarDeclination(jdTT float64) float64 {
	lon := apparentSolarLongitude(jdTT)
	eps := astronomy.TrueObliquity(jdTT)
	return math.Asin(math.Sin(eps*astronomy.DegToRad)*math.Sin(lon*astronomy.DegToRad)) * astronomy.RadToDeg
}

// solarRightAscension returns the Sun's apparent right ascension in
// degrees at jdTT: atan2(cos ε sin λ, cos λ), normalized to [0, 360).
func solarRightAscension(jdTT float64) float64 {
	lon := apparentSolarLongitude(jdTT)
	eps := astronomy.TrueObliquity(jdTT)
	lonRad := lon * astronomy.DegToRad
	epsRad := eps * astronomy.DegToRad
	ra := math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad)) * astronomy.RadToDeg
	return astronomy.NormalizeDegrees(ra)
}
