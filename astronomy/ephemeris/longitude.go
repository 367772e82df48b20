package ephemeris

import "github.com/dra8an/hindu-calendar-sub003/astronomy"

// SolarLongitude returns the Sun's apparent tropical geocentric longitude,
// in degrees [0, 360), at Julian day jdUT. Pure function of jdUT: no
// caching, no shared state (spec §5).
func SolarLongitude(jdUT float64) float64 {
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	return apparentSolarLongitude(jdTT)
}

// LunarLongitude returns the Moon's apparent tropical geocentric longitude,
// in degrees [0, 360), at Julian day jdUT.
func LunarLongitude(jdUT float64) float64 {
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	lon, _, _ := apparentLunarLongitude(jdTT)
	return lon
}

// LunarPhase returns the Moon-Sun elongation, in degrees [0, 360), at jdUT.
// Uses tropical longitudes: the ayanāṃśa cancels in the difference.
func LunarPhase(jdUT float64) float64 {
	return astronomy.NormalizeDegrees(LunarLongitude(jdUT) - SolarLongitude(jdUT))
}

// SiderealSolarLongitude returns the Sun's apparent sidereal (Lahiri)
// longitude, in degrees [0, 360), at jdUT.
func SiderealSolarLongitude(jdUT float64) float64 {
	return SiderealLongitude(SolarLongitude(jdUT), jdUT)
}
