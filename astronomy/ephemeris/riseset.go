package ephemeris

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

// sinclairRefraction returns the Sinclair atmospheric refraction at the
// horizon, in degrees, for pressure p (hPa) and temperature tempC (°C).
func sinclairRefraction(p, tempC float64) float64 {
	// Standard horizon-dip refraction formula used by rise/set algorithms:
	// ~34' at standard pressure/temperature, scaled by p and T.
	const standardMinutes = 34.0 / 60.0
	return standardMinutes * (p / 1010.0) * (283.0 / (273.0 + tempC))
}

// apparentSiderealTime0 returns Greenwich apparent sidereal time at 0h UT
// of jd0h, in degrees, via Meeus's θ₀ polynomial plus the equation of the
// equinoxes (Δψ·cos ε).
func apparentSiderealTime0(jd0h float64) float64 {
	t := (jd0h - 2451545.0) / 36525.0
	theta0 := ephHorner(t, 100.46061837, 36000.770053608, 0.000387933, -1.0/38710000)
	jdTT := jd0h + astronomy.DeltaTDays(jd0h)
	dpsi, _ := astronomy.Nutation(jdTT)
	eps := astronomy.TrueObliquity(jdTT)
	theta0 += dpsi * math.Cos(eps*astronomy.DegToRad)
	return astronomy.NormalizeDegrees(theta0)
}

// Sunrise returns the Julian day (UT) of sunrise for the local civil day
// containing jdUT at the given location, or 0 on circumpolar/error.
func Sunrise(jdUT float64, loc astronomy.Location) float64 {
	return riseSetEvent(jdUT, loc, true)
}

// Sunset returns the Julian day (UT) of sunset for the local civil day
// containing jdUT at the given location, or 0 on circumpolar/error.
func Sunset(jdUT float64, loc astronomy.Location) float64 {
	return riseSetEvent(jdUT, loc, false)
}

// riseSetEvent implements spec §4.G: Meeus Ch.15 iterative sunrise/sunset
// with Sinclair refraction.
func riseSetEvent(jdUT float64, loc astronomy.Location, isRise bool) float64 {
	year, month, day, _ := astronomy.GregorianFromJulianDay(jdUT)
	jd0h := astronomy.JulianDayFromGregorian(year, month, day)

	p := 1013.25
	if loc.Altitude > 0 {
		p = 1013.25 * math.Pow(1-0.0065*loc.Altitude/288.0, 5.255)
	}
	h0 := -sinclairRefraction(p, 10.0)
	if loc.Altitude > 0 {
		h0 -= 0.0353 * math.Sqrt(loc.Altitude)
	}

	theta0 := apparentSiderealTime0(jd0h)

	jdTTmid := jd0h + 0.5 + astronomy.DeltaTDays(jd0h+0.5)
	alpha := apparentSolarLongitudeToRA(jdTTmid)
	delta := solarDeclination(jdTTmid)

	phi := loc.Latitude * astronomy.DegToRad
	deltaRad := delta * astronomy.DegToRad
	cosH0 := (math.Sin(h0*astronomy.DegToRad) - math.Sin(phi)*math.Sin(deltaRad)) /
		(math.Cos(phi) * math.Cos(deltaRad))
	if cosH0 < -1 || cosH0 > 1 {
		return 0 // circumpolar
	}
	H0 := math.Acos(cosH0) * astronomy.RadToDeg

	m0 := astronomy.NormalizeDegrees(alpha-loc.Longitude-theta0) / 360.0
	var m float64
	if isRise {
		m = m0 - H0/360.0
	} else {
		m = m0 + H0/360.0
	}
	if m < 0 {
		m += math.Ceil(-m)
	}
	m = math.Mod(m, 1.0)

	for i := 0; i < 10; i++ {
		jdTT := jd0h + m + astronomy.DeltaTDays(jd0h+m)
		alpha = apparentSolarLongitudeToRA(jdTT)
		delta = solarDeclination(jdTT)
		deltaRad = delta * astronomy.DegToRad

		theta := astronomy.NormalizeDegrees(theta0 + 360.985647*m)
		H := astronomy.ReduceSignedDegrees(theta + loc.Longitude - alpha)
		h := math.Asin(math.Sin(phi)*math.Sin(deltaRad)+
			math.Cos(phi)*math.Cos(deltaRad)*math.Cos(H*astronomy.DegToRad)) * astronomy.RadToDeg

		denom := 360.0 * math.Cos(deltaRad) * math.Cos(phi) * math.Sin(H*astronomy.DegToRad)
		if denom == 0 {
			break
		}
		deltaM := (h - h0) / denom
		m += deltaM
		if math.Abs(deltaM) < 1e-7 {
			break
		}
	}

	if isRise && m > 0.75 {
		m -= 1
	} else if !isRise && m < 0.25 {
		m += 1
	}

	result := jd0h + m
	if result < jdUT-1e-4 {
		return riseSetEvent(jd0h+1, loc, isRise)
	}
	return result
}

// apparentSolarLongitudeToRA is a thin alias kept so riseSetEvent reads as
// the spec's pipeline: apparent longitude feeds declination and RA alike.
func apparentSolarLongitudeToRA(jdTT float64) float64 {
	return solarRightAscension(jdTT)
}
