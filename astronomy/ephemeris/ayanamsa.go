package ephemeris

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

// lahiriT0 is the reference epoch for the Lahiri (Chitrapakṣa) ayanāṃśa:
// 1956-03-21 00:00 UT, the date the government of India's committee fixed
// the ayanāṃśa as exactly AYAN0 degrees.
const lahiriT0 = 2435553.5

// lahiriAyan0 is the ayanāṃśa value, in degrees, at lahiriT0.
const lahiriAyan0 = 23.245524743

type vec3 [3]float64

type mat3 [3]vec3

func (m mat3) mulVec(v vec3) vec3 {
	return vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m mat3) transpose() mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// precessionAngles returns the IAU-1976 precession angles ζ, z, θ
// (Meeus 21.2), in radians, for the precession from equinox J2000 to the
// equinox of date at Julian centuries T since J2000.
func precessionAngles(t float64) (zeta, z, theta float64) {
	toRad := func(arcsec float64) float64 { return arcsec / 3600.0 * astronomy.DegToRad }
	zeta = toRad(ephHorner(t, 0, 2306.2181, 0.30188, 0.017998))
	z = toRad(ephHorner(t, 0, 2306.2181, 1.09468, 0.018203))
	theta = toRad(ephHorner(t, 0, 2004.3109, -0.42665, -0.041833))
	return
}

// precessionMatrix returns the rotation matrix (Meeus 21.4) that maps an
// equatorial position vector at equinox J2000 to the equinox of date at
// Julian centuries T.
func precessionMatrix(t float64) mat3 {
	zeta, z, theta := precessionAngles(t)
	sz, cz := math.Sincos(zeta)
	sZ, cZ := math.Sincos(z)
	st, ct := math.Sincos(theta)

	return mat3{
		{cz*cZ*ct - sz*sZ, -sz*cZ*ct - cz*sZ, -cZ * st},
		{cz*sZ*ct + sz*cZ, -sz*sZ*ct + cz*cZ, -sZ * st},
		{cz * st, -sz * st, ct},
	}
}

// Ayanamsa returns the mean Lahiri ayanāṃśa, in degrees normalized to
// [0, 360), at Julian day jd (UT is adequate; this is a slow-moving
// precession quantity). Follows spec §4.F exactly: a unit vector in the
// equatorial frame of date is precessed to J2000 and then back to the
// reference epoch T0, rotated into the ecliptic of T0, and its longitude
// compared against AYAN0. Nutation is deliberately NOT added — matching
// the drikpanchang.com convention referenced by the spec.
func Ayanamsa(jd float64) float64 {
	t := (jd - 2451545.0) / 36525.0
	t0 := (lahiriT0 - 2451545.0) / 36525.0

	v0 := vec3{1, 0, 0}
	toJ2000 := precessionMatrix(t).transpose()
	vJ2000 := toJ2000.mulVec(v0)
	toT0 := precessionMatrix(t0)
	vT0 := toT0.mulVec(vJ2000)

	eps0 := astronomy.MeanObliquityIAU1976(lahiriT0) * astronomy.DegToRad
	se, ce := math.Sincos(eps0)
	xEcl := vT0[0]
	yEcl := vT0[1]*ce + vT0[2]*se

	longitude := math.Atan2(yEcl, xEcl) * astronomy.RadToDeg
	ayan := -longitude + lahiriAyan0
	return astronomy.NormalizeDegrees(ayan)
}

// SiderealLongitude reduces a tropical longitude to sidereal (Lahiri) at jd.
func SiderealLongitude(tropicalLongitude, jd float64) float64 {
	return astronomy.NormalizeDegrees(tropicalLongitude - Ayanamsa(jd))
}
