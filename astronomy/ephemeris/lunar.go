package ephemeris

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

func ephHorner(x float64, coeffs ...float64) float64 {
	r := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		r = r*x + coeffs[i]
	}
	return r
}

// lunarMeanElements returns the Moon's mean longitude L', elongation D,
// Sun's mean anomaly M, Moon's mean anomaly M', and argument of latitude F,
// all in degrees, at T Julian centuries from J2000 TT (Meeus Ch.47).
func lunarMeanElements(t float64) (lp, d, m, mp, f float64) {
	lp = ephHorner(t, 218.3164477, 481267.88123421, -0.0015786, 1.0/538841, -1.0/65194000)
	d = ephHorner(t, 297.8501921, 445267.1114034, -0.0018819, 1.0/545868, -1.0/113065000)
	m = ephHorner(t, 357.5291092, 35999.0502909, -0.0001536, 1.0/24490000)
	mp = ephHorner(t, 134.9633964, 477198.8675055, 0.0087414, 1.0/69699, -1.0/14712000)
	f = ephHorner(t, 93.2720950, 483202.0175233, -0.0036539, -1.0/3526000, 1.0/863310000)
	return
}

// apparentLunarLongitude returns the Moon's apparent geocentric ecliptic
// longitude (degrees, tropical, referred to equinox of date), latitude
// (degrees), and distance (km) at jdTT. Grounded on Meeus Ch.47 as
// reproduced by soniakeys-meeus's moonposition package: mean elements,
// the A1/A2/A3 extra arguments, eccentricity correction E/E², and the full
// 60+60-term Σl/Σr/Σb periodic series.
func apparentLunarLongitude(jdTT float64) (lon, lat, dist float64) {
	t := (jdTT - 2451545.0) / 36525.0
	lp, d, m, mp, f := lunarMeanElements(t)

	dRad := d * astronomy.DegToRad
	mRad := m * astronomy.DegToRad
	mpRad := mp * astronomy.DegToRad
	fRad := f * astronomy.DegToRad

	a1 := astronomy.NormalizeDegrees(119.75+131.849*t) * astronomy.DegToRad
	a2 := astronomy.NormalizeDegrees(53.09+479264.29*t) * astronomy.DegToRad
	a3 := astronomy.NormalizeDegrees(313.45+481266.484*t) * astronomy.DegToRad

	e := ephHorner(t, 1, -0.002516, -0.0000074)
	e2 := e * e

	sigmaL := 3958*math.Sin(a1) + 1962*math.Sin(lp*astronomy.DegToRad-fRad) + 318*math.Sin(a2)
	sigmaR := 0.0
	sigmaB := -2235*math.Sin(lp*astronomy.DegToRad) + 382*math.Sin(a3) +
		175*math.Sin(a1-fRad) + 175*math.Sin(a1+fRad) +
		127*math.Sin(lp*astronomy.DegToRad-mpRad) - 115*math.Sin(lp*astronomy.DegToRad+mpRad)

	for _, row := range lunarLonRadTerms {
		arg := row.d*dRad + row.m*mRad + row.mp*mpRad + row.f*fRad
		sa, ca := math.Sin(arg), math.Cos(arg)
		switch row.m {
		case 0:
			sigmaL += row.sigmaL * sa
			sigmaR += row.sigmaR * ca
		case 1, -1:
			sigmaL += row.sigmaL * sa * e
			sigmaR += row.sigmaR * ca * e
		case 2, -2:
			sigmaL += row.sigmaL * sa * e2
			sigmaR += row.sigmaR * ca * e2
		}
	}
	for _, row := range lunarLatTerms {
		arg := row.d*dRad + row.m*mRad + row.mp*mpRad + row.f*fRad
		sb := math.Sin(arg)
		switch row.m {
		case 0:
			sigmaB += row.sigmaB * sb
		case 1, -1:
			sigmaB += row.sigmaB * sb * e
		case 2, -2:
			sigmaB += row.sigmaB * sb * e2
		}
	}

	lon = lp + sigmaL*1e-6
	lat = sigmaB * 1e-6
	dist = 385000.56 + sigmaR*1e-3

	dpsi, _ := astronomy.Nutation(jdTT)
	lon = astronomy.NormalizeDegrees(lon + dpsi)
	return
}
