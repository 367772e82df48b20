package solar

import (
	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/ephemeris"
)

// SankrantiJD finds the JD at which the Sun's sidereal longitude crosses
// targetLong, bracketing around jdApprox and bisecting, per spec §4.J.
func SankrantiJD(jdApprox, targetLong float64) float64 {
	lo, hi := jdApprox-20, jdApprox+20

	if astronomy.ReduceSignedDegrees(ephemeris.SiderealSolarLongitude(lo)-targetLong) >= 0 {
		lo -= 30
	}

	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		d := astronomy.ReduceSignedDegrees(ephemeris.SiderealSolarLongitude(mid) - targetLong)
		if d >= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// regionalRashi returns the zodiac sign (1..12) occupied by the Sun's
// sidereal longitude at jdUT, using the floor+1 partition: sign n spans
// sidereal longitude [(n-1)*30, n*30). Distinct from the ceil-based
// ephemeris.SolarRashi used by the lunar-month (amanta) calendar.
func regionalRashi(jdUT float64) int {
	lon := astronomy.NormalizeDegrees(ephemeris.SiderealSolarLongitude(jdUT))
	r := int(lon/30.0) + 1
	if r > 12 {
		r = 12
	}
	if r < 1 {
		r = 1
	}
	return r
}
