package solar

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/ephemeris"
)

// CriticalTimeJD returns the JD (UT) of the tradition's critical instant
// for the Gregorian day whose 0h UT is jdMidnightUT, per spec §4.J.
func CriticalTimeJD(jdMidnightUT float64, loc astronomy.Location, calType CalendarType) float64 {
	switch calType {
	case Tamil:
		return ephemeris.Sunset(jdMidnightUT, loc) - 8.0/(24*60)
	case Bengali:
		return jdMidnightUT - loc.UTCOffset/24 + 24.0/(24*60)
	case Odia:
		return jdMidnightUT + 16.7/24
	case Malayalam:
		rise := ephemeris.Sunrise(jdMidnightUT, loc)
		set := ephemeris.Sunset(jdMidnightUT, loc)
		return rise + 0.6*(set-rise) - 9.5/(24*60)
	default:
		return jdMidnightUT
	}
}

// SankrantiToCivilDay determines which Gregorian civil day owns the
// saṅkrānti at jdSank, applying each tradition's critical-time rule and
// the Bengali special rule (spec §4.J, §Gotchas).
func SankrantiToCivilDay(jdSank float64, loc astronomy.Location, calType CalendarType, rashi int) (int, int, int) {
	localJD := jdSank + loc.UTCOffset/24 + 0.5
	sy, sm, sd, _ := astronomy.GregorianFromJulianDay(math.Floor(localJD))

	jdDay := astronomy.JulianDayFromGregorian(sy, sm, sd)
	crit := CriticalTimeJD(jdDay, loc, calType)

	if jdSank <= crit {
		if calType == Bengali && rashi != 4 {
			push := rashi == 10
			if !push {
				py, pm, pd, _ := astronomy.GregorianFromJulianDay(jdDay - 1)
				prevTithi := ephemeris.TithiAtSunrise(py, pm, pd, loc)
				if prevTithi.JDEnd <= jdSank {
					push = true
				}
			}
			if push {
				ny, nm, nd, _ := astronomy.GregorianFromJulianDay(jdDay + 1)
				return ny, nm, nd
			}
		}
		return sy, sm, sd
	}

	ny, nm, nd, _ := astronomy.GregorianFromJulianDay(jdDay + 1)
	return ny, nm, nd
}
