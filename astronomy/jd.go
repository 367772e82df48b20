package astronomy

import "math"

// JulianDayFromGregorian converts a calendar date to a Julian day number at
// 0h UT, Meeus ch.7: dates from 1582-10-15 on are read as Gregorian, earlier
// dates as Julian calendar dates (the reform branch), not proleptic Gregorian.
func JulianDayFromGregorian(year, month, day int) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	var b float64
	z := math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(day) - 1524.5
	if z >= 2299161 {
		b = 2 - a + math.Floor(a/4)
	}
	return z + b
}

// GregorianFromJulianDay is the inverse of JulianDayFromGregorian. The
// fractional part of jd (the time of day) is preserved in fracDay, so
// callers that need the hour/minute can recover it.
func GregorianFromJulianDay(jd float64) (year, month, day int, fracDay float64) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z
	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	fracDay = f
	return
}

// Weekday returns the ISO weekday of the given Julian day: 0=Monday .. 6=Sunday.
func Weekday(jd float64) int {
	// Meeus 7.1: (JD + 1.5) mod 7, 0 = Sunday. Remap to ISO (0 = Monday).
	sunday0 := int(math.Mod(math.Floor(jd+1.5), 7))
	if sunday0 < 0 {
		sunday0 += 7
	}
	w := (sunday0 + 6) % 7
	return w
}

// DaysInMonth returns the number of days in the given Gregorian month,
// accounting for leap years under the rules implied by JulianDayFromGregorian.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}
