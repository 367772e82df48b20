package solar

import (
	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/ephemeris"
)

// yearStartApproxJD seeds the bisection for a tradition's year-start
// saṅkrānti: Mesha (Tamil/Bengali/Odia) falls near mid-April, Simha
// (Malayalam) near mid-August.
func yearStartApproxJD(gregYear int, calType CalendarType) float64 {
	if specs[calType].firstRashi == 5 {
		return astronomy.JulianDayFromGregorian(gregYear, 8, 17)
	}
	return astronomy.JulianDayFromGregorian(gregYear, 4, 14)
}

// solarYear picks the regional era year for the civil day jd (0h UT) in
// Gregorian year gregYear: before the year-start saṅkrānti's civil day,
// the offset is gyOffsetBefore; on or after, gyOffsetOn (spec §4.J step 7).
func solarYear(loc astronomy.Location, jd float64, calType CalendarType, gregYear int) int {
	s := specs[calType]
	approx := yearStartApproxJD(gregYear, calType)
	targetLong := float64(s.firstRashi-1) * 30
	sankJD := SankrantiJD(approx, targetLong)

	sy, sm, sd := SankrantiToCivilDay(sankJD, loc, calType, s.firstRashi)
	yearStartJD := astronomy.JulianDayFromGregorian(sy, sm, sd)

	if jd >= yearStartJD {
		return gregYear - s.gyOffsetOn
	}
	return gregYear - s.gyOffsetBefore
}

// GregorianToSolar converts a Gregorian civil day to its regional solar
// calendar identity, per spec §4.J.
func GregorianToSolar(y, m, d int, loc astronomy.Location, calType CalendarType) Date {
	s := specs[calType]
	jd := astronomy.JulianDayFromGregorian(y, m, d)
	jdCrit := CriticalTimeJD(jd, loc, calType)

	lambda := astronomy.NormalizeDegrees(ephemeris.SiderealSolarLongitude(jdCrit))
	rashi := regionalRashi(jdCrit)

	targetLong := float64(rashi-1) * 30
	sankJD := SankrantiJD(jdCrit-(lambda-targetLong), targetLong)

	sy, sm, sd := SankrantiToCivilDay(sankJD, loc, calType, rashi)
	jdMonthStart := astronomy.JulianDayFromGregorian(sy, sm, sd)
	day := int(jd-jdMonthStart) + 1

	if day <= 0 {
		rashi--
		if rashi < 1 {
			rashi = 12
		}
		targetLong = float64(rashi-1) * 30
		sankJD = SankrantiJD(sankJD-28, targetLong)
		sy, sm, sd = SankrantiToCivilDay(sankJD, loc, calType, rashi)
		jdMonthStart = astronomy.JulianDayFromGregorian(sy, sm, sd)
		day = int(jd-jdMonthStart) + 1
	}

	regionalMonth := ((rashi-s.firstRashi)%12+12)%12 + 1
	year := solarYear(loc, jd, calType, y)

	return Date{
		Year:        year,
		Month:       regionalMonth,
		Day:         day,
		Rashi:       rashi,
		JDSankranti: sankJD,
	}
}

// SolarToGregorian inverts GregorianToSolar: given a regional solar date,
// returns the Gregorian civil day it names, per spec §4.J.
func SolarToGregorian(sdate Date, calType CalendarType, loc astronomy.Location) (int, int, int) {
	s := specs[calType]
	rashi := ((sdate.Month-1+s.firstRashi-1)%12+12)%12 + 1

	gregYearGuess := sdate.Year + s.gyOffsetOn
	if rashi < s.firstRashi {
		gregYearGuess++
	}
	approxMonth := 3 + rashi
	if approxMonth > 12 {
		approxMonth -= 12
		gregYearGuess++
	}
	approxJD := astronomy.JulianDayFromGregorian(gregYearGuess, approxMonth, 15)

	targetLong := float64(rashi-1) * 30
	sankJD := SankrantiJD(approxJD, targetLong)

	sy, sm, sd := SankrantiToCivilDay(sankJD, loc, calType, rashi)
	startJD := astronomy.JulianDayFromGregorian(sy, sm, sd)

	gy, gm, gd, _ := astronomy.GregorianFromJulianDay(startJD + float64(sdate.Day-1))
	return gy, gm, gd
}
