package ephemeris

import "github.com/dra8an/hindu-calendar-sub003/astronomy"

// HinduDate is the calendar identity holding at a civil sunrise: era
// years, māsa with its adhika flag, pakṣa, paksha-relative tithi, and an
// adhika-tithi flag (spec §3).
type HinduDate struct {
	YearSaka      int
	YearVikram    int
	Masa          int
	MasaName      string
	IsAdhikaMasa  bool
	Paksha        string
	Tithi         int // 1..15, paksha-relative
	IsAdhikaTithi bool
}

// Panchanga computes the HinduDate holding at the sunrise of civil day
// (y, m, d) at loc, combining the tithi (§4.H) and māsa (§4.I) kernels.
func Panchanga(y, m, d int, loc astronomy.Location) HinduDate {
	ti := TithiAtSunrise(y, m, d, loc)
	mi := MasaForDate(y, m, d, loc)

	jdYesterday := astronomy.JulianDayFromGregorian(y, m, d) - 1
	py, pm, pd, _ := astronomy.GregorianFromJulianDay(jdYesterday)
	tiYesterday := TithiAtSunrise(py, pm, pd, loc)

	return HinduDate{
		YearSaka:      mi.YearSaka,
		YearVikram:    mi.YearVikram,
		Masa:          mi.Name,
		MasaName:      MasaName(mi.Name),
		IsAdhikaMasa:  mi.IsAdhika,
		Paksha:        ti.Paksha,
		Tithi:         ti.PakshaTithi,
		IsAdhikaTithi: tiYesterday.TithiNum == ti.TithiNum,
	}
}
