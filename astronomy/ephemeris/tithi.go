package ephemeris

import "github.com/dra8an/hindu-calendar-sub003/astronomy"

// TithiType is the traditional categorization of a tithi within its paksha.
type TithiType string

const (
	TithiTypeNanda  TithiType = "Nanda"  // 1, 6, 11 (joyful)
	TithiTypeBhadra TithiType = "Bhadra" // 2, 7, 12 (auspicious)
	TithiTypeJaya   TithiType = "Jaya"   // 3, 8, 13 (victorious)
	TithiTypeRikta  TithiType = "Rikta"  // 4, 9, 14 (empty)
	TithiTypePurna  TithiType = "Purna"  // 5, 10, 15 (complete)
)

// TithiNames maps tithi numbers 1..30 to their Sanskrit names.
var TithiNames = map[int]string{
	1: "Pratipada", 2: "Dwitiya", 3: "Tritiya", 4: "Chaturthi", 5: "Panchami",
	6: "Shashthi", 7: "Saptami", 8: "Ashtami", 9: "Navami", 10: "Dashami",
	11: "Ekadashi", 12: "Dwadashi", 13: "Trayodashi", 14: "Chaturdashi", 15: "Purnima",
	16: "Pratipada", 17: "Dwitiya", 18: "Tritiya", 19: "Chaturthi", 20: "Panchami",
	21: "Shashthi", 22: "Saptami", 23: "Ashtami", 24: "Navami", 25: "Dashami",
	26: "Ekadashi", 27: "Dwadashi", 28: "Trayodashi", 29: "Chaturdashi", 30: "Amavasya",
}

// TithiInfo is one tithi's identity and the JD window (spec §3) during
// which it holds at the given location's sunrise.
type TithiInfo struct {
	TithiNum    int       // 1..30
	Paksha      string    // "Shukla" or "Krishna"
	PakshaTithi int       // 1..15
	JDStart     float64   // JD UT of the (tithi_num-1)*12° phase crossing
	JDEnd       float64   // JD UT of the tithi_num*12° phase crossing
	IsKshaya    bool      // true if the next tithi contains no sunrise
	Name        string    // Sanskrit name
	Type        TithiType // Nanda/Bhadra/Jaya/Rikta/Purna
}

// TithiAtMoment returns the tithi number (1..30) holding at jdUT.
func TithiAtMoment(jdUT float64) int {
	phase := LunarPhase(jdUT)
	t := int(phase/12.0) + 1
	if t > 30 {
		t = 30
	}
	return t
}

// bisectPhaseCross finds the JD in [lo, hi] where LunarPhase crosses
// target, via 50 iterations of bisection on the signed phase difference
// reduced to (-180, 180]. Spec §4.H.
func bisectPhaseCross(lo, hi, target float64) float64 {
	signedDiff := func(jd float64) float64 {
		return astronomy.ReduceSignedDegrees(LunarPhase(jd) - target)
	}
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		if signedDiff(mid) >= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// TithiAtSunrise computes the TithiInfo holding at the sunrise of the civil
// day (y, m, d) at loc, per spec §4.H.
func TithiAtSunrise(y, m, d int, loc astronomy.Location) TithiInfo {
	jdDay := astronomy.JulianDayFromGregorian(y, m, d)
	jdRise := Sunrise(jdDay, loc)
	if jdRise == 0 {
		jdRise = jdDay + 0.5 - loc.UTCOffset/24.0
	}

	t := TithiAtMoment(jdRise)
	paksha := "Shukla"
	if t > 15 {
		paksha = "Krishna"
	}
	pakshaTithi := t
	if t > 15 {
		pakshaTithi = t - 15
	}

	jdStart := bisectPhaseCross(jdRise-2, jdRise, float64(t-1)*12)
	next := t%30 + 1
	jdEnd := bisectPhaseCross(jdRise, jdRise+2, float64(next-1)*12)

	isKshaya := false
	jdRiseTomorrow := Sunrise(jdDay+1, loc)
	if jdRiseTomorrow != 0 {
		tTomorrow := TithiAtMoment(jdRiseTomorrow)
		diff := tTomorrow - t
		if diff < 0 {
			diff += 30
		}
		isKshaya = diff > 1
	}

	return TithiInfo{
		TithiNum:    t,
		Paksha:      paksha,
		PakshaTithi: pakshaTithi,
		JDStart:     jdStart,
		JDEnd:       jdEnd,
		IsKshaya:    isKshaya,
		Name:        TithiNames[t],
		Type:        tithiType(pakshaTithi),
	}
}

// tithiType returns the traditional category for a paksha-relative tithi
// number (1..15).
func tithiType(pakshaTithi int) TithiType {
	switch pakshaTithi {
	case 1, 6, 11:
		return TithiTypeNanda
	case 2, 7, 12:
		return TithiTypeBhadra
	case 3, 8, 13:
		return TithiTypeJaya
	case 4, 9, 14:
		return TithiTypeRikta
	default:
		return TithiTypePurna
	}
}
