package ephemeris

import (
	"math"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

// MasaInfo is one lunar month's identity under the amanta (new-moon-to-
// new-moon) scheme, spec §3.
type MasaInfo struct {
	Name       int     // 1..12, Chaitra=1 .. Phalguna=12
	IsAdhika   bool    // true if the Sun does not change rashi within [JDStart, JDEnd)
	YearSaka   int
	YearVikram int
	JDStart    float64 // JD UT of the new moon starting the month
	JDEnd      float64 // JD UT of the next new moon
}

var masaNames = map[int]string{
	1: "Chaitra", 2: "Vaishakha", 3: "Jyeshtha", 4: "Ashadha",
	5: "Shravana", 6: "Bhadrapada", 7: "Ashwin", 8: "Kartika",
	9: "Margashirsha", 10: "Pausha", 11: "Magha", 12: "Phalguna",
}

// SolarRashi returns the zodiac sign (1..12) occupied by the Sun's
// sidereal longitude at jdUT: ⌈λ_sid/30⌉, clamped to 1..12 (0 and 360
// both map to 12, per the source's rule). Distinct from the floor+1
// partition used by the regional solar calendars.
func SolarRashi(jdUT float64) int {
	return solarRashiCtx(NewComputeContext(), jdUT)
}

func solarRashiCtx(ctx *ComputeContext, jdUT float64) int {
	lon := ctx.SiderealSolarLongitude(jdUT)
	r := int(math.Ceil(lon / 30.0))
	if r < 1 {
		r = 12
	}
	if r > 12 {
		r = 12
	}
	return r
}

// newMoonBracket locates the new moon near start+(-2..+2), sampling the
// lunar phase at 17 points 0.25 days apart, unwrapping through the 360°
// wrap, and inverse-Lagrange interpolating for the crossing at
// phase = 360 (spec §4.I). ctx memoizes each sample; MasaForDate passes
// one ctx to both of its calls, whose windows lie about 30 days apart and
// share no sample points.
func newMoonBracket(ctx *ComputeContext, start float64) float64 {
	const n = 17
	offsets := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		offsets[i] = -2 + 0.25*float64(i)
		ys[i] = ctx.LunarPhase(start + offsets[i])
		if i > 0 && ys[i] < ys[i-1] {
			ys[i] += 360
		}
	}
	xStar := InverseLagrangeInterpolate(offsets, ys, 360)
	return start + xStar
}

// NewMoonBefore returns the JD of the new moon preceding jdRise, where t
// is the tithi number (1..30) holding at jdRise.
func NewMoonBefore(jdRise float64, t int) float64 {
	return newMoonBracket(NewComputeContext(), jdRise-float64(t))
}

// NewMoonAfter returns the JD of the new moon following jdRise, where t
// is the tithi number (1..30) holding at jdRise.
func NewMoonAfter(jdRise float64, t int) float64 {
	return newMoonBracket(NewComputeContext(), jdRise+float64(30-t))
}

// MasaForDate computes the amanta lunar month holding at the sunrise of
// civil day (y, m, d) at loc, per spec §4.I.
func MasaForDate(y, m, d int, loc astronomy.Location) MasaInfo {
	jdDay := astronomy.JulianDayFromGregorian(y, m, d)
	jdRise := Sunrise(jdDay, loc)
	if jdRise == 0 {
		jdRise = jdDay + 0.5 - loc.UTCOffset/24.0
	}

	ctx := NewComputeContext()
	t := TithiAtMoment(jdRise)
	last := newMoonBracket(ctx, jdRise-float64(t))
	next := newMoonBracket(ctx, jdRise+float64(30-t))

	rLast := solarRashiCtx(ctx, last)
	rNext := solarRashiCtx(ctx, next)

	name := rLast%12 + 1
	isAdhika := rLast == rNext

	yearSaka := int(math.Floor((jdRise-588465.5+float64(4-name)*30)/365.25636)) - 3179
	yearVikram := yearSaka + 135

	return MasaInfo{
		Name:       name,
		IsAdhika:   isAdhika,
		YearSaka:   yearSaka,
		YearVikram: yearVikram,
		JDStart:    last,
		JDEnd:      next,
	}
}

// MasaName returns the Sanskrit name for a masa number (1..12).
func MasaName(name int) string {
	return masaNames[name]
}
