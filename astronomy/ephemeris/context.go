package ephemeris

import "github.com/dra8an/hindu-calendar-sub003/astronomy"

// ComputeContext is the "reusable computation context" of spec §9: a value
// the caller owns and may reuse across many calls in the same goroutine to
// avoid repeated allocation, but which is never shared at package scope.
// The kernel functions in this package (apparentSolarLongitude,
// apparentLunarLongitude, Ayanamsa, Sunrise, Sunset) take no hidden state
// and do not require one — ComputeContext exists purely as a caller-side
// memoization convenience so a single query that asks for the Sun's
// position at the same jd more than once does not recompute it.
type ComputeContext struct {
	sunCache  map[float64]*SolarPosition
	moonCache map[float64]*LunarPosition
}

// NewComputeContext returns an empty, ready-to-use ComputeContext. A
// ComputeContext must not be shared across goroutines.
func NewComputeContext() *ComputeContext {
	return &ComputeContext{
		sunCache:  make(map[float64]*SolarPosition),
		moonCache: make(map[float64]*LunarPosition),
	}
}

// SunPosition returns the Sun's apparent position at jdUT, computing and
// memoizing it on first use within this context.
func (c *ComputeContext) SunPosition(jdUT float64) *SolarPosition {
	if p, ok := c.sunCache[jdUT]; ok {
		return p
	}
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	lon := apparentSolarLongitude(jdTT)
	pos := &SolarPosition{
		JulianDay:         JulianDay(jdUT),
		ApparentLongitude: lon,
		RightAscension:    solarRightAscension(jdTT),
		Declination:       solarDeclination(jdTT),
		MeanAnomaly:       solarMeanAnomaly((jdTT - 2451545.0) / 36525.0),
	}
	c.sunCache[jdUT] = pos
	return pos
}

// MoonPosition returns the Moon's apparent position at jdUT, computing and
// memoizing it on first use within this context.
func (c *ComputeContext) MoonPosition(jdUT float64) *LunarPosition {
	if p, ok := c.moonCache[jdUT]; ok {
		return p
	}
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	lon, lat, dist := apparentLunarLongitude(jdTT)
	pos := &LunarPosition{
		JulianDay:         JulianDay(jdUT),
		ApparentLongitude: lon,
		Latitude:          lat,
		Distance:          dist,
	}
	c.moonCache[jdUT] = pos
	return pos
}

// SolarLongitude returns the Sun's apparent tropical longitude at jdUT,
// memoized within this context.
func (c *ComputeContext) SolarLongitude(jdUT float64) float64 {
	return c.SunPosition(jdUT).ApparentLongitude
}

// SiderealSolarLongitude returns the Sun's apparent sidereal (Lahiri)
// longitude at jdUT, memoized within this context.
func (c *ComputeContext) SiderealSolarLongitude(jdUT float64) float64 {
	return SiderealLongitude(c.SolarLongitude(jdUT), jdUT)
}

// LunarPhase returns the Moon-Sun elongation at jdUT, memoized within this
// context.
func (c *ComputeContext) LunarPhase(jdUT float64) float64 {
	moonLon := c.MoonPosition(jdUT).ApparentLongitude
	return astronomy.NormalizeDegrees(moonLon - c.SolarLongitude(jdUT))
}
