package ephemeris

import (
	"context"
	"time"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
)

// DrikProvider is the in-repo EphemerisProvider: a self-contained
// low/medium-precision analytical ephemeris (Meeus Ch.25 solar series,
// Meeus Ch.47 lunar series) requiring no external data files. It is the
// sole provider wired into Manager — there is no JPL/SwissEph fallback,
// since the kernel this repo computes from is itself the reference
// implementation, not a stand-in for one.
type DrikProvider struct {
	startJD, endJD JulianDay
}

// NewDrikProvider returns a DrikProvider valid across the dates the ΔT
// model and lunar/solar series are calibrated for (roughly 1900-2050,
// degrading gracefully outside that range per spec §4.B and §4.E).
func NewDrikProvider() *DrikProvider {
	return &DrikProvider{
		startJD: JulianDay(astronomy.JulianDayFromGregorian(1900, 1, 1)),
		endJD:   JulianDay(astronomy.JulianDayFromGregorian(2050, 12, 31)),
	}
}

// GetSunPosition computes the Sun's apparent position at jd (UT).
func (p *DrikProvider) GetSunPosition(ctx context.Context, jd JulianDay) (*SolarPosition, error) {
	jdUT := float64(jd)
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	return &SolarPosition{
		JulianDay:         jd,
		ApparentLongitude: apparentSolarLongitude(jdTT),
		RightAscension:    solarRightAscension(jdTT),
		Declination:       solarDeclination(jdTT),
		MeanAnomaly:       astronomy.NormalizeDegrees(solarMeanAnomaly((jdTT - 2451545.0) / 36525.0)),
	}, nil
}

// GetMoonPosition computes the Moon's apparent position at jd (UT).
func (p *DrikProvider) GetMoonPosition(ctx context.Context, jd JulianDay) (*LunarPosition, error) {
	jdUT := float64(jd)
	jdTT := jdUT + astronomy.DeltaTDays(jdUT)
	lon, lat, dist := apparentLunarLongitude(jdTT)
	return &LunarPosition{
		JulianDay:         jd,
		ApparentLongitude: lon,
		Latitude:          lat,
		Distance:          dist,
	}, nil
}

// IsAvailable always returns true: DrikProvider is pure computation, no I/O.
func (p *DrikProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// GetDataRange returns the date range the ΔT model and periodic series
// are calibrated for.
func (p *DrikProvider) GetDataRange() (JulianDay, JulianDay) {
	return p.startJD, p.endJD
}

// GetHealthStatus reports DrikProvider as always healthy.
func (p *DrikProvider) GetHealthStatus(ctx context.Context) (*HealthStatus, error) {
	return &HealthStatus{
		Available:   true,
		LastCheck:   time.Now(),
		DataStartJD: float64(p.startJD),
		DataEndJD:   float64(p.endJD),
		Version:     p.GetVersion(),
		Source:      p.GetProviderName(),
	}, nil
}

// GetProviderName identifies this provider.
func (p *DrikProvider) GetProviderName() string {
	return "drik-analytical"
}

// GetVersion identifies the theory revision in use.
func (p *DrikProvider) GetVersion() string {
	return "meeus-ch25-ch47"
}

// Close is a no-op: DrikProvider holds no resources.
func (p *DrikProvider) Close() error {
	return nil
}
