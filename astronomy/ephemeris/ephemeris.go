package ephemeris

import (
	"context"
	"fmt"
	"time"

	"github.com/dra8an/hindu-calendar-sub003/observability"
	"go.opentelemetry.io/otel/attribute"
)

// JulianDay represents a Julian day number.
type JulianDay float64

// SolarPosition is the Sun's apparent geocentric position at a JulianDay.
type SolarPosition struct {
	JulianDay         JulianDay `json:"julian_day"`
	ApparentLongitude float64   `json:"apparent_longitude"` // tropical, degrees
	RightAscension    float64   `json:"right_ascension"`    // degrees
	Declination       float64   `json:"declination"`        // degrees
	MeanAnomaly       float64   `json:"mean_anomaly"`       // degrees
}

// LunarPosition is the Moon's apparent geocentric position at a JulianDay.
type LunarPosition struct {
	JulianDay         JulianDay `json:"julian_day"`
	ApparentLongitude float64   `json:"apparent_longitude"` // tropical, degrees
	Latitude          float64   `json:"latitude"`           // degrees
	Distance          float64   `json:"distance"`           // km
}

// HealthStatus reports the availability of an EphemerisProvider.
type HealthStatus struct {
	Available    bool          `json:"available"`
	LastCheck    time.Time     `json:"last_check"`
	DataStartJD  float64       `json:"data_start_jd"`
	DataEndJD    float64       `json:"data_end_jd"`
	ResponseTime time.Duration `json:"response_time"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Version      string        `json:"version,omitempty"`
	Source       string        `json:"source,omitempty"`
}

// EphemerisProvider computes Sun/Moon positions for a Julian day. The spec's
// kernel (§1) needs only Sun and Moon — this interface is intentionally
// narrower than a general planetary ephemeris.
type EphemerisProvider interface {
	GetSunPosition(ctx context.Context, jd JulianDay) (*SolarPosition, error)
	GetMoonPosition(ctx context.Context, jd JulianDay) (*LunarPosition, error)
	IsAvailable(ctx context.Context) bool
	GetDataRange() (startJD, endJD JulianDay)
	GetHealthStatus(ctx context.Context) (*HealthStatus, error)
	GetProviderName() string
	GetVersion() string
	Close() error
}

// Manager fronts a primary EphemerisProvider with a per-instance cache and
// health checker. It is the "reusable computation context" of spec §9: the
// caller constructs and owns one, and its cache is scoped to that instance,
// not to the package.
type Manager struct {
	primary       EphemerisProvider
	cache         Cache
	observer      observability.ObserverInterface
	healthChecker *HealthChecker
}

// NewManager creates a Manager fronting primary with the given cache.
func NewManager(primary EphemerisProvider, cache Cache) *Manager {
	m := &Manager{
		primary:  primary,
		cache:    cache,
		observer: observability.Observer(),
	}
	m.healthChecker = NewHealthChecker([]EphemerisProvider{primary})
	return m
}

// GetSunPosition retrieves the Sun's position, using the instance cache.
func (m *Manager) GetSunPosition(ctx context.Context, jd JulianDay) (*SolarPosition, error) {
	ctx, span := m.observer.CreateSpan(ctx, "ephemeris.GetSunPosition")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)))

	cacheKey := fmt.Sprintf("sun_position_%f", jd)
	if cached, found := m.cache.Get(ctx, cacheKey); found {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		if position, ok := cached.(*SolarPosition); ok {
			return position, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	position, err := m.primary.GetSunPosition(ctx, jd)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("sun position: %w", err)
	}
	m.cache.Set(ctx, cacheKey, position, time.Hour)
	return position, nil
}

// GetMoonPosition retrieves the Moon's position, using the instance cache.
func (m *Manager) GetMoonPosition(ctx context.Context, jd JulianDay) (*LunarPosition, error) {
	ctx, span := m.observer.CreateSpan(ctx, "ephemeris.GetMoonPosition")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)))

	cacheKey := fmt.Sprintf("moon_position_%f", jd)
	if cached, found := m.cache.Get(ctx, cacheKey); found {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		if position, ok := cached.(*LunarPosition); ok {
			return position, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	position, err := m.primary.GetMoonPosition(ctx, jd)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("moon position: %w", err)
	}
	m.cache.Set(ctx, cacheKey, position, time.Hour)
	return position, nil
}

// GetHealthStatus returns the health of the backing provider.
func (m *Manager) GetHealthStatus(ctx context.Context) (*HealthStatus, error) {
	return m.primary.GetHealthStatus(ctx)
}

// Close releases the provider and cache.
func (m *Manager) Close() error {
	var errs []error
	if err := m.primary.Close(); err != nil {
		errs = append(errs, fmt.Errorf("provider close: %w", err))
	}
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache close: %w", err))
		}
	}
	if m.healthChecker != nil {
		m.healthChecker.Stop()
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}

// TimeToJulianDay converts a time.Time (any location) to a Julian day.
func TimeToJulianDay(t time.Time) JulianDay {
	utc := t.UTC()
	year, month, day := utc.Date()
	m := int(month)
	y := year
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	jd := float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(m+1))) +
		float64(day) + float64(b) - 1524.5
	jd += float64(utc.Hour())/24.0 + float64(utc.Minute())/1440.0 + float64(utc.Second())/86400.0
	return JulianDay(jd)
}
