// service.go
package panchangam

import (
	"context"
	"errors"
	"fmt"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/ephemeris"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/solar"
	"github.com/dra8an/hindu-calendar-sub003/log"
	"github.com/dra8an/hindu-calendar-sub003/observability"
)

var logger = log.Logger()

// Service is the in-process Panchangam API: a thin tracing/validation
// layer over the pure astronomy/ephemeris and astronomy/solar kernels.
// Per spec §5 the kernels themselves carry no state; Service owns only
// its Config, an observer, and an ephemeris.Manager for the raw-accessor
// query path (spec §6) — never a cache of HinduDate/SolarDate results.
type Service struct {
	config   Config
	observer observability.ObserverInterface
	ephem    *ephemeris.Manager
}

// NewService creates a Service with the given configuration.
func NewService(config Config) *Service {
	return &Service{
		config:   config,
		observer: observability.Observer(),
		ephem:    ephemeris.NewManager(ephemeris.NewDrikProvider(), ephemeris.NewMemoryCache(config.CacheSize, config.CacheTTL)),
	}
}

func validateDate(y, m, d int) error {
	if y < 1900 || y > 2050 {
		return fmt.Errorf("%w: year %d outside the supported 1900-2050 window", errOutOfRange, y)
	}
	if m < 1 || m > 12 {
		return fmt.Errorf("month %d out of range 1..12", m)
	}
	if d < 1 || d > astronomy.DaysInMonth(y, m) {
		return fmt.Errorf("day %d out of range for %04d-%02d", d, y, m)
	}
	return nil
}

// checkSunrise reports errCircumpolar when the civil day (y, m, d) at loc
// has no sunrise (polar latitudes near the solstices), per spec §7.
func checkSunrise(y, m, d int, loc astronomy.Location) error {
	jd := astronomy.JulianDayFromGregorian(y, m, d)
	if ephemeris.Sunrise(jd, loc) == 0 {
		return fmt.Errorf("%w: no sunrise on %04d-%02d-%02d at latitude %.4f", errCircumpolar, y, m, d, loc.Latitude)
	}
	return nil
}

var errOutOfRange = fmt.Errorf("date out of range")

// errCircumpolar reports that sunrise never occurs on the civil day
// requested (polar latitudes near the solstices).
var errCircumpolar = fmt.Errorf("sunrise undefined: circumpolar")

func categoryFor(err error) observability.ErrorCategory {
	switch {
	case errors.Is(err, errOutOfRange):
		return observability.CategoryOutOfRange
	case errors.Is(err, errCircumpolar):
		return observability.CategoryCircumpolar
	default:
		return observability.CategoryValidation
	}
}

// Panchanga returns the HinduDate holding at the sunrise of (y, m, d) at
// loc — spec's `panchanga(date, loc) → HinduDate` operation.
func (s *Service) Panchanga(ctx context.Context, y, m, d int, loc astronomy.Location) (ephemeris.HinduDate, error) {
	ctx, span := s.observer.CreateSpan(ctx, "Panchanga")
	defer span.End()

	if err := validateDate(y, m, d); err != nil {
		span.RecordError(err)
		observability.RecordError(ctx, err, observability.ErrorContext{
			Severity:  observability.SeverityMedium,
			Category:  categoryFor(err),
			Operation: "Panchanga",
			Component: "panchangam_service",
			Retryable: false,
		})
		return ephemeris.HinduDate{}, err
	}
	if err := checkSunrise(y, m, d, loc); err != nil {
		span.RecordError(err)
		observability.RecordError(ctx, err, observability.ErrorContext{
			Severity:  observability.SeverityMedium,
			Category:  categoryFor(err),
			Operation: "Panchanga",
			Component: "panchangam_service",
			Retryable: false,
		})
		return ephemeris.HinduDate{}, err
	}

	logger.InfoContext(ctx, "computing panchanga", "year", y, "month", m, "day", d)
	return ephemeris.Panchanga(y, m, d, loc), nil
}

// TithiAtSunrise returns the tithi holding at the sunrise of (y, m, d) at
// loc — spec's `tithi_at_sunrise(date, loc) → TithiInfo` operation.
func (s *Service) TithiAtSunrise(ctx context.Context, y, m, d int, loc astronomy.Location) (ephemeris.TithiInfo, error) {
	ctx, span := s.observer.CreateSpan(ctx, "TithiAtSunrise")
	defer span.End()

	if err := validateDate(y, m, d); err != nil {
		span.RecordError(err)
		return ephemeris.TithiInfo{}, err
	}
	if err := checkSunrise(y, m, d, loc); err != nil {
		span.RecordError(err)
		return ephemeris.TithiInfo{}, err
	}
	return ephemeris.TithiAtSunrise(y, m, d, loc), nil
}

// MasaForDate returns the lunar month holding at the sunrise of (y, m, d)
// at loc — spec's `masa_for_date(date, loc) → MasaInfo` operation.
func (s *Service) MasaForDate(ctx context.Context, y, m, d int, loc astronomy.Location) (ephemeris.MasaInfo, error) {
	ctx, span := s.observer.CreateSpan(ctx, "MasaForDate")
	defer span.End()

	if err := validateDate(y, m, d); err != nil {
		span.RecordError(err)
		return ephemeris.MasaInfo{}, err
	}
	return ephemeris.MasaForDate(y, m, d, loc), nil
}

// GregorianToSolar converts (y, m, d) at loc to the regional solar
// calendar identity for region — spec's
// `gregorian_to_solar(date, loc, type) → SolarDate` operation. The
// regional tradition is resolved from region via Config.
func (s *Service) GregorianToSolar(ctx context.Context, y, m, d int, loc astronomy.Location, region string) (solar.Date, error) {
	ctx, span := s.observer.CreateSpan(ctx, "GregorianToSolar")
	defer span.End()

	if err := validateDate(y, m, d); err != nil {
		span.RecordError(err)
		return solar.Date{}, err
	}

	calType := s.config.ResolveSolarCalendar(region)
	logger.InfoContext(ctx, "computing regional solar date",
		"year", y, "month", m, "day", d, "calendar", calType.String())
	return solar.GregorianToSolar(y, m, d, loc, calType), nil
}

// SolarToGregorian inverts GregorianToSolar — spec's
// `solar_to_gregorian(sd, type, loc) → date` operation.
func (s *Service) SolarToGregorian(ctx context.Context, sd solar.Date, region string, loc astronomy.Location) (int, int, int, error) {
	_, span := s.observer.CreateSpan(ctx, "SolarToGregorian")
	defer span.End()

	calType := s.config.ResolveSolarCalendar(region)
	y, m, d := solar.SolarToGregorian(sd, calType, loc)
	return y, m, d, nil
}

// RawPositions returns the Sun and Moon's apparent geocentric positions at
// jd — spec §6's "raw ephemeris accessors... for testing", routed through
// the cached ephemeris.Manager rather than calling the
// astronomy/ephemeris kernels directly.
func (s *Service) RawPositions(ctx context.Context, jd float64) (*ephemeris.SolarPosition, *ephemeris.LunarPosition, error) {
	ctx, span := s.observer.CreateSpan(ctx, "RawPositions")
	defer span.End()

	sun, err := s.ephem.GetSunPosition(ctx, ephemeris.JulianDay(jd))
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	moon, err := s.ephem.GetMoonPosition(ctx, ephemeris.JulianDay(jd))
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	return sun, moon, nil
}

// Health reports the DrikProvider's health status via
// Manager.GetHealthStatus, so a caller can verify the ephemeris backing this Service
// is serving data before relying on it for the 1900-2050 supported window.
func (s *Service) Health(ctx context.Context) (*ephemeris.HealthStatus, error) {
	_, span := s.observer.CreateSpan(ctx, "Health")
	defer span.End()
	return s.ephem.GetHealthStatus(ctx)
}

// Close releases the Service's ephemeris.Manager (cache and health checker).
func (s *Service) Close() error {
	return s.ephem.Close()
}
