package ephemeris

import (
	"context"
	"fmt"
	"math"

	"github.com/dra8an/hindu-calendar-sub003/observability"
	"go.opentelemetry.io/otel/attribute"
)

// LagrangeInterpolate evaluates the Lagrange interpolating polynomial
// through the points (xs[i], ys[i]) at x. len(xs) must equal len(ys) and be
// at least 2; the caller picks how many points bracket x.
func LagrangeInterpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	var result float64
	for j := 0; j < n; j++ {
		term := ys[j]
		for m := 0; m < n; m++ {
			if m != j {
				term *= (x - xs[m]) / (xs[j] - xs[m])
			}
		}
		result += term
	}
	return result
}

// InverseLagrangeInterpolate solves for x such that the Lagrange polynomial
// through (xs[i], ys[i]) equals target, by interpolating x as a function of
// y. This is the classical technique for bracketing a zero crossing (e.g. a
// new moon's lunar-solar longitude difference passing through 0°) from a
// handful of samples without a derivative.
func InverseLagrangeInterpolate(xs, ys []float64, target float64) float64 {
	return LagrangeInterpolate(ys, xs, target)
}

// Position is a longitude/latitude/distance/speed sample used when
// interpolating an ephemeris series, independent of whether it came from
// the Sun or the Moon.
type Position struct {
	Longitude float64
	Latitude  float64
	Distance  float64
	Speed     float64
}

// InterpolationMethod selects how many samples Interpolator uses:
// InterpolationLinear uses two, the other methods use Config.Order. Every
// method evaluates a Lagrange polynomial through the samples; no spline is
// fitted.
type InterpolationMethod string

const (
	InterpolationLinear      InterpolationMethod = "linear"
	InterpolationLagrange    InterpolationMethod = "lagrange"
	InterpolationCubicSpline InterpolationMethod = "cubic_spline"
)

// InterpolationConfig configures an Interpolator.
type InterpolationConfig struct {
	Method    InterpolationMethod
	Order     int     // number of sample points for Lagrange, recommended 3-7
	Tolerance float64 // degrees; stored in the config, not read by Interpolator
}

// DefaultInterpolationConfig returns a reasonable default configuration.
func DefaultInterpolationConfig() InterpolationConfig {
	return InterpolationConfig{
		Method:    InterpolationCubicSpline,
		Order:     5,
		Tolerance: 0.0001,
	}
}

// Interpolator estimates Sun/Moon longitude between directly-computed
// samples, useful when a caller wants many closely-spaced positions (e.g.
// scanning for a sankranti) without paying for a full ephemeris evaluation
// at every step.
type Interpolator struct {
	manager  *Manager
	config   InterpolationConfig
	observer observability.ObserverInterface
}

// NewInterpolator creates an Interpolator fronting manager.
func NewInterpolator(manager *Manager, config InterpolationConfig) *Interpolator {
	return &Interpolator{
		manager:  manager,
		config:   config,
		observer: observability.Observer(),
	}
}

type dataPoint struct {
	jd       float64
	position Position
}

// InterpolateSunLongitude estimates the Sun's apparent longitude at jd from
// samples surrounding it.
func (i *Interpolator) InterpolateSunLongitude(ctx context.Context, jd JulianDay) (float64, error) {
	ctx, span := i.observer.CreateSpan(ctx, "interpolator.InterpolateSunLongitude")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)))

	points, err := i.sunDataPoints(ctx, jd)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	lon := i.interpolateLongitude(points, float64(jd))
	span.SetAttributes(attribute.Float64("longitude", lon))
	return NormalizeAngle(lon), nil
}

// InterpolateMoonLongitude estimates the Moon's apparent longitude at jd
// from samples surrounding it.
func (i *Interpolator) InterpolateMoonLongitude(ctx context.Context, jd JulianDay) (float64, error) {
	ctx, span := i.observer.CreateSpan(ctx, "interpolator.InterpolateMoonLongitude")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)))

	points, err := i.moonDataPoints(ctx, jd)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	lon := i.interpolateLongitude(points, float64(jd))
	span.SetAttributes(attribute.Float64("longitude", lon))
	return NormalizeAngle(lon), nil
}

func (i *Interpolator) sunDataPoints(ctx context.Context, jd JulianDay) ([]dataPoint, error) {
	n := i.numPoints()
	offset := float64(n-1) / 2.0
	start := float64(jd) - offset
	points := make([]dataPoint, 0, n)
	for j := 0; j < n; j++ {
		cur := JulianDay(start + float64(j))
		pos, err := i.manager.GetSunPosition(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("sun sample at %f: %w", cur, err)
		}
		points = append(points, dataPoint{jd: float64(cur), position: Position{Longitude: pos.ApparentLongitude}})
	}
	return points, nil
}

func (i *Interpolator) moonDataPoints(ctx context.Context, jd JulianDay) ([]dataPoint, error) {
	n := i.numPoints()
	offset := float64(n-1) / 2.0
	start := float64(jd) - offset
	points := make([]dataPoint, 0, n)
	for j := 0; j < n; j++ {
		cur := JulianDay(start + float64(j))
		pos, err := i.manager.GetMoonPosition(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("moon sample at %f: %w", cur, err)
		}
		points = append(points, dataPoint{jd: float64(cur), position: Position{Longitude: pos.ApparentLongitude}})
	}
	return points, nil
}

func (i *Interpolator) numPoints() int {
	if i.config.Method == InterpolationLinear {
		return 2
	}
	return i.config.Order
}

func (i *Interpolator) interpolateLongitude(points []dataPoint, jd float64) float64 {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for idx, p := range points {
		xs[idx] = p.jd
		ys[idx] = p.position.Longitude
	}
	unwrapDegrees(ys)
	return LagrangeInterpolate(xs, ys, jd)
}

// unwrapDegrees removes 0/360 discontinuities from a sequence of nearby
// longitude samples so a polynomial can be fit through them directly.
func unwrapDegrees(ys []float64) {
	for i := 1; i < len(ys); i++ {
		for ys[i]-ys[i-1] > 180 {
			ys[i] -= 360
		}
		for ys[i]-ys[i-1] < -180 {
			ys[i] += 360
		}
	}
}

// NormalizeAngle reduces an angle to the half-open range [0, 360).
func NormalizeAngle(angle float64) float64 {
	result := math.Mod(angle, 360.0)
	if result < 0 {
		result += 360.0
	}
	return result
}

// GetInterpolationMethod returns the current interpolation method.
func (i *Interpolator) GetInterpolationMethod() InterpolationMethod {
	return i.config.Method
}

// SetInterpolationMethod sets the interpolation method.
func (i *Interpolator) SetInterpolationMethod(method InterpolationMethod) {
	i.config.Method = method
}
