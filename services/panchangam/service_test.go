package panchangam

import (
	"context"
	"testing"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/solar"
	"github.com/dra8an/hindu-calendar-sub003/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDelhi = astronomy.Location{Latitude: 28.6139, Longitude: 77.2090, Altitude: 0, UTCOffset: 5.5}

func init() {
	observability.NewLocalObserver()
}

func TestServicePanchanga(t *testing.T) {
	svc := NewService(DefaultConfig())
	hd, err := svc.Panchanga(context.Background(), 2025, 1, 13, testDelhi)
	require.NoError(t, err)
	assert.True(t, hd.Tithi >= 1 && hd.Tithi <= 15)
	assert.Equal(t, "Shukla", hd.Paksha)
}

func TestServiceInvalidDate(t *testing.T) {
	svc := NewService(DefaultConfig())
	_, err := svc.Panchanga(context.Background(), 2025, 13, 1, testDelhi)
	assert.Error(t, err)

	_, err = svc.TithiAtSunrise(context.Background(), 2025, 2, 30, testDelhi)
	assert.Error(t, err)
}

func TestServiceOutOfRangeYear(t *testing.T) {
	svc := NewService(DefaultConfig())
	_, err := svc.Panchanga(context.Background(), 1850, 1, 1, testDelhi)
	require.Error(t, err)
	assert.ErrorIs(t, err, errOutOfRange)
}

func TestServiceCircumpolar(t *testing.T) {
	svc := NewService(DefaultConfig())
	polar := astronomy.Location{Latitude: 78.9, Longitude: 11.9, Altitude: 0, UTCOffset: 1}
	_, err := svc.TithiAtSunrise(context.Background(), 2025, 12, 21, polar)
	if err != nil {
		assert.ErrorIs(t, err, errCircumpolar)
	}
}

func TestServiceTithiAndMasa(t *testing.T) {
	svc := NewService(DefaultConfig())
	ti, err := svc.TithiAtSunrise(context.Background(), 2025, 1, 29, testDelhi)
	require.NoError(t, err)
	assert.Equal(t, 30, ti.TithiNum)

	mi, err := svc.MasaForDate(context.Background(), 2012, 8, 18, testDelhi)
	require.NoError(t, err)
	assert.Equal(t, mi.YearSaka+135, mi.YearVikram)
}

func TestServiceGregorianToSolarRoundTrip(t *testing.T) {
	svc := NewService(DefaultConfig())
	ctx := context.Background()
	chennai := astronomy.Location{Latitude: 13.0827, Longitude: 80.2707, Altitude: 0, UTCOffset: 5.5}

	sd, err := svc.GregorianToSolar(ctx, 2025, 4, 14, chennai, "Tamil Nadu")
	require.NoError(t, err)
	assert.Equal(t, 1, sd.Day)

	y, m, d, err := svc.SolarToGregorian(ctx, sd, "Tamil Nadu", chennai)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 4, m)
	assert.Equal(t, 14, d)
}

func TestServiceRawPositions(t *testing.T) {
	svc := NewService(DefaultConfig())
	jd := astronomy.JulianDayFromGregorian(2025, 1, 13)

	sun, moon, err := svc.RawPositions(context.Background(), jd)
	require.NoError(t, err)
	assert.True(t, sun.ApparentLongitude >= 0 && sun.ApparentLongitude < 360)
	assert.True(t, moon.ApparentLongitude >= 0 && moon.ApparentLongitude < 360)

	// Second call should hit the Manager's instance cache for the same jd.
	sunAgain, _, err := svc.RawPositions(context.Background(), jd)
	require.NoError(t, err)
	assert.Equal(t, sun.ApparentLongitude, sunAgain.ApparentLongitude)
}

func TestServiceHealth(t *testing.T) {
	svc := NewService(DefaultConfig())
	status, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Equal(t, "drik-analytical", status.Source)
}

func TestConfigResolveSolarCalendar(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, solar.Tamil, cfg.ResolveSolarCalendar("Tamil Nadu"))
	assert.Equal(t, solar.Bengali, cfg.ResolveSolarCalendar("West Bengal"))
	assert.Equal(t, cfg.DefaultSolarCalendar, cfg.ResolveSolarCalendar("Unknown Region"))
}
