package ephemeris

import (
	"testing"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/stretchr/testify/assert"
)

var delhi = astronomy.Location{Latitude: 28.6139, Longitude: 77.2090, Altitude: 0, UTCOffset: 5.5}

func TestTithiPartitionInvariants(t *testing.T) {
	for _, d := range []struct{ y, m, d int }{{2025, 1, 13}, {2025, 1, 29}, {2025, 6, 15}} {
		ti := TithiAtSunrise(d.y, d.m, d.d, delhi)
		assert.True(t, ti.TithiNum >= 1 && ti.TithiNum <= 30)
		assert.True(t, ti.PakshaTithi >= 1 && ti.PakshaTithi <= 15)
		assert.True(t, ti.JDStart < ti.JDEnd)
	}
}

func TestPurnimaAmavasya(t *testing.T) {
	purnima := TithiAtSunrise(2025, 1, 13, delhi)
	assert.Equal(t, 15, purnima.TithiNum)
	assert.Equal(t, "Shukla", purnima.Paksha)

	amavasya := TithiAtSunrise(2025, 1, 29, delhi)
	assert.Equal(t, 30, amavasya.TithiNum)
	assert.Equal(t, "Krishna", amavasya.Paksha)
}

func TestKshayaTithi(t *testing.T) {
	jan11 := TithiAtSunrise(2025, 1, 11, delhi)
	jan12 := TithiAtSunrise(2025, 1, 12, delhi)
	assert.True(t, jan11.IsKshaya)
	assert.False(t, jan12.IsKshaya)
}

func TestAdhikaTithiNumberJan2025(t *testing.T) {
	jan18 := TithiAtSunrise(2025, 1, 18, delhi)
	jan19 := TithiAtSunrise(2025, 1, 19, delhi)
	assert.Equal(t, jan18.TithiNum, jan19.TithiNum)
	assert.Equal(t, 5, jan18.PakshaTithi)
	assert.Equal(t, "Krishna", jan18.Paksha)
}

func TestLunarPhaseAtPurnimaRange(t *testing.T) {
	jdDay := astronomy.JulianDayFromGregorian(2025, 1, 13)
	jdRise := Sunrise(jdDay, delhi)
	phase := LunarPhase(jdRise)
	assert.True(t, phase > 156 && phase < 192)
}
