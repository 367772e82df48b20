package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolarRashiRange(t *testing.T) {
	for _, jd := range []float64{2451545.0, 2460000.5, 2460200.25} {
		r := SolarRashi(jd)
		assert.True(t, r >= 1 && r <= 12)
	}
}

func TestMasaForDateInvariants(t *testing.T) {
	for _, d := range []struct{ y, m, d int }{{2025, 1, 13}, {2012, 8, 18}, {2012, 9, 18}} {
		mi := MasaForDate(d.y, d.m, d.d, delhi)
		assert.True(t, mi.Name >= 1 && mi.Name <= 12)
		assert.True(t, mi.JDStart < mi.JDEnd)
		assert.True(t, mi.JDEnd-mi.JDStart > 25 && mi.JDEnd-mi.JDStart < 31)
	}
}

func TestAdhikaMasaAroundBhadrapada2012(t *testing.T) {
	aug := MasaForDate(2012, 8, 18, delhi)
	sep := MasaForDate(2012, 9, 18, delhi)

	assert.Equal(t, "Bhadrapada", MasaName(aug.Name))
	assert.True(t, aug.IsAdhika)
	assert.Equal(t, 1934, aug.YearSaka)

	assert.Equal(t, "Bhadrapada", MasaName(sep.Name))
	assert.False(t, sep.IsAdhika)
	assert.Equal(t, 1934, sep.YearSaka)
}

func TestMasaNameLookup(t *testing.T) {
	assert.Equal(t, "Chaitra", MasaName(1))
	assert.Equal(t, "Phalguna", MasaName(12))
}
