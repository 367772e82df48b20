package panchangam

import (
	"time"

	"github.com/dra8an/hindu-calendar-sub003/astronomy/solar"
)

// Config holds the configuration for the Panchangam service.
type Config struct {
	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Regional solar calendar selection: which of the four regional
	// traditions (spec §3 SolarCalendarType) a region's gregorian_to_solar
	// / solar_to_gregorian queries resolve to.
	DefaultSolarCalendar solar.CalendarType
	RegionSolarCalendars map[string]solar.CalendarType
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheSize:            1000,
		CacheTTL:             24 * time.Hour,
		DefaultSolarCalendar: solar.Tamil,
		RegionSolarCalendars: map[string]solar.CalendarType{
			"Tamil Nadu":  solar.Tamil,
			"Chennai":     solar.Tamil,
			"West Bengal": solar.Bengali,
			"Kolkata":     solar.Bengali,
			"Odisha":      solar.Odia,
			"Bhubaneswar": solar.Odia,
			"Kerala":      solar.Malayalam,
			"Kochi":       solar.Malayalam,
		},
	}
}

// ResolveSolarCalendar returns the regional solar calendar tradition
// configured for region, falling back to DefaultSolarCalendar.
func (c Config) ResolveSolarCalendar(region string) solar.CalendarType {
	if ct, ok := c.RegionSolarCalendars[region]; ok {
		return ct
	}
	return c.DefaultSolarCalendar
}
