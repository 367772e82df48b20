package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dra8an/hindu-calendar-sub003/astronomy"
	"github.com/dra8an/hindu-calendar-sub003/astronomy/solar"
	"github.com/dra8an/hindu-calendar-sub003/services/panchangam"
)

var (
	outputFormat string
	verbose      bool
)

// Location presets
var locationPresets = map[string]struct {
	Lat    float64
	Lon    float64
	TZ     string
	Offset float64
	Name   string
}{
	"delhi":      {28.6139, 77.2090, "Asia/Kolkata", 5.5, "New Delhi, India"},
	"chennai":    {13.0827, 80.2707, "Asia/Kolkata", 5.5, "Chennai, India"},
	"kolkata":    {22.5726, 88.3639, "Asia/Kolkata", 5.5, "Kolkata, India"},
	"bhubaneswar": {20.2961, 85.8245, "Asia/Kolkata", 5.5, "Bhubaneswar, India"},
	"kochi":      {9.9312, 76.2673, "Asia/Kolkata", 5.5, "Kochi, India"},
	"mumbai":     {19.0760, 72.8777, "Asia/Kolkata", 5.5, "Mumbai, India"},
	"nyc":        {40.7128, -74.0060, "America/New_York", -5, "New York, USA"},
	"london":     {51.5074, -0.1278, "Europe/London", 0, "London, UK"},
	"tokyo":      {35.6762, 139.6503, "Asia/Tokyo", 9, "Tokyo, Japan"},
}

var svc = panchangam.NewService(panchangam.DefaultConfig())

func main() {
	var rootCmd = &cobra.Command{
		Use:   "panchangam-cli",
		Short: "Compute Hindu panchāṅga and regional solar calendar dates",
		Long: `panchangam-cli computes a self-contained Drik Siddhānta panchāṅga
(tithi and lunar month) and the four regional solar calendars (Tamil,
Bengali, Odia, Malayalam) entirely in-process, with no external
ephemeris service or network call.

Examples:
  panchangam-cli panchanga -d 2025-01-13 -l delhi
  panchangam-cli tithi -d 2025-01-29 -l delhi
  panchangam-cli masa -d 2012-08-18 -l delhi
  panchangam-cli solar -d 2025-04-14 -l chennai --region "Tamil Nadu"
  panchangam-cli locations`,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(createPanchangaCommand())
	rootCmd.AddCommand(createTithiCommand())
	rootCmd.AddCommand(createMasaCommand())
	rootCmd.AddCommand(createSolarCommand())
	rootCmd.AddCommand(createLocationsCommand())
	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createHealthCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveLocation returns the named preset when presetName is set, ignoring
// the lat/lon/offset flags; otherwise it builds the Location from the flags.
func resolveLocation(presetName string, lat, lon, utcOffset float64) (astronomy.Location, string, error) {
	if presetName == "" {
		return astronomy.Location{Latitude: lat, Longitude: lon, UTCOffset: utcOffset}, "", nil
	}
	preset, ok := locationPresets[presetName]
	if !ok {
		return astronomy.Location{}, "", fmt.Errorf("unknown location %q: see 'locations' command", presetName)
	}
	return astronomy.Location{Latitude: preset.Lat, Longitude: preset.Lon, UTCOffset: preset.Offset}, preset.Name, nil
}

func parseDateFlag(date string) (int, int, int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

func addDateLocationFlags(cmd *cobra.Command, lat, lon, offset *float64, location *string) {
	today := time.Now().Format("2006-01-02")
	cmd.Flags().StringP("date", "d", today, "Date in YYYY-MM-DD format")
	cmd.Flags().Float64Var(lat, "lat", 28.6139, "Latitude (-90 to 90)")
	cmd.Flags().Float64Var(lon, "lon", 77.2090, "Longitude (-180 to 180)")
	cmd.Flags().Float64Var(offset, "utc-offset", 5.5, "UTC offset hours")
	cmd.Flags().StringVarP(location, "location", "l", "", "Predefined location (see 'locations')")
}

func printResult(title string, fields map[string]interface{}, order []string) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(fields)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		fmt.Printf("%s\n", title)
		for _, k := range order {
			fmt.Printf("  %-16s %v\n", k+":", fields[k])
		}
	}
	return nil
}

func createPanchangaCommand() *cobra.Command {
	var lat, lon, offset float64
	var location string

	cmd := &cobra.Command{
		Use:   "panchanga",
		Short: "Compute the full HinduDate (māsa + tithi) for a civil sunrise",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			y, m, d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			loc, name, err := resolveLocation(location, lat, lon, offset)
			if err != nil {
				return err
			}

			hd, err := svc.Panchanga(context.Background(), y, m, d, loc)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Panchanga for %s", date)
			if name != "" {
				title += fmt.Sprintf(" at %s", name)
			}
			return printResult(title, map[string]interface{}{
				"masa":            hd.MasaName,
				"is_adhika_masa":  hd.IsAdhikaMasa,
				"paksha":          hd.Paksha,
				"tithi":           hd.Tithi,
				"is_adhika_tithi": hd.IsAdhikaTithi,
				"year_saka":       hd.YearSaka,
				"year_vikram":     hd.YearVikram,
			}, []string{"masa", "is_adhika_masa", "paksha", "tithi", "is_adhika_tithi", "year_saka", "year_vikram"})
		},
	}
	addDateLocationFlags(cmd, &lat, &lon, &offset, &location)
	return cmd
}

func createTithiCommand() *cobra.Command {
	var lat, lon, offset float64
	var location string

	cmd := &cobra.Command{
		Use:   "tithi",
		Short: "Compute the tithi holding at a civil sunrise",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			y, m, d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			loc, _, err := resolveLocation(location, lat, lon, offset)
			if err != nil {
				return err
			}

			ti, err := svc.TithiAtSunrise(context.Background(), y, m, d, loc)
			if err != nil {
				return err
			}

			return printResult(fmt.Sprintf("Tithi for %s", date), map[string]interface{}{
				"tithi_num":    ti.TithiNum,
				"name":         ti.Name,
				"paksha":       ti.Paksha,
				"paksha_tithi": ti.PakshaTithi,
				"type":         ti.Type,
				"is_kshaya":    ti.IsKshaya,
				"jd_start":     ti.JDStart,
				"jd_end":       ti.JDEnd,
			}, []string{"tithi_num", "name", "paksha", "paksha_tithi", "type", "is_kshaya", "jd_start", "jd_end"})
		},
	}
	addDateLocationFlags(cmd, &lat, &lon, &offset, &location)
	return cmd
}

func createMasaCommand() *cobra.Command {
	var lat, lon, offset float64
	var location string

	cmd := &cobra.Command{
		Use:   "masa",
		Short: "Compute the lunar month (amanta) holding at a civil sunrise",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			y, m, d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			loc, _, err := resolveLocation(location, lat, lon, offset)
			if err != nil {
				return err
			}

			mi, err := svc.MasaForDate(context.Background(), y, m, d, loc)
			if err != nil {
				return err
			}

			return printResult(fmt.Sprintf("Masa for %s", date), map[string]interface{}{
				"name":        mi.Name,
				"is_adhika":   mi.IsAdhika,
				"year_saka":   mi.YearSaka,
				"year_vikram": mi.YearVikram,
				"jd_start":    mi.JDStart,
				"jd_end":      mi.JDEnd,
			}, []string{"name", "is_adhika", "year_saka", "year_vikram", "jd_start", "jd_end"})
		},
	}
	addDateLocationFlags(cmd, &lat, &lon, &offset, &location)
	return cmd
}

func createSolarCommand() *cobra.Command {
	var lat, lon, offset float64
	var location, region string

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Compute the regional solar calendar date for a civil day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			y, m, d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			loc, _, err := resolveLocation(location, lat, lon, offset)
			if err != nil {
				return err
			}
			if region == "" {
				return fmt.Errorf("--region is required (e.g. \"Tamil Nadu\", \"West Bengal\", \"Odisha\", \"Kerala\")")
			}

			sd, err := svc.GregorianToSolar(context.Background(), y, m, d, loc, region)
			if err != nil {
				return err
			}

			calType := panchangam.DefaultConfig().ResolveSolarCalendar(region)
			return printResult(fmt.Sprintf("Solar date for %s (%s)", date, calType.String()), map[string]interface{}{
				"calendar":     calType.String(),
				"era":          calType.EraName(),
				"year":         sd.Year,
				"month":        sd.Month,
				"month_name":   calType.MonthName(sd.Month),
				"day":          sd.Day,
				"rashi":        sd.Rashi,
				"jd_sankranti": sd.JDSankranti,
			}, []string{"calendar", "era", "year", "month", "month_name", "day", "rashi", "jd_sankranti"})
		},
	}
	addDateLocationFlags(cmd, &lat, &lon, &offset, &location)
	cmd.Flags().StringVar(&region, "region", "", "Region name selecting a regional solar calendar")
	return cmd
}

func createLocationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List available predefined locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-12s %-22s %-15s %-10s\n", "CODE", "NAME", "COORDINATES", "UTC")
			for code, p := range locationPresets {
				fmt.Printf("%-12s %-22s %-15s %+.1f\n", code, p.Name, fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lon), p.Offset)
			}
			return nil
		},
	}
}

func createHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the ephemeris provider's health status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := svc.Health(context.Background())
			if err != nil {
				return err
			}
			return printResult("Ephemeris health", map[string]interface{}{
				"available":     status.Available,
				"source":        status.Source,
				"version":       status.Version,
				"data_start_jd": status.DataStartJD,
				"data_end_jd":   status.DataEndJD,
				"response_time": status.ResponseTime.String(),
			}, []string{"available", "source", "version", "data_start_jd", "data_end_jd", "response_time"})
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]interface{}{
				"cli_version": "1.0.0",
				"calendars":   []string{solar.Tamil.String(), solar.Bengali.String(), solar.Odia.String(), solar.Malayalam.String()},
			}
			return printResult("panchangam-cli", info, []string{"cli_version", "calendars"})
		},
	}
}
