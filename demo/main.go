// Package main demonstrates stochastic displacement forecasting with real data.
// Data shape follows the UNHCR Refugee Data Finder yearly exports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sartorproj/goforecast/forecast"
	"github.com/sartorproj/goforecast/timeseries"
)

// BandResult holds one forecast year for JSON export
type BandResult struct {
	Year   int     `json:"year"`
	Lower  float64 `json:"lower"`
	Median float64 `json:"median"`
	Upper  float64 `json:"upper"`
}

// OutputData holds all results for downstream tooling
type OutputData struct {
	SeedYear   int          `json:"seed_year"`
	SeedValue  float64      `json:"seed_value"`
	Drift      float64      `json:"drift"`
	Volatility float64      `json:"volatility"`
	NReturns   int          `json:"n_returns"`
	Historical []float64    `json:"historical"`
	Years      []int        `json:"years"`
	Bands      []BandResult `json:"bands"`
}

func main() {
	file := flag.String("file", "persons_of_concern.csv", "CSV file with annual data")
	yearCol := flag.String("year-column", "Year", "year column name")
	valueCol := flag.String("value-column", "Refugees under UNHCR's mandate", "value column name")
	skipRows := flag.Int("skip-rows", 0, "rows before the CSV header")
	horizon := flag.Int("horizon", 5, "years to forecast")
	paths := flag.Int("paths", 10000, "simulated trajectories")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-derived)")
	threshold := flag.Float64("threshold", 0, "capacity threshold for exceedance probability (0 = skip)")
	flag.Parse()

	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("GoForecast Demonstration - Stochastic Displacement Forecast")
	fmt.Println(strings.Repeat("=", 72))

	series, err := loadSeries(*file, *yearCol, *valueCol, *skipRows)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", *file, err)
		os.Exit(1)
	}
	series = series.FilterPositive()
	if series.Len() == 0 {
		fmt.Println("Error: no years with positive totals")
		os.Exit(1)
	}

	first, last := series.Points()[0], series.Last()
	fmt.Printf("\nLoaded %d years (%d-%d), latest total %.1fM\n",
		series.Len(), first.Year, last.Year, last.Value/1e6)

	cfg := forecast.DefaultConfig()
	cfg.Horizon = *horizon
	cfg.Paths = *paths
	if *seed != 0 {
		cfg.Seed = *seed
	}

	result, err := forecast.Run(series, cfg)
	if err != nil {
		fmt.Printf("Forecast failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nEstimated growth: drift=%.4f volatility=%.4f (%d log-returns)\n",
		result.Growth.Drift, result.Growth.Volatility, result.Growth.N)
	fmt.Printf("Simulated %d paths, %d years ahead, seed %d\n\n", cfg.Paths, cfg.Horizon, cfg.Seed)

	fmt.Printf("%-6s %12s %12s %12s\n", "Year", "P5", "Median", "P95")
	for _, b := range result.Bands {
		fmt.Printf("%-6d %11.1fM %11.1fM %11.1fM\n",
			b.Year, b.Lower/1e6, b.Median/1e6, b.Upper/1e6)
	}

	if *threshold > 0 {
		step := len(result.Bands)
		p, err := result.ExceedanceProb(step, *threshold)
		if err == nil {
			fmt.Printf("\nP(>= %.1fM by %d) = %.1f%%\n",
				*threshold/1e6, result.Bands[step-1].Year, 100*p)
		}
	}

	export(series, result)
	fmt.Println(strings.Repeat("=", 72))
}

// loadSeries reads the annual totals from a yearly export CSV.
func loadSeries(file, yearCol, valueCol string, skipRows int) (*timeseries.Annual, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.YearColumn = yearCol
	opts.ValueColumn = valueCol
	opts.SkipRows = skipRows
	return timeseries.LoadAnnualCSV(file, opts)
}

// export writes the forecast to forecast_results.json for downstream tooling.
func export(series *timeseries.Annual, result *forecast.Result) {
	output := OutputData{
		SeedYear:   result.SeedYear,
		SeedValue:  result.SeedValue,
		Drift:      result.Growth.Drift,
		Volatility: result.Growth.Volatility,
		NReturns:   result.Growth.N,
		Historical: series.Values,
		Years:      series.Years,
		Bands:      make([]BandResult, 0, len(result.Bands)),
	}
	for _, b := range result.Bands {
		output.Bands = append(output.Bands, BandResult{
			Year: b.Year, Lower: b.Lower, Median: b.Median, Upper: b.Upper,
		})
	}

	if data, err := json.MarshalIndent(output, "", "  "); err == nil {
		os.WriteFile("forecast_results.json", data, 0644)
		fmt.Println("\nExported forecast to forecast_results.json")
	}
}
