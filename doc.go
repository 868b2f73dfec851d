// Package goforecast provides stochastic forecasting of annual displacement counts.
//
// GoForecast fits a discrete-time geometric random walk (lognormal
// multiplicative growth) to a historical series of yearly counts and projects
// a Monte Carlo ensemble of future trajectories, reduced to median and
// percentile bands that express forecast uncertainty.
//
// # Features
//
//   - Drift/volatility estimation from historical log-returns
//   - Geometric random walk path simulation, sequential or parallel
//   - Reproducible runs under an explicit RNG seed
//   - Percentile band summaries (lower/median/upper) per forecast year
//   - Exceedance probabilities against capacity thresholds
//   - CSV ingestion for annual (year, value) data
//
// # Quick Start
//
// Forecast five years ahead from an annual series:
//
//	series, _ := timeseries.New(
//	    []int{2019, 2020, 2021, 2022, 2023},
//	    []float64{79.5e6, 82.4e6, 89.3e6, 108.4e6, 117.3e6},
//	)
//	cfg := forecast.DefaultConfig()
//	cfg.Horizon = 5
//	cfg.Seed = 42 // fixed seed for a reproducible run
//	result, _ := forecast.Run(series, cfg)
//	for _, b := range result.Bands {
//	    fmt.Printf("%d: %.0f [%.0f, %.0f]\n", b.Year, b.Median, b.Lower, b.Upper)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Annual series data structures and CSV loading
//   - stats: Log-return growth estimation and percentile utilities
//   - gbm: Geometric random walk ensemble simulation
//   - forecast: End-to-end forecasting and band summaries
package goforecast
