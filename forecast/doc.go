// Package forecast orchestrates growth estimation, simulation, and band summaries.
//
// A forecast run flows one way: historical series → drift/volatility
// estimation → geometric random walk ensemble → percentile bands. No stage
// reaches back into another's state, and nothing is shared across runs.
//
// # Running a Forecast
//
//	cfg := forecast.DefaultConfig()
//	cfg.Horizon = 10
//	cfg.Paths = 10000
//	cfg.Seed = 42 // fixed seed for a reproducible run
//
//	result, err := forecast.Run(series, cfg)
//	if err != nil {
//	    // stats.ErrInsufficientData: fewer than 3 positive observations
//	    // gbm.ErrInvalidParameter:   bad horizon, paths, or percentiles
//	}
//
// Each Band covers one forecast year; the seed year itself is not banded.
//
// # Custom Post-Processing
//
// The Result keeps the raw ensemble, so callers can derive quantities the
// bands do not express without re-simulating:
//
//	// Probability that 2027 exceeds 130 million displaced.
//	p, err := result.ExceedanceProb(2, 130e6)
package forecast
