// Package forecast orchestrates growth estimation, simulation, and band summaries.
package forecast

import (
	"fmt"
	"time"

	"github.com/sartorproj/goforecast/gbm"
	"github.com/sartorproj/goforecast/stats"
	"github.com/sartorproj/goforecast/timeseries"
)

// Config holds configuration for a forecast run. All settings are per call;
// concurrent runs with different configs do not interfere.
type Config struct {
	Horizon  int     // Number of years to project (default: 5)
	Paths    int     // Number of simulated trajectories (default: 2000)
	LowerPct float64 // Lower band percentile, in [0, 50] (default: 5)
	UpperPct float64 // Upper band percentile, in [50, 100] (default: 95)
	Seed     uint64  // RNG seed; runs with equal seeds and configs are bit-identical
}

// DefaultConfig returns the default forecast configuration with a
// time-derived RNG seed. Set Seed explicitly for reproducible runs.
func DefaultConfig() *Config {
	return &Config{
		Horizon:  5,
		Paths:    2000,
		LowerPct: 5,
		UpperPct: 95,
		Seed:     RandomSeed(),
	}
}

// RandomSeed returns a seed derived from the current time.
func RandomSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Result represents the outcome of a forecast run. Bands is the summary;
// Ensemble is retained for custom post-processing without re-running the
// simulation.
type Result struct {
	SeedYear  int          // Last observed year, origin of all paths
	SeedValue float64      // Last observed value, column 0 of the ensemble
	Growth    stats.Growth // Estimated drift and volatility
	Bands     []Band       // One per forecast year, Horizon in total
	Ensemble  *gbm.Ensemble
}

// Run forecasts a historical annual series cfg.Horizon years ahead.
//
// Zero-valued years are dropped, growth statistics are estimated from the
// remaining log-returns, an ensemble of cfg.Paths trajectories is simulated
// from the last observation, and the ensemble is reduced to percentile bands.
// A nil cfg uses DefaultConfig.
//
// Errors from the stages (stats.ErrInsufficientData, gbm.ErrInvalidParameter,
// ErrInternalConsistency) are propagated unchanged; on error no partial
// result is returned.
func Run(series *timeseries.Annual, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := validatePercentiles(cfg.LowerPct, cfg.UpperPct); err != nil {
		return nil, err
	}

	positive := series.FilterPositive()
	growth, err := stats.EstimateGrowth(positive)
	if err != nil {
		return nil, err
	}

	last := positive.Last()
	ensemble, err := gbm.SimulateParallel(last.Value, growth, cfg.Horizon, cfg.Paths, cfg.Seed)
	if err != nil {
		return nil, err
	}

	bands, err := Summarize(ensemble, last.Year, cfg.LowerPct, cfg.UpperPct)
	if err != nil {
		return nil, err
	}

	return &Result{
		SeedYear:  last.Year,
		SeedValue: last.Value,
		Growth:    growth,
		Bands:     bands,
		Ensemble:  ensemble,
	}, nil
}

// ExceedanceProb returns the fraction of simulated paths at or above
// threshold at forecast step (1..Horizon) — the probability that the value
// crosses a capacity threshold by that year.
func (r *Result) ExceedanceProb(step int, threshold float64) (float64, error) {
	if step < 1 || step > r.Ensemble.Horizon() {
		return 0, fmt.Errorf("forecast: step %d outside 1..%d: %w", step, r.Ensemble.Horizon(), gbm.ErrInvalidParameter)
	}
	count := 0
	for _, path := range r.Ensemble.Paths {
		if path[step] >= threshold {
			count++
		}
	}
	return float64(count) / float64(r.Ensemble.PathCount()), nil
}
