// Package stats provides log-return growth estimation and percentile utilities.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goforecast/timeseries"
)

// Growth holds the estimated parameters of the lognormal growth model.
type Growth struct {
	Drift      float64 // Mean log-return per year
	Volatility float64 // Sample standard deviation of log-returns
	N          int     // Number of log-returns used
}

// LogReturns computes the consecutive log-returns ln(v[t]/v[t-1]) of a
// series. Pairs where either value is non-positive are excluded; the return
// is undefined there.
func LogReturns(series *timeseries.Annual) []float64 {
	returns := make([]float64, 0, series.Len())
	for i := 1; i < series.Len(); i++ {
		prev, cur := series.Values[i-1], series.Values[i]
		if prev <= 0 || cur <= 0 {
			continue
		}
		returns = append(returns, math.Log(cur/prev))
	}
	return returns
}

// EstimateGrowth estimates drift and volatility from the log-returns of a
// historical series. The series must be sorted by year ascending; zero-valued
// years should have been dropped by the caller (see Annual.FilterPositive).
//
// At least two log-returns (three positive observations) are required: with a
// single return the sample standard deviation has zero degrees of freedom and
// is undefined, so the degenerate case is rejected rather than silently
// treated as zero volatility.
func EstimateGrowth(series *timeseries.Annual) (Growth, error) {
	returns := LogReturns(series)
	if len(returns) < 2 {
		return Growth{}, fmt.Errorf("stats: %d usable log-returns, need at least 2: %w", len(returns), ErrInsufficientData)
	}
	return Growth{
		Drift:      stat.Mean(returns, nil),
		Volatility: stat.StdDev(returns, nil),
		N:          len(returns),
	}, nil
}
