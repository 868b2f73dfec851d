// Package stats provides log-return growth estimation and percentile utilities.
//
// This package estimates the parameters of the lognormal growth model from
// historical data and supplies the percentile primitive used to summarize
// simulation ensembles.
//
// # Growth Estimation
//
// Estimate drift and volatility from an annual series:
//
//	growth, err := stats.EstimateGrowth(series)
//	fmt.Printf("drift=%.4f volatility=%.4f from %d returns\n",
//	    growth.Drift, growth.Volatility, growth.N)
//
// Drift is the arithmetic mean and volatility the sample standard deviation
// (denominator n-1) of the consecutive log-returns ln(v[t]/v[t-1]). At least
// two usable log-returns are required; with fewer, EstimateGrowth returns
// ErrInsufficientData.
//
// # Percentiles
//
// Percentiles use linear interpolation between order statistics:
//
//	p5 := stats.Percentile(values, 5)
//	med := stats.Median(values)
//	p95 := stats.Percentile(values, 95)
package stats
