package stats

import (
	"math"
	"sort"
)

// Percentile returns the pct-th percentile (0..100) of values using linear
// interpolation between order statistics: for n samples the percentile sits
// at fractional rank pct/100*(n-1), interpolated between the two nearest
// sorted samples. This matches the default of numpy's percentile; other
// interpolation schemes give slightly different band edges, so this one is
// fixed here and used everywhere. The input slice is not modified.
//
// Returns NaN for an empty slice.
func Percentile(values []float64, pct float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return PercentileSorted(sorted, pct)
}

// PercentileSorted is Percentile over an already ascending-sorted slice,
// avoiding repeated sorts when several percentiles of one sample are needed.
func PercentileSorted(sorted []float64, pct float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[n-1]
	}

	rank := pct / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 50th percentile of values.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}
