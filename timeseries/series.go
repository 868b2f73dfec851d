// Package timeseries provides annual time series data structures and loading.
package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Point is a single annual observation.
type Point struct {
	Year  int
	Value float64
}

// Annual represents a yearly time series: one value per calendar year,
// ordered by strictly increasing year.
type Annual struct {
	Years  []int
	Values []float64
	Name   string
}

// New creates an annual series from parallel year and value slices.
// Years must be strictly increasing and values non-negative.
func New(years []int, values []float64) (*Annual, error) {
	if len(years) != len(values) {
		return nil, fmt.Errorf("timeseries: %d years vs %d values: %w", len(years), len(values), ErrLengthMismatch)
	}
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return nil, fmt.Errorf("timeseries: year %d follows %d: %w", years[i], years[i-1], ErrUnorderedYears)
		}
	}
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("timeseries: value %g for year %d: %w", v, years[i], ErrNegativeValue)
		}
	}
	return &Annual{
		Years:  append([]int(nil), years...),
		Values: append([]float64(nil), values...),
	}, nil
}

// Len returns the number of observations.
func (a *Annual) Len() int {
	return len(a.Values)
}

// Last returns the most recent observation.
func (a *Annual) Last() Point {
	n := len(a.Values)
	return Point{Year: a.Years[n-1], Value: a.Values[n-1]}
}

// Points returns the series as a slice of observations.
func (a *Annual) Points() []Point {
	pts := make([]Point, len(a.Values))
	for i := range pts {
		pts[i] = Point{Year: a.Years[i], Value: a.Values[i]}
	}
	return pts
}

// Mean calculates the arithmetic mean of the series values.
func (a *Annual) Mean() float64 {
	if len(a.Values) == 0 {
		return 0
	}
	return stat.Mean(a.Values, nil)
}

// Std calculates the sample standard deviation of the series values.
func (a *Annual) Std() float64 {
	if len(a.Values) < 2 {
		return 0
	}
	return stat.StdDev(a.Values, nil)
}

// FilterPositive returns a copy of the series with all zero-valued years
// removed. Zero counts mean "no data for that year" in source datasets and
// must not reach growth estimation.
func (a *Annual) FilterPositive() *Annual {
	years := make([]int, 0, len(a.Years))
	values := make([]float64, 0, len(a.Values))
	for i, v := range a.Values {
		if v > 0 {
			years = append(years, a.Years[i])
			values = append(values, v)
		}
	}
	return &Annual{Years: years, Values: values, Name: a.Name}
}

// Slice returns a copy of the series from start to end (exclusive).
func (a *Annual) Slice(start, end int) *Annual {
	if start < 0 {
		start = 0
	}
	if end > len(a.Values) {
		end = len(a.Values)
	}
	if start >= end {
		return &Annual{Name: a.Name}
	}
	return &Annual{
		Years:  append([]int(nil), a.Years[start:end]...),
		Values: append([]float64(nil), a.Values[start:end]...),
		Name:   a.Name,
	}
}

// Copy creates a deep copy of the series.
func (a *Annual) Copy() *Annual {
	return &Annual{
		Years:  append([]int(nil), a.Years...),
		Values: append([]float64(nil), a.Values...),
		Name:   a.Name,
	}
}
