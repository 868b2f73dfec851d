package stats

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		pct    float64
		want   float64
	}{
		{"MedianOdd", []float64{3, 1, 2}, 50, 2},
		{"MedianEven", []float64{4, 1, 3, 2}, 50, 2.5},
		{"LowerQuartile", []float64{1, 2, 3}, 25, 1.5},
		{"Interpolated", []float64{10, 20, 30, 40, 50}, 5, 12},
		{"Zeroth", []float64{5, 1, 9}, 0, 1},
		{"Hundredth", []float64{5, 1, 9}, 100, 9},
		{"SingleSample", []float64{7}, 95, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentile(tc.values, tc.pct)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Percentile(%v, %g) = %f; want %f", tc.values, tc.pct, got, tc.want)
			}
		})
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); !math.IsNaN(got) {
		t.Errorf("Percentile(nil, 50) = %f; want NaN", got)
	}
}

func TestPercentileDoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Percentile(values, 50)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input modified: %v", values)
	}
}

func TestPercentileMonotoneInPct(t *testing.T) {
	values := []float64{12, 3, 7, 42, 1, 9, 30, 18, 5, 26}
	prev := math.Inf(-1)
	for pct := 0.0; pct <= 100; pct += 2.5 {
		got := Percentile(values, pct)
		if got < prev {
			t.Fatalf("Percentile not monotone: p%.1f = %f < %f", pct, got, prev)
		}
		prev = got
	}
}

func TestMedian(t *testing.T) {
	if got := Median([]float64{1, 2, 3, 100}); got != 2.5 {
		t.Errorf("Median = %f; want 2.5", got)
	}
}
