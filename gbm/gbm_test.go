package gbm

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/goforecast/stats"
)

func TestSimulateShape(t *testing.T) {
	growth := stats.Growth{Drift: 0.05, Volatility: 0.1}
	e, err := Simulate(100, growth, 5, 20, NewShockSource(1))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	if e.PathCount() != 20 {
		t.Errorf("PathCount = %d; want 20", e.PathCount())
	}
	if e.Horizon() != 5 {
		t.Errorf("Horizon = %d; want 5", e.Horizon())
	}
	for i, path := range e.Paths {
		if len(path) != 6 {
			t.Fatalf("path %d has %d columns; want 6", i, len(path))
		}
		if path[0] != 100 {
			t.Errorf("path %d seed column = %f; want 100", i, path[0])
		}
	}
}

func TestSimulateZeroVolatility(t *testing.T) {
	drift := math.Log(1.1)
	growth := stats.Growth{Drift: drift, Volatility: 0}
	e, err := Simulate(121, growth, 2, 50, NewShockSource(7))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	// Every path is the deterministic compounding of the drift.
	for i, path := range e.Paths {
		if math.Abs(path[1]-133.1) > 1e-9 {
			t.Errorf("path %d step 1 = %f; want 133.1", i, path[1])
		}
		if math.Abs(path[2]-146.41) > 1e-9 {
			t.Errorf("path %d step 2 = %f; want 146.41", i, path[2])
		}
	}
}

func TestSimulateStrictlyPositive(t *testing.T) {
	// Extreme volatility: multiplicative updates still cannot cross zero.
	growth := stats.Growth{Drift: -2, Volatility: 5}
	e, err := Simulate(1e-3, growth, 50, 200, NewShockSource(3))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	for i, path := range e.Paths {
		for step, v := range path {
			if v <= 0 {
				t.Fatalf("path %d step %d = %g; want > 0", i, step, v)
			}
		}
	}
}

func TestSimulateReproducible(t *testing.T) {
	growth := stats.Growth{Drift: 0.08, Volatility: 0.2}

	a, err := Simulate(100, growth, 10, 100, NewShockSource(42))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	b, err := Simulate(100, growth, 10, 100, NewShockSource(42))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	for i := range a.Paths {
		for j := range a.Paths[i] {
			if a.Paths[i][j] != b.Paths[i][j] {
				t.Fatalf("ensembles differ at path %d step %d: %g vs %g",
					i, j, a.Paths[i][j], b.Paths[i][j])
			}
		}
	}
}

func TestSimulateParallelReproducible(t *testing.T) {
	growth := stats.Growth{Drift: 0.08, Volatility: 0.2}

	// More paths than one chunk so several workers participate.
	a, err := SimulateParallel(100, growth, 8, 1000, 42)
	if err != nil {
		t.Fatalf("SimulateParallel error: %v", err)
	}
	b, err := SimulateParallel(100, growth, 8, 1000, 42)
	if err != nil {
		t.Fatalf("SimulateParallel error: %v", err)
	}

	for i := range a.Paths {
		for j := range a.Paths[i] {
			if a.Paths[i][j] != b.Paths[i][j] {
				t.Fatalf("ensembles differ at path %d step %d", i, j)
			}
		}
	}

	c, err := SimulateParallel(100, growth, 8, 1000, 43)
	if err != nil {
		t.Fatalf("SimulateParallel error: %v", err)
	}
	if a.Paths[0][1] == c.Paths[0][1] && a.Paths[999][8] == c.Paths[999][8] {
		t.Error("different seeds produced an identical ensemble")
	}
}

func TestSimulateParallelZeroVolatility(t *testing.T) {
	growth := stats.Growth{Drift: math.Log(1.1), Volatility: 0}
	e, err := SimulateParallel(121, growth, 2, 600, 1)
	if err != nil {
		t.Fatalf("SimulateParallel error: %v", err)
	}

	for i, path := range e.Paths {
		if math.Abs(path[2]-146.41) > 1e-9 {
			t.Fatalf("path %d step 2 = %f; want 146.41", i, path[2])
		}
	}
}

func TestSimulateInvalidParameters(t *testing.T) {
	valid := stats.Growth{Drift: 0.05, Volatility: 0.1}
	cases := []struct {
		name    string
		seed    float64
		growth  stats.Growth
		horizon int
		paths   int
	}{
		{"ZeroHorizon", 100, valid, 0, 10},
		{"NegativeHorizon", 100, valid, -1, 10},
		{"ZeroPaths", 100, valid, 5, 0},
		{"ZeroSeedValue", 0, valid, 5, 10},
		{"NegativeSeedValue", -5, valid, 5, 10},
		{"NaNSeedValue", math.NaN(), valid, 5, 10},
		{"NaNDrift", 100, stats.Growth{Drift: math.NaN()}, 5, 10},
		{"NaNVolatility", 100, stats.Growth{Volatility: math.NaN()}, 5, 10},
		{"NegativeVolatility", 100, stats.Growth{Volatility: -0.1}, 5, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(tc.seed, tc.growth, tc.horizon, tc.paths, NewShockSource(1))
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Simulate error = %v; want ErrInvalidParameter", err)
			}
			_, err = SimulateParallel(tc.seed, tc.growth, tc.horizon, tc.paths, 1)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("SimulateParallel error = %v; want ErrInvalidParameter", err)
			}
		})
	}
}

func TestSimulateNilSource(t *testing.T) {
	_, err := Simulate(100, stats.Growth{Drift: 0.05, Volatility: 0.1}, 5, 10, nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Simulate error = %v; want ErrInvalidParameter", err)
	}
}

func TestColumn(t *testing.T) {
	growth := stats.Growth{Drift: math.Log(2), Volatility: 0}
	e, err := Simulate(1, growth, 2, 3, NewShockSource(1))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	col := e.Column(1)
	if len(col) != 3 {
		t.Fatalf("Column(1) has %d entries; want 3", len(col))
	}
	for i, v := range col {
		if math.Abs(v-2) > 1e-12 {
			t.Errorf("Column(1)[%d] = %f; want 2", i, v)
		}
	}

	// Mutating the returned column must not touch the ensemble.
	col[0] = 99
	if e.Paths[0][1] == 99 {
		t.Error("Column returned a view into the ensemble")
	}
}
