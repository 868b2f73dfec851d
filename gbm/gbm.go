// Package gbm implements geometric random walk ensemble simulation.
package gbm

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goforecast/stats"
)

// chunkSize is the number of paths simulated per worker chunk. It is a fixed
// constant rather than paths/workers so the chunk layout, and therefore the
// ensemble produced by a given seed, does not depend on the machine's core
// count.
const chunkSize = 256

// ShockSource is a stream of independent standard-normal draws.
// distuv.Normal satisfies it.
type ShockSource interface {
	Rand() float64
}

// NewShockSource returns a standard-normal shock source seeded with seed.
// Sources with equal seeds produce identical streams.
func NewShockSource(seed uint64) ShockSource {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
}

// Ensemble holds simulated trajectories: one row per path, with column 0 the
// shared seed value and columns 1..Horizon the simulated future values.
type Ensemble struct {
	SeedValue float64
	Paths     [][]float64
}

// PathCount returns the number of simulated paths.
func (e *Ensemble) PathCount() int {
	return len(e.Paths)
}

// Horizon returns the number of simulated steps per path.
func (e *Ensemble) Horizon() int {
	if len(e.Paths) == 0 {
		return 0
	}
	return len(e.Paths[0]) - 1
}

// Column returns a copy of the ensemble values at step t across all paths.
// t = 0 is the seed column.
func (e *Ensemble) Column(t int) []float64 {
	col := make([]float64, len(e.Paths))
	for i, path := range e.Paths {
		col[i] = path[t]
	}
	return col
}

// Simulate advances paths independent trajectories horizon steps forward from
// seedValue, drawing one shock per path per step from src:
//
//	v[t] = v[t-1] * exp(drift + volatility*shock)
//
// The multiplicative form keeps every simulated value strictly positive for
// any shock magnitude. Shocks are consumed path by path, so a given source
// state fully determines the ensemble.
func Simulate(seedValue float64, growth stats.Growth, horizon, paths int, src ShockSource) (*Ensemble, error) {
	if err := validate(seedValue, growth, horizon, paths); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("gbm: nil shock source: %w", ErrInvalidParameter)
	}

	e := newEnsemble(seedValue, horizon, paths)
	for _, path := range e.Paths {
		simulatePath(path, growth, src)
	}
	return e, nil
}

// SimulateParallel is Simulate partitioned into fixed-size path chunks, each
// simulated by its own seeded shock source so concurrent chunks never share a
// generator. Chunk seeds derive from seed alone; two calls with identical
// arguments produce identical ensembles regardless of core count.
func SimulateParallel(seedValue float64, growth stats.Growth, horizon, paths int, seed uint64) (*Ensemble, error) {
	if err := validate(seedValue, growth, horizon, paths); err != nil {
		return nil, err
	}

	chunks := (paths + chunkSize - 1) / chunkSize
	seeds := make([]uint64, chunks)
	master := rand.New(rand.NewSource(seed))
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	e := newEnsemble(seedValue, horizon, paths)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for c := 0; c < chunks; c++ {
		start := c * chunkSize
		end := min(start+chunkSize, paths)
		src := NewShockSource(seeds[c])
		g.Go(func() error {
			for _, path := range e.Paths[start:end] {
				simulatePath(path, growth, src)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return e, nil
}

func validate(seedValue float64, growth stats.Growth, horizon, paths int) error {
	if horizon < 1 {
		return fmt.Errorf("gbm: horizon %d, must be at least 1: %w", horizon, ErrInvalidParameter)
	}
	if paths < 1 {
		return fmt.Errorf("gbm: path count %d, must be at least 1: %w", paths, ErrInvalidParameter)
	}
	if seedValue <= 0 || math.IsInf(seedValue, 0) || math.IsNaN(seedValue) {
		return fmt.Errorf("gbm: seed value %g, must be positive and finite: %w", seedValue, ErrInvalidParameter)
	}
	// A NaN drift or volatility would silently corrupt every path.
	if math.IsNaN(growth.Drift) || math.IsInf(growth.Drift, 0) {
		return fmt.Errorf("gbm: drift %g, must be finite: %w", growth.Drift, ErrInvalidParameter)
	}
	if growth.Volatility < 0 || math.IsNaN(growth.Volatility) || math.IsInf(growth.Volatility, 0) {
		return fmt.Errorf("gbm: volatility %g, must be finite and non-negative: %w", growth.Volatility, ErrInvalidParameter)
	}
	return nil
}

func newEnsemble(seedValue float64, horizon, paths int) *Ensemble {
	rows := make([][]float64, paths)
	for i := range rows {
		rows[i] = make([]float64, horizon+1)
		rows[i][0] = seedValue
	}
	return &Ensemble{SeedValue: seedValue, Paths: rows}
}

func simulatePath(path []float64, growth stats.Growth, src ShockSource) {
	for t := 1; t < len(path); t++ {
		path[t] = path[t-1] * math.Exp(growth.Drift+growth.Volatility*src.Rand())
	}
}
