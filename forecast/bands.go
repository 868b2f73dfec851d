package forecast

import (
	"fmt"
	"sort"

	"github.com/sartorproj/goforecast/gbm"
	"github.com/sartorproj/goforecast/stats"
)

// Band summarizes the simulated distribution for one forecast year.
// Lower <= Median <= Upper always holds.
type Band struct {
	Year   int
	Lower  float64
	Median float64
	Upper  float64
}

// Summarize reduces an ensemble to one Band per forecast step, excluding the
// seed column: the first band describes step 1, the year after startYear.
// Percentiles use linear interpolation between order statistics (see
// stats.Percentile).
func Summarize(e *gbm.Ensemble, startYear int, lowerPct, upperPct float64) ([]Band, error) {
	if err := validatePercentiles(lowerPct, upperPct); err != nil {
		return nil, err
	}

	bands := make([]Band, e.Horizon())
	for t := 1; t <= e.Horizon(); t++ {
		col := e.Column(t)
		sort.Float64s(col)

		b := Band{
			Year:   startYear + t,
			Lower:  stats.PercentileSorted(col, lowerPct),
			Median: stats.PercentileSorted(col, 50),
			Upper:  stats.PercentileSorted(col, upperPct),
		}
		if b.Lower > b.Median || b.Median > b.Upper {
			return nil, fmt.Errorf("forecast: band ordering violated at step %d (lower %g, median %g, upper %g): %w",
				t, b.Lower, b.Median, b.Upper, ErrInternalConsistency)
		}
		bands[t-1] = b
	}
	return bands, nil
}

func validatePercentiles(lowerPct, upperPct float64) error {
	if lowerPct < 0 || lowerPct > 50 {
		return fmt.Errorf("forecast: lower percentile %g, must be in [0, 50]: %w", lowerPct, gbm.ErrInvalidParameter)
	}
	if upperPct < 50 || upperPct > 100 {
		return fmt.Errorf("forecast: upper percentile %g, must be in [50, 100]: %w", upperPct, gbm.ErrInvalidParameter)
	}
	return nil
}
