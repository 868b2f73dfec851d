package stats

import "errors"

// ErrInsufficientData indicates too few usable historical points to estimate
// growth statistics.
var ErrInsufficientData = errors.New("stats: insufficient data")
