package forecast

import "errors"

// ErrInternalConsistency indicates a violated band ordering invariant
// (lower <= median <= upper). It marks a defect in the percentile
// computation, never a legitimate data condition.
var ErrInternalConsistency = errors.New("forecast: internal consistency fault")
