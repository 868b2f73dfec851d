package gbm

import "errors"

// ErrInvalidParameter indicates malformed simulation configuration: a
// non-positive horizon, path count, or seed value, or non-finite growth
// statistics.
var ErrInvalidParameter = errors.New("gbm: invalid parameter")
