package timeseries

import "errors"

var (
	// ErrLengthMismatch indicates year and value slices of differing lengths.
	ErrLengthMismatch = errors.New("timeseries: years and values must have the same length")
	// ErrUnorderedYears indicates years that are not strictly increasing.
	ErrUnorderedYears = errors.New("timeseries: years must be strictly increasing")
	// ErrNegativeValue indicates a negative observation; counts cannot be negative.
	ErrNegativeValue = errors.New("timeseries: values must be non-negative")
	// ErrNoData indicates a CSV with no usable rows.
	ErrNoData = errors.New("timeseries: no valid data found in CSV")
	// ErrMissingColumn indicates a named column absent from the CSV header.
	ErrMissingColumn = errors.New("timeseries: column not found in header")
)
