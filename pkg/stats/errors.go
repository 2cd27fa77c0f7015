package stats

import "errors"

// ErrEmptyInput is returned when the groups hold no values at all.
var ErrEmptyInput = errors.New("no values to summarize")
