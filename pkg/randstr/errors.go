package randstr

import "errors"

// ErrInvalidMaxLength is returned when maxLength is smaller than 1.
var ErrInvalidMaxLength = errors.New("max length must be at least 1")
