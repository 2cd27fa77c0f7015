package menucount

import "errors"

// ErrEmptyInput is returned when there is nothing to count.
var ErrEmptyInput = errors.New("menu item list is empty")
