package profile

import "errors"

var (
	ErrFailedToReadProfile  = errors.New("failed to read profile")
	ErrFailedToParseProfile = errors.New("failed to parse profile")
	ErrInvalidProfile       = errors.New("invalid profile")
)
