package saltedhash

import "errors"

var (
	ErrInvalidHex      = errors.New("invalid hex string")
	ErrInvalidSaltSize = errors.New("salt size cannot be negative")
	ErrFailedToSalt    = errors.New("failed to generate salt")
)
