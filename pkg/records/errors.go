package records

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of all argument validation errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyLabels is returned when rows are requested but a label set is empty.
	ErrEmptyLabels = fmt.Errorf("%w: label set is empty", ErrInvalidArgument)

	ErrNilWriter  = fmt.Errorf("%w: writer is nil", ErrInvalidArgument)
	ErrNilStorage = fmt.Errorf("%w: storage is nil", ErrInvalidArgument)

	// Sink errors, wrapped with the underlying cause
	ErrFailedToWrite      = errors.New("failed to write records")
	ErrFailedToCreateFile = errors.New("failed to create file")
	ErrFailedToSave       = errors.New("failed to save records")
)
