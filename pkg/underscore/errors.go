package underscore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of every validation error below.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNegativeCount    = fmt.Errorf("%w: sentence count cannot be negative", ErrInvalidArgument)
	ErrEmptyVocabulary  = fmt.Errorf("%w: vocabulary cannot be empty", ErrInvalidArgument)
	ErrInvalidWordCount = fmt.Errorf("%w: word count must be positive", ErrInvalidArgument)
)
