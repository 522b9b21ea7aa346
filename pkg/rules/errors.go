package rules

import "errors"

var (
	// ErrInvalidDocument is returned when a rule document is not a mapping of mappings and scalars.
	ErrInvalidDocument = errors.New("invalid rule document")

	// ErrFailedToReadFile is returned when a rule document cannot be read from disk.
	ErrFailedToReadFile = errors.New("failed to read rule document")
)
