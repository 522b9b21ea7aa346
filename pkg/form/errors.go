package form

import "errors"

var (
	// ErrInvalidSettings is returned when the log settings cannot be parsed.
	ErrInvalidSettings = errors.New("invalid form settings")

	// ErrLoadingMessages is returned when the message catalog cannot be loaded.
	ErrLoadingMessages = errors.New("failed to load message catalog")
)
