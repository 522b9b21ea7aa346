package validator

import "errors"

var (
	// ErrEmptyName is returned when registering a validator without a name.
	ErrEmptyName = errors.New("validator name is empty")

	// ErrNilCheck is returned when registering a validator without a predicate.
	ErrNilCheck = errors.New("validator predicate is nil")

	// ErrDuplicate is returned when a validator name is already registered.
	ErrDuplicate = errors.New("validator already registered")

	// ErrReservedName is returned when registering a validator under the reserved "message" key.
	ErrReservedName = errors.New("validator name is reserved")
)
