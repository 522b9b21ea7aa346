package fieldpath

import "errors"

var (
	// ErrNotStruct is returned when FromStruct receives something other than a struct or pointer to struct.
	ErrNotStruct = errors.New("fieldpath: value must be a struct or a pointer to struct")
)
