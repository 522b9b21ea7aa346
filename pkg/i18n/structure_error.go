package i18n

import "fmt"

// StructureError reports a language entry that is not a mapping.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("language %q: expected mapping, got %T", e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}
