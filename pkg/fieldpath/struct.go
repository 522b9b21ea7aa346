package fieldpath

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// TagName is the struct tag FromStruct reads field names from.
const TagName = "form"

// FromStruct converts a struct into nested form data.
// Field names come from the `form` tag; untagged fields use the lowercased Go
// name and `form:"-"` skips a field. Nested structs become nested maps,
// untagged embedded structs are merged into their parent, and nil pointers
// are omitted so they read as missing.
func FromStruct(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: got nil %s", ErrNotStruct, rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, rv.Kind())
	}

	out := make(map[string]any, rv.NumField())
	structToMap(rv, out)
	return out, nil
}

func structToMap(rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !sf.IsExported() {
			continue
		}

		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}

		if sf.Anonymous && sf.Tag.Get(TagName) == "" {
			if inner, ok := indirectStruct(field); ok {
				structToMap(inner, out)
			}
			continue
		}

		value, ok := fieldValue(field)
		if !ok {
			continue
		}
		out[name] = value
	}
}

// parseFieldTag returns the key for a struct field and whether to skip it.
func parseFieldTag(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get(TagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name), false
	}
	return name, false
}

func fieldValue(field reflect.Value) (any, bool) {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return nil, false
		}
		field = field.Elem()
	}

	// time.Time is a struct but reads as a scalar leaf.
	if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Time{}) {
		nested := make(map[string]any, field.NumField())
		structToMap(field, nested)
		return nested, true
	}
	return field.Interface(), true
}

func indirectStruct(field reflect.Value) (reflect.Value, bool) {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return reflect.Value{}, false
		}
		field = field.Elem()
	}
	return field, field.Kind() == reflect.Struct
}
