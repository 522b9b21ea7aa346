// Package fieldpath addresses leaves of nested form data with dot-delimited
// paths such as "person.age".
//
// Form values are plain nested maps (map[string]any) owned by the caller. The
// package reads leaves with Get and writes them with Set. Set never mutates its
// input: every map along the path is shallow-copied and the new root is
// returned, so callers relying on reference inequality to detect changes see a
// fresh value after each update while untouched branches stay shared.
//
// # Usage
//
//	data := fieldpath.Set(nil, "person.age", "30")
//	// data == map[string]any{"person": map[string]any{"age": "30"}}
//
//	age, ok := fieldpath.Get(data, "person.age")
//
// Walk visits every leaf of a nested map in a stable order, which is how the
// form controller decides whether any error is still set.
//
// FromStruct converts a tagged struct into the nested map shape the rest of the
// kit understands, for callers that keep their form state in typed structs.
//
// # Missing values
//
// Only absent keys and nil values are treated as missing. Falsy values such as
// 0 or "" are real values and are returned as-is.
package fieldpath
