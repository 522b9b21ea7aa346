package fieldpath

import (
	"reflect"
	"sort"
	"strings"
)

// Separator delimits path segments.
const Separator = "."

// Split breaks a path into its segments. An empty path has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// Join builds a path from segments, skipping empty ones.
func Join(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, Separator)
}

// Get returns the value stored at path inside root.
// The second result is false when a segment is absent, or when an intermediate
// value is nil or not a string-keyed map. An empty path addresses root itself.
func Get(root any, path string) (any, bool) {
	current := root
	for _, key := range Split(path) {
		next, ok := child(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// child looks up key in a string-keyed map of any concrete type.
func child(node any, key string) (any, bool) {
	switch m := node.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// Set returns a copy of root with value stored at path.
// Maps along the path are shallow-copied; missing or non-map intermediates are
// replaced by new maps. root itself is never modified and may be nil.
// An empty path returns a shallow copy of root.
func Set(root map[string]any, path string, value any) map[string]any {
	keys := Split(path)
	out := clone(root)
	if len(keys) == 0 {
		return out
	}

	current := out
	for _, key := range keys[:len(keys)-1] {
		next, _ := current[key].(map[string]any)
		next = clone(next)
		current[key] = next
		current = next
	}
	current[keys[len(keys)-1]] = value
	return out
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DeepCopy copies every nested map[string]any in root. Leaf values are copied by assignment.
func DeepCopy(root map[string]any) map[string]any {
	if root == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(root))
	for k, v := range root {
		if nested, ok := v.(map[string]any); ok {
			out[k] = DeepCopy(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// Walk calls fn for every leaf of root with its full path, in sorted key order.
// Nested map[string]any values are descended into; everything else is a leaf.
// Walking stops early when fn returns false.
func Walk(root map[string]any, fn func(path string, value any) bool) {
	walk(root, "", fn)
}

func walk(node map[string]any, prefix string, fn func(string, any) bool) bool {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := Join(prefix, k)
		if nested, ok := node[k].(map[string]any); ok {
			if !walk(nested, path, fn) {
				return false
			}
			continue
		}
		if !fn(path, node[k]) {
			return false
		}
	}
	return true
}
