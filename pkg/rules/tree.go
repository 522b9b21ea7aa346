package rules

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// MessageKey is the reserved Rule Item entry holding a custom error message.
const MessageKey = validator.MessageKey

// Tree is an insertion-ordered rule declaration.
// Values are either nested *Tree values or scalar validator arguments.
type Tree struct {
	entries *orderedmap.OrderedMap
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{entries: orderedmap.New()}
}

// Set stores value under key and returns the tree for chaining.
// Re-setting an existing key keeps its original position.
// A map[string]any value is converted to a nested Tree with keys in sorted
// order, since Go maps carry no declaration order.
func (t *Tree) Set(key string, value any) *Tree {
	if m, ok := value.(map[string]any); ok {
		value = FromMap(m)
	}
	t.entries.Set(key, value)
	return t
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	return t.entries.Get(key)
}

// Keys returns the keys in declaration order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	t.each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return t.entries.Len()
}

func (t *Tree) each(fn func(key string, value any)) {
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key.(string), pair.Value)
	}
}

// FromMap builds a Tree from nested maps, ordering keys alphabetically.
func FromMap(m map[string]any) *Tree {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTree()
	for _, k := range keys {
		t.Set(k, m[k])
	}
	return t
}

// Field builds a leaf Rule Item from constraints in the given order.
func Field(constraints ...Constraint) *Tree {
	t := NewTree()
	for _, c := range constraints {
		t.Set(c.Name, c.Arg)
	}
	return t
}
