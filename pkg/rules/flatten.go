package rules

import (
	"sync"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

// Item is the set of constraints applying to one field.
type Item struct {
	constraints []Constraint
	message     string
}

// Constraints returns the validator constraints in declaration order, without the message entry.
func (i Item) Constraints() []Constraint {
	out := make([]Constraint, len(i.constraints))
	copy(out, i.constraints)
	return out
}

// Message returns the custom error message, if one was declared and is non-empty.
func (i Item) Message() (string, bool) {
	return i.message, i.message != ""
}

// Inert reports whether the item carries no validator constraints.
func (i Item) Inert() bool {
	return len(i.constraints) == 0
}

// Flat maps dotted field paths to Rule Items.
// It is read-only after construction and safe for concurrent use.
type Flat struct {
	paths []string
	items map[string]Item
}

// Flatten converts a Tree into a Flat lookup.
// Nested trees extend the path prefix; the scalar entries found at a prefix are
// grouped into the Item for that path. Scalars at the root have no field path
// and are ignored. Paths are ordered by first declaration.
func Flatten(t *Tree) *Flat {
	f := &Flat{items: make(map[string]Item)}
	if t != nil {
		f.collect(t, "")
	}
	return f
}

func (f *Flat) collect(t *Tree, prefix string) {
	t.each(func(key string, value any) {
		if sub, ok := value.(*Tree); ok && sub != nil {
			f.collect(sub, fieldpath.Join(prefix, key))
			return
		}
		if prefix == "" {
			return
		}
		f.add(prefix, key, value)
	})
}

func (f *Flat) add(path, key string, value any) {
	item, exists := f.items[path]
	if !exists {
		f.paths = append(f.paths, path)
	}
	if key == MessageKey {
		if s, ok := value.(string); ok {
			item.message = s
		}
	} else {
		item.constraints = append(item.constraints, Constraint{Name: key, Arg: value})
	}
	f.items[path] = item
}

// Lookup returns the Item for a field path.
func (f *Flat) Lookup(path string) (Item, bool) {
	item, ok := f.items[path]
	return item, ok
}

// Paths returns every field path in declaration order.
func (f *Flat) Paths() []string {
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}

// Len returns the number of field paths.
func (f *Flat) Len() int {
	return len(f.paths)
}

// Unknown lists, per field path, the constraint names for which known returns false.
// Fields without unknown names are omitted.
func (f *Flat) Unknown(known func(name string) bool) map[string][]string {
	out := make(map[string][]string)
	for _, path := range f.paths {
		for _, c := range f.items[path].constraints {
			if !known(c.Name) {
				out[path] = append(out[path], c.Name)
			}
		}
	}
	return out
}

// Memo caches the flattened form of the most recent Tree.
// The cache is keyed on the Tree pointer: mutating a Tree in place after it
// was flattened is not detected.
type Memo struct {
	mu   sync.Mutex
	tree *Tree
	flat *Flat
}

// Flatten returns the cached Flat when t is the same Tree as the previous call.
func (m *Memo) Flatten(t *Tree) *Flat {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.flat != nil && m.tree == t {
		return m.flat
	}
	m.tree = t
	m.flat = Flatten(t)
	return m.flat
}
