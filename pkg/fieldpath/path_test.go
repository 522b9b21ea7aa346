package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
)

func TestSplitJoin(t *testing.T) {
	assert.Nil(t, fieldpath.Split(""))
	assert.Equal(t, []string{"person", "age"}, fieldpath.Split("person.age"))
	assert.Equal(t, "person.age", fieldpath.Join("person", "age"))
	assert.Equal(t, "age", fieldpath.Join("", "age"))
}

func TestGet(t *testing.T) {
	data := map[string]any{
		"name":  "abcde",
		"zero":  0,
		"empty": "",
		"person": map[string]any{
			"age":  "20",
			"tags": map[string]string{"role": "admin"},
		},
	}

	t.Run("top level leaf", func(t *testing.T) {
		v, ok := fieldpath.Get(data, "name")
		require.True(t, ok)
		assert.Equal(t, "abcde", v)
	})

	t.Run("nested leaf", func(t *testing.T) {
		v, ok := fieldpath.Get(data, "person.age")
		require.True(t, ok)
		assert.Equal(t, "20", v)
	})

	t.Run("typed string map", func(t *testing.T) {
		v, ok := fieldpath.Get(data, "person.tags.role")
		require.True(t, ok)
		assert.Equal(t, "admin", v)
	})

	t.Run("falsy leaves are values", func(t *testing.T) {
		v, ok := fieldpath.Get(data, "zero")
		require.True(t, ok)
		assert.Equal(t, 0, v)

		v, ok = fieldpath.Get(data, "empty")
		require.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("missing segment", func(t *testing.T) {
		_, ok := fieldpath.Get(data, "person.height")
		assert.False(t, ok)
		_, ok = fieldpath.Get(data, "address.city")
		assert.False(t, ok)
	})

	t.Run("scalar intermediate", func(t *testing.T) {
		_, ok := fieldpath.Get(data, "name.first")
		assert.False(t, ok)
		_, ok = fieldpath.Get(data, "zero.x")
		assert.False(t, ok)
	})

	t.Run("nil root", func(t *testing.T) {
		_, ok := fieldpath.Get(nil, "name")
		assert.False(t, ok)
	})

	t.Run("custom map type", func(t *testing.T) {
		type values map[string]int
		v, ok := fieldpath.Get(map[string]any{"n": values{"a": 1}}, "n.a")
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})
}

func TestSet(t *testing.T) {
	t.Run("creates intermediates", func(t *testing.T) {
		got := fieldpath.Set(map[string]any{}, "person.age", "30")
		assert.Equal(t, map[string]any{"person": map[string]any{"age": "30"}}, got)
	})

	t.Run("nil root", func(t *testing.T) {
		got := fieldpath.Set(nil, "name", "x")
		assert.Equal(t, map[string]any{"name": "x"}, got)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		person := map[string]any{"age": "20", "name": "abc"}
		root := map[string]any{"person": person, "other": map[string]any{"a": 1}}

		got := fieldpath.Set(root, "person.age", "21")

		assert.Equal(t, "20", person["age"])
		assert.Equal(t, "21", got["person"].(map[string]any)["age"])
		assert.Equal(t, "abc", got["person"].(map[string]any)["name"])
		got["extra"] = true
		assert.NotContains(t, root, "extra")
		// untouched branches are shared
		assert.Equal(t, root["other"], got["other"])
	})

	t.Run("replaces scalar intermediate", func(t *testing.T) {
		got := fieldpath.Set(map[string]any{"person": "oops"}, "person.age", 1)
		assert.Equal(t, map[string]any{"person": map[string]any{"age": 1}}, got)
	})

	t.Run("empty path copies root", func(t *testing.T) {
		root := map[string]any{"a": 1}
		got := fieldpath.Set(root, "", 2)
		assert.Equal(t, root, got)
	})
}

func TestDeepCopy(t *testing.T) {
	root := map[string]any{"person": map[string]any{"age": false}}
	cp := fieldpath.DeepCopy(root)
	cp["person"].(map[string]any)["age"] = "changed"
	assert.Equal(t, false, root["person"].(map[string]any)["age"])

	assert.Equal(t, map[string]any{}, fieldpath.DeepCopy(nil))
}

func TestWalk(t *testing.T) {
	root := map[string]any{
		"name": false,
		"person": map[string]any{
			"name": "too short",
			"age":  false,
		},
	}

	var paths []string
	fieldpath.Walk(root, func(path string, _ any) bool {
		paths = append(paths, path)
		return true
	})
	assert.Equal(t, []string{"name", "person.age", "person.name"}, paths)

	var visited int
	fieldpath.Walk(root, func(string, any) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}
