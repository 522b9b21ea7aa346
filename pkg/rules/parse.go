package rules

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON rule document into a Tree.
// The document must be a mapping whose values are mappings or scalars;
// key order is preserved. An empty document yields an empty Tree.
func Parse(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	if doc.Kind == 0 {
		return NewTree(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewTree(), nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: root must be a mapping", ErrInvalidDocument, root.Line)
	}
	return decodeMapping(root)
}

// ParseFile reads and parses a rule document from disk.
func ParseFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

func decodeMapping(n *yaml.Node) (*Tree, error) {
	t := NewTree()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}

		switch value.Kind {
		case yaml.MappingNode:
			sub, err := decodeMapping(value)
			if err != nil {
				return nil, err
			}
			t.Set(key.Value, sub)
		case yaml.ScalarNode:
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %q: %v", ErrInvalidDocument, value.Line, key.Value, err)
			}
			t.Set(key.Value, v)
		default:
			return nil, fmt.Errorf("%w: line %d: %q must be a mapping or a scalar", ErrInvalidDocument, value.Line, key.Value)
		}
	}
	return t, nil
}
