package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a message document into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// byLanguage checks the top level of a decoded document.
func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		m, ok := val.(map[string]any)
		if !ok {
			return nil, &StructureError{Lang: lang, Got: val}
		}
		result[lang] = m
	}
	return result, nil
}
