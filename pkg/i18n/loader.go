package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// LoadFile reads one message document from disk.
func LoadFile(ctx context.Context, filename string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	parser := NewParserForFile(filename)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filename)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}

// LoadDir reads every JSON and YAML document in dir, non-recursively.
func LoadDir(ctx context.Context, dir string) (map[string]map[string]any, error) {
	return LoadFS(ctx, os.DirFS(dir), ".")
}

// LoadFS reads every JSON and YAML document in dir of fsys, non-recursively,
// in lexical file order. Files with other extensions are skipped.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		merge(result, translations)
	}
	return result, nil
}

// merge deep-merges src into dst; values from src win.
func merge(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(messages))
		}
		mergeMaps(dst[lang], messages)
	}
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
