package form

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// NewFromSettings creates a Form for tree configured from s.
func NewFromSettings(ctx context.Context, tree *rules.Tree, s config.Settings) (*Form, error) {
	opts, err := OptionsFromSettings(ctx, s)
	if err != nil {
		return nil, err
	}
	opts.Rules = tree
	return New(opts), nil
}

// OptionsFromSettings translates s into Options: a logger built from the log
// settings, scroll-to-field, and a message catalog when MessagesPath is set.
// Callers add their own Rules and presentation callbacks.
func OptionsFromSettings(ctx context.Context, s config.Settings) (Options, error) {
	log, err := NewLogger(s)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		ScrollToField: s.ScrollToField,
		Language:      s.Language,
		Logger:        log,
	}
	if s.MessagesPath == "" {
		return opts, nil
	}

	catalog, err := LoadCatalog(ctx, s.MessagesPath, log)
	if err != nil {
		return Options{}, err
	}
	opts.Translator = catalog
	opts.Language = catalog.Match(s.Language)
	log.DebugContext(ctx, "message catalog loaded",
		slog.String("path", s.MessagesPath),
		logger.Language(opts.Language),
	)
	return opts, nil
}

// NewLogger builds the logger described by the log settings of s.
// Explicit level and format override the environment defaults.
func NewLogger(s config.Settings) (*slog.Logger, error) {
	opts := []logger.Option{logger.WithEnvironment(s.Environment, "formkit")}

	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidSettings, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidSettings, err)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// LoadCatalog loads a message catalog from a single file or from every
// supported file in a directory.
func LoadCatalog(ctx context.Context, path string, log *slog.Logger) (*i18n.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}

	var translations map[string]map[string]any
	if info.IsDir() {
		translations, err = i18n.LoadDir(ctx, path)
	} else {
		translations, err = i18n.LoadFile(ctx, path)
	}
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}

	catalog, err := i18n.NewCatalog(translations, i18n.WithLogger(log))
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}
	return catalog, nil
}
