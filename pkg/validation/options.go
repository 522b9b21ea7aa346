package validation

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// LabelResolver returns a display label for a field path.
type LabelResolver func(path string) (string, bool)

// Focuser brings the field at path into view.
type Focuser func(path string)

// MessageTranslator returns a localized template for key with %{param} placeholders filled.
type MessageTranslator interface {
	Translate(lang, key string, params map[string]string) (string, bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in validator catalog.
func WithRegistry(r *validator.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

func WithLabelResolver(fn LabelResolver) Option {
	return func(e *Engine) {
		e.labels = fn
	}
}

// WithFocuser sets the callback used when scroll-to-field is enabled.
func WithFocuser(fn Focuser) Option {
	return func(e *Engine) {
		e.focus = fn
	}
}

// WithScrollToField enables calling the focuser for failing fields. Off by default.
func WithScrollToField(enabled bool) Option {
	return func(e *Engine) {
		e.scrollToField = enabled
	}
}

// WithTranslator localizes default messages for lang.
func WithTranslator(t MessageTranslator, lang string) Option {
	return func(e *Engine) {
		e.translator = t
		e.lang = lang
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
