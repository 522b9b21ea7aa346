package form

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/validation"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Options configures a Form. Only Rules is usually needed.
type Options struct {
	Rules *rules.Tree

	// ScrollToField calls Focuser with the path of every failing field.
	ScrollToField bool

	LabelResolver validation.LabelResolver
	Focuser       validation.Focuser

	// Registry replaces the built-in validators when set.
	Registry *validator.Registry

	// Translator localizes default messages into Language.
	Translator validation.MessageTranslator
	Language   string

	Logger *slog.Logger
}

// FieldEvent describes a field losing focus.
type FieldEvent struct {
	ID    string
	Name  string
	Value any
}

// Path returns the field identity: Name, or ID when Name is empty.
func (e FieldEvent) Path() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Form holds the Error State Tree of a single form instance.
type Form struct {
	id     string
	engine *validation.Engine
	logger *slog.Logger

	mu     sync.RWMutex
	errors map[string]any
}

// New creates a Form with an empty Error State Tree.
func New(opts Options) *Form {
	id := uuid.NewString()

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.FormID(id))

	engineOpts := []validation.Option{
		validation.WithLogger(log),
		validation.WithScrollToField(opts.ScrollToField),
		validation.WithRegistry(opts.Registry),
	}
	if opts.LabelResolver != nil {
		engineOpts = append(engineOpts, validation.WithLabelResolver(opts.LabelResolver))
	}
	if opts.Focuser != nil {
		engineOpts = append(engineOpts, validation.WithFocuser(opts.Focuser))
	}
	if opts.Translator != nil {
		engineOpts = append(engineOpts, validation.WithTranslator(opts.Translator, opts.Language))
	}

	return &Form{
		id:     id,
		engine: validation.New(opts.Rules, engineOpts...),
		logger: log,
		errors: map[string]any{},
	}
}

// ID returns the identifier attached to this form's log records.
func (f *Form) ID() string {
	return f.id
}

// SetRules replaces the rule tree. Existing error leaves are kept.
func (f *Form) SetRules(tree *rules.Tree) {
	f.engine.SetRules(tree)
}

// SetNestedValue returns a copy of data with value stored at path.
// data itself is not modified.
func SetNestedValue(data map[string]any, path string, value any) map[string]any {
	return fieldpath.Set(data, path, value)
}

// OnBlur validates the field named by ev and records the outcome.
// Events without a field identity pass without validation.
func (f *Form) OnBlur(ev FieldEvent) bool {
	path := ev.Path()
	if path == "" {
		f.logger.Debug("blur event without field identity ignored")
		return true
	}

	out := f.engine.ValidateField(ev.Value, path)

	f.mu.Lock()
	f.store(out)
	f.mu.Unlock()

	return out.Passed
}

// OnSubmit validates every field of data and records each outcome.
// It reports true only when all fields pass. data is a nested map or a struct
// with `form` tags.
func (f *Form) OnSubmit(ctx context.Context, data any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	report := f.engine.ValidateAll(data)

	f.mu.Lock()
	for _, out := range report.Outcomes {
		f.store(out)
	}
	f.mu.Unlock()

	f.logger.DebugContext(ctx, "form submitted",
		logger.Passed(report.Passed),
		slog.Int("failed", len(report.Failed())),
	)
	return report.Passed, nil
}

// store writes an evaluated outcome into the Error State Tree.
// Caller must hold f.mu.
func (f *Form) store(out validation.Outcome) {
	if !out.Evaluated {
		return
	}
	var leaf any = false
	if !out.Passed {
		leaf = out.Message
	}
	f.errors = fieldpath.Set(f.errors, out.Path, leaf)
}

// Reset sets the given leaves to false. Without paths the whole tree is cleared.
func (f *Form) Reset(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(paths) == 0 {
		f.errors = map[string]any{}
		return
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		f.errors = fieldpath.Set(f.errors, path, false)
	}
}

// Passed reports whether every leaf of the Error State Tree is falsy.
// An empty tree has passed.
func (f *Form) Passed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	passed := true
	fieldpath.Walk(f.errors, func(_ string, value any) bool {
		if failed(value) {
			passed = false
		}
		return passed
	})
	return passed
}

// Error returns the message stored for path, if the field failed.
func (f *Form) Error(path string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := fieldpath.Get(f.errors, path)
	if !ok || !failed(v) {
		return "", false
	}
	msg, ok := v.(string)
	return msg, ok
}

// Result returns a copy of the Error State Tree.
func (f *Form) Result() map[string]any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return fieldpath.DeepCopy(f.errors)
}

func failed(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		return true
	}
}
