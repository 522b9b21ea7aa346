package validation

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Engine validates form values against a rule tree.
type Engine struct {
	registry      *validator.Registry
	labels        LabelResolver
	focus         Focuser
	scrollToField bool
	translator    MessageTranslator
	lang          string
	logger        *slog.Logger

	memo rules.Memo

	mu     sync.RWMutex
	flat   *rules.Flat
	warned *rules.Flat
}

// New creates an Engine for tree. A nil tree validates nothing.
func New(tree *rules.Tree, opts ...Option) *Engine {
	e := &Engine{
		registry: validator.Default(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.SetRules(tree)
	return e
}

// SetRules switches to tree. The tree is flattened again only when it is a
// different pointer from the current one.
func (e *Engine) SetRules(tree *rules.Tree) {
	flat := e.memo.Flatten(tree)

	e.mu.Lock()
	e.flat = flat
	fresh := e.warned != flat
	e.warned = flat
	e.mu.Unlock()

	if fresh {
		e.reportUnknown(flat)
	}
}

// reportUnknown logs validator names the registry does not know. They are
// skipped during validation.
func (e *Engine) reportUnknown(flat *rules.Flat) {
	for path, names := range flat.Unknown(e.registry.Has) {
		for _, name := range names {
			e.logger.Warn("unknown validator ignored", logger.Field(path), logger.Validator(name))
		}
	}
}

// Rules returns the flattened rules currently in use.
func (e *Engine) Rules() *rules.Flat {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.flat
}

// ValidateField validates value against the Rule Item for path.
func (e *Engine) ValidateField(value any, path string) Outcome {
	return e.validate(e.Rules(), value, path)
}

// ValidateAll validates every field path of the rules against data.
// data is a nested map or a struct (converted with fieldpath.FromStruct).
// Every field is evaluated; the report passes only if all of them pass.
func (e *Engine) ValidateAll(data any) Report {
	flat := e.Rules()
	root := normalize(data)

	report := Report{Passed: true, Outcomes: make([]Outcome, 0, flat.Len())}
	for _, path := range flat.Paths() {
		value, _ := fieldpath.Get(root, path)
		outcome := e.validate(flat, value, path)
		report.Outcomes = append(report.Outcomes, outcome)
		report.Passed = report.Passed && outcome.Passed
	}
	return report
}

func (e *Engine) validate(flat *rules.Flat, value any, path string) Outcome {
	out := Outcome{Path: path, Passed: true}

	item, ok := flat.Lookup(path)
	if !ok {
		return out
	}

	for _, c := range item.Constraints() {
		v, ok := e.registry.Lookup(c.Name)
		if !ok {
			continue
		}
		out.Evaluated = true
		if v.Check(value, c.Arg) {
			continue
		}

		out.Passed = false
		out.Validator = v.Name
		out.Message = e.message(path, item, v, c.Arg)

		e.logger.Debug("field failed validation", logger.Field(path), logger.Validator(v.Name))
		if e.scrollToField && e.focus != nil {
			e.focus(path)
		}
		return out
	}
	return out
}

func (e *Engine) message(path string, item rules.Item, v validator.Validator, arg any) string {
	label := e.label(path)
	value := validator.FormatArg(arg)

	if custom, ok := item.Message(); ok {
		return validator.Render(custom, label, value)
	}
	if e.translator != nil {
		params := map[string]string{"name": label, "value": value}
		if tmpl, ok := e.translator.Translate(e.lang, v.TranslationKey(), params); ok {
			return validator.Render(tmpl, label, value)
		}
	}
	return validator.Render(v.Template, label, value)
}

func (e *Engine) label(path string) string {
	if e.labels == nil {
		return path
	}
	if l, ok := e.labels(path); ok && l != "" {
		return l
	}
	return path
}

// normalize turns struct inputs into nested maps; everything else is used as-is.
func normalize(data any) any {
	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return data
	}
	m, err := fieldpath.FromStruct(data)
	if err != nil {
		return data
	}
	return m
}
