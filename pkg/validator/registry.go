package validator

import (
	"fmt"
	"sync"
)

// Validator names understood by the built-in catalog.
const (
	NameRequired        = "required"
	NameMinLength       = "minLength"
	NameMaxLength       = "maxLength"
	NameMin             = "min"
	NameMax             = "max"
	NameNumber          = "number"
	NameEmail           = "email"
	NameURL             = "url"
	NameURLWithProtocol = "urlWithProtocol"
	NameColor           = "color"
	NameRegex           = "regex"
)

// MessageKey is reserved in rule items for the custom error message.
const MessageKey = "message"

// Predicate reports whether value satisfies the validator given the expected argument.
type Predicate func(value, arg any) bool

// Validator is a named predicate with its default message template.
type Validator struct {
	Name     string
	Check    Predicate
	Template string
}

// TranslationKey returns the catalog key used to localize the validator message.
func (v Validator) TranslationKey() string {
	return "validation." + v.Name
}

// Builtins returns the built-in validators in catalog order.
func Builtins() []Validator {
	return []Validator{
		{Name: NameRequired, Check: Required, Template: "{{name}} is required."},
		{Name: NameMinLength, Check: MinLength, Template: "{{name}} min length value is {{value}}"},
		{Name: NameMaxLength, Check: MaxLength, Template: "{{name}} max length value is {{value}}"},
		{Name: NameMin, Check: Min, Template: "{{name}} min value is {{value}}"},
		{Name: NameMax, Check: Max, Template: "{{name}} max value is {{value}}"},
		{Name: NameNumber, Check: Number, Template: "{{name}} the value must be a valid number."},
		{Name: NameEmail, Check: Email, Template: "{{name}} invalid email format."},
		{Name: NameURL, Check: URL, Template: "{{name}} invalid URL format."},
		{Name: NameURLWithProtocol, Check: URLWithProtocol, Template: "{{name}} invalid URL format."},
		{Name: NameColor, Check: Color, Template: "{{name}} invalid color format."},
		{Name: NameRegex, Check: Regex, Template: "{{name}} the value does not match the required pattern."},
	}
}

// Registry is a named set of validators. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
	order      []string
}

// NewRegistry creates a registry holding the given validators.
func NewRegistry(validators ...Validator) (*Registry, error) {
	r := &Registry{validators: make(map[string]Validator, len(validators))}
	for _, v := range validators {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a new registry with the built-in catalog.
// Each call returns an independent registry, so registering custom validators
// on one never affects another.
func Default() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		// built-in catalog is static
		panic(err)
	}
	return r
}

// Register adds a validator.
func (r *Registry) Register(v Validator) error {
	switch {
	case v.Name == "":
		return ErrEmptyName
	case v.Name == MessageKey:
		return fmt.Errorf("%w: %q", ErrReservedName, v.Name)
	case v.Check == nil:
		return fmt.Errorf("%w: %q", ErrNilCheck, v.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[v.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, v.Name)
	}
	r.validators[v.Name] = v
	r.order = append(r.order, v.Name)
	return nil
}

// Lookup returns the validator registered under name.
func (r *Registry) Lookup(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
