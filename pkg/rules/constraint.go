package rules

import "github.com/dmitrymomot/formkit/pkg/validator"

// Constraint pairs a validator name with its expected argument.
type Constraint struct {
	Name string
	Arg  any
}

// Rule builds a constraint for any registered validator, including custom ones.
func Rule(name string, arg any) Constraint {
	return Constraint{Name: name, Arg: arg}
}

func Required() Constraint {
	return Rule(validator.NameRequired, true)
}

func MinLength(n int) Constraint {
	return Rule(validator.NameMinLength, n)
}

func MaxLength(n int) Constraint {
	return Rule(validator.NameMaxLength, n)
}

func Min(n float64) Constraint {
	return Rule(validator.NameMin, n)
}

func Max(n float64) Constraint {
	return Rule(validator.NameMax, n)
}

func Number() Constraint {
	return Rule(validator.NameNumber, true)
}

func Email() Constraint {
	return Rule(validator.NameEmail, true)
}

// URL accepts bare domains such as "example.com".
func URL() Constraint {
	return Rule(validator.NameURL, true)
}

// URLWithProtocol requires an http or https scheme.
func URLWithProtocol() Constraint {
	return Rule(validator.NameURLWithProtocol, true)
}

func Color() Constraint {
	return Rule(validator.NameColor, true)
}

// Regex accepts a pattern string or a compiled *regexp.Regexp.
func Regex(pattern any) Constraint {
	return Rule(validator.NameRegex, pattern)
}

// Message overrides the error text for every validator of the field.
func Message(text string) Constraint {
	return Rule(MessageKey, text)
}
