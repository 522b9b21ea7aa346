// Package validator holds the catalog of named field validators used by the
// form validation engine.
//
// Each Validator pairs a pure Predicate with a default message template. A
// predicate receives the field value and the expected argument declared in the
// rule (for example 5 for minLength) and reports whether the value passes.
// Predicates are total: malformed input, unexpected types and invalid patterns
// make them return false, never panic.
//
// Built-in validators:
//
//   - required        – non-nil and not empty or whitespace-only
//   - minLength       – length >= arg; falsy values fail
//   - maxLength       – length <= arg; falsy values fail
//   - min             – number >= arg; falsy values count as 0
//   - max             – number <= arg; falsy values count as 0
//   - number          – value coerces to a number
//   - email           – local@domain.tld shape
//   - url             – bare domain such as example.com
//   - urlWithProtocol – http(s) URL with optional port and path
//   - color           – 3, 4, 6 or 8 digit hex color, "#" optional
//   - regex           – truthy value matching the pattern argument
//
// Coercion follows the loose rules form inputs usually need: numeric strings
// such as " 20 " count as numbers, and the falsy values (nil, false, 0, "")
// short-circuit the length and bound checks as documented above.
//
// # Templates
//
// Message templates contain {{name}} and {{value}} placeholders. Render fills
// them with the field label and the expected argument:
//
//	v, _ := validator.Default().Lookup(validator.NameMinLength)
//	msg := validator.Render(v.Template, "Name", validator.FormatArg(5))
//	// "Name min length value is 5"
//
// # Custom validators
//
// NewRegistry and Register accept additional validators. They must be pure and
// synchronous like the built-ins.
package validator
