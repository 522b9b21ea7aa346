// Package validation evaluates rule trees against form values.
//
// An Engine owns the flattened form of a rules.Tree and a validator.Registry.
// ValidateField runs the Rule Item for one field path; ValidateAll runs every
// field the rules mention against a nested data map.
//
// Evaluation of a field walks its validators in declaration order, skipping the
// "message" entry and names the registry does not know. The first failing
// validator decides the outcome and later validators are not invoked. Fields
// without a Rule Item, and items with no known validators, pass without being
// evaluated.
//
// # Messages
//
// A failing validator's message is, in order of preference, the item's custom
// "message", the translator's template for "validation.<name>", or the
// registry's default template. {{name}} becomes the field label reported by
// the LabelResolver (the raw path when none is set or it has no label) and
// {{value}} becomes the validator's expected argument.
//
// # Collaborators
//
// Presentation concerns are injected rather than looked up: WithLabelResolver
// supplies friendly field names and WithFocuser receives the path of a failing
// field when scroll-to-field is enabled.
//
// The Engine is safe for concurrent use. Predicates are pure and the flattened
// rules are immutable; SetRules swaps them atomically.
package validation
