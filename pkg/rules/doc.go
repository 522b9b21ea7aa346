// Package rules models declarative validation rules for nested forms.
//
// A Tree mirrors the shape of the form data it validates. Every entry is either
// a nested *Tree or a scalar argument. The scalar entries of one Tree form a
// Rule Item: validator name → expected argument, plus an optional "message"
// entry overriding the error text. Entries keep their declaration order, which
// is the order validators run in.
//
//	tree := rules.NewTree().
//	    Set("name", rules.Field(rules.Required(), rules.MinLength(5))).
//	    Set("person", rules.NewTree().
//	        Set("age", rules.Field(rules.Required(), rules.Message("Age is required"))))
//
// Flatten turns a Tree into a Flat lookup keyed by dotted field path
// ("person.age"). Flattening is pure; Memo caches the result per Tree pointer
// so a Tree is flattened again only when a different Tree is supplied.
//
// Rule documents can also be written in YAML or JSON and loaded with Parse or
// ParseFile. Key order in the document is preserved.
package rules
