// Package form keeps the validation state of one form.
//
// A Form wraps a validation.Engine and owns the Error State Tree: a nested map
// mirroring the data shape whose leaves are false (passed or untouched) or the
// message of the validator that failed. OnBlur validates a single field,
// OnSubmit validates every field the rules mention, and Reset clears leaves.
//
//	f := form.New(form.Options{Rules: tree})
//	data = form.SetNestedValue(data, "person.age", "30")
//	ok, err := f.OnSubmit(ctx, data)
//	if !ok {
//		render(f.Result())
//	}
//
// Result returns a copy of the tree, and SetNestedValue never mutates its
// input, so callers can detect changes by comparing references.
//
// NewFromSettings builds a Form from config.Settings, wiring a logger and an
// optional i18n.Catalog loaded from Settings.MessagesPath.
package form
