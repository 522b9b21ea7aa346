package validation

// Outcome is the result of validating one field.
type Outcome struct {
	Path string

	// Evaluated is false when no validator ran: the field has no Rule Item or
	// the item names no known validator. Such fields pass.
	Evaluated bool

	Passed bool

	// Validator names the failing validator. Empty when Passed.
	Validator string

	// Message is the rendered error text. Empty when Passed.
	Message string
}

// Report is the result of validating every field of a form.
type Report struct {
	// Passed is true only when every field passed.
	Passed bool

	// Outcomes lists one entry per field path, in declaration order.
	Outcomes []Outcome
}

// Failed returns the outcomes that did not pass.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			out = append(out, o)
		}
	}
	return out
}

// Errors maps each failing field path to its message.
func (r Report) Errors() map[string]string {
	out := make(map[string]string)
	for _, o := range r.Outcomes {
		if !o.Passed {
			out[o.Path] = o.Message
		}
	}
	return out
}
