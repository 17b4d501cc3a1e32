package ui

// form owns the input fields of one screen and keeps focus exclusive: a
// click focuses at most one field and defocuses the rest, so no two fields
// can be active at the same time. Should bounds ever overlap, the first
// field in declaration order claims the click.
type form struct {
	fields []*InputField
}

func newForm(fields ...*InputField) *form {
	return &form{fields: fields}
}

// Update routes one frame of pointer and keyboard input to the fields.
func (fm *form) Update(frame Frame) {
	if frame.Click {
		claimed := false
		for _, f := range fm.fields {
			hit := !claimed && f.Bounds.Contains(frame.Mouse)
			f.active = hit
			if hit {
				claimed = true
			}
		}
	}

	for _, f := range fm.fields {
		f.Consume(frame)
	}
}

// Reset clears every field.
func (fm *form) Reset() {
	for _, f := range fm.fields {
		f.Reset()
	}
}
