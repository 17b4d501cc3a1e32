package ui

import "strings"

// MaxFieldChars caps text entry length in every input field.
const MaxFieldChars = 20

// Printable character range accepted by input fields.
const (
	minInputRune = 32
	maxInputRune = 125
)

// InputField is a single-line text entry box with focus state and optional
// character masking for passwords.
type InputField struct {
	Bounds Rect
	Masked bool

	text   []rune
	active bool
}

// NewInputField creates a field with fixed geometry.
func NewInputField(bounds Rect, masked bool) *InputField {
	return &InputField{Bounds: bounds, Masked: masked}
}

// Text returns the current buffer contents.
func (f *InputField) Text() string { return string(f.text) }

// Active reports whether the field has keyboard focus.
func (f *InputField) Active() bool { return f.active }

// Consume feeds one frame of keyboard input to the field. Inactive fields
// ignore input entirely. Enter drops focus without triggering any action.
func (f *InputField) Consume(frame Frame) {
	if !f.active {
		return
	}

	for _, r := range frame.Chars {
		if r >= minInputRune && r <= maxInputRune && len(f.text) < MaxFieldChars {
			f.text = append(f.text, r)
		}
	}
	if frame.Backspace && len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
	if frame.Enter {
		f.active = false
	}
}

// Reset clears the buffer and drops focus. Called whenever the owning
// screen is entered or exited.
func (f *InputField) Reset() {
	f.text = f.text[:0]
	f.active = false
}

// displayText is what gets painted: the literal buffer, or one mask glyph
// per character for password fields.
func (f *InputField) displayText() string {
	if f.Masked {
		return strings.Repeat("*", len(f.text))
	}
	return string(f.text)
}

// Draw renders the label, box, border and text. An active field gets a
// highlighted border and a caret blinking at 2 Hz on total elapsed time.
func (f *InputField) Draw(p Painter, label string, now float64) {
	p.Text(label, f.Bounds.X, f.Bounds.Y-25, 20, colorDarkGray)
	p.FillRect(f.Bounds, colorBackground)

	border := colorDarkGray
	if f.active {
		border = colorHighlight
	}
	p.StrokeRect(f.Bounds, 2, border)

	shown := f.displayText()
	p.Text(shown, f.Bounds.X+5, f.Bounds.Y+10, 20, colorBlack)

	if f.active && int(now*2)%2 == 0 {
		caretX := f.Bounds.X + 5 + p.MeasureText(shown, 20)
		p.Text("_", caretX, f.Bounds.Y+10, 20, colorBlack)
	}
}
