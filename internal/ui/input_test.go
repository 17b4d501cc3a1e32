package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingPainter captures drawn strings so tests can assert on output
// without a window.
type recordingPainter struct {
	texts []string
}

func (p *recordingPainter) Clear(Color)                     {}
func (p *recordingPainter) FillRect(Rect, Color)            {}
func (p *recordingPainter) StrokeRect(Rect, float32, Color) {}
func (p *recordingPainter) Text(s string, _, _ float32, _ int32, _ Color) {
	p.texts = append(p.texts, s)
}
func (p *recordingPainter) MeasureText(s string, _ int32) float32 {
	return float32(10 * len(s))
}

func (p *recordingPainter) contains(s string) bool {
	for _, t := range p.texts {
		if t == s {
			return true
		}
	}
	return false
}

func activeField(bounds Rect) *InputField {
	f := NewInputField(bounds, false)
	f.active = true
	return f
}

func TestInputField_Typing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		chars    string
		wantText string
	}{
		{name: "plain_text", chars: "alice", wantText: "alice"},
		{name: "spaces_allowed", chars: "a b", wantText: "a b"},
		{name: "low_edge_of_range", chars: string(rune(32)), wantText: " "},
		{name: "high_edge_of_range", chars: string(rune(125)), wantText: "}"},
		{name: "below_range_dropped", chars: "a" + string(rune(31)) + "b", wantText: "ab"},
		{name: "above_range_dropped", chars: "a~b", wantText: "ab"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := activeField(Rect{0, 0, 200, 40})
			f.Consume(Frame{Chars: []rune(tc.chars)})
			require.Equal(t, tc.wantText, f.Text())
		})
	}
}

func TestInputField_CapacityLimit(t *testing.T) {
	t.Parallel()

	f := activeField(Rect{0, 0, 200, 40})
	f.Consume(Frame{Chars: []rune(strings.Repeat("x", MaxFieldChars+5))})
	require.Len(t, f.Text(), MaxFieldChars)
}

func TestInputField_Backspace(t *testing.T) {
	t.Parallel()

	f := activeField(Rect{0, 0, 200, 40})
	f.Consume(Frame{Chars: []rune("ab")})
	f.Consume(Frame{Backspace: true})
	require.Equal(t, "a", f.Text())

	// Backspace on an empty buffer is a no-op
	f.Consume(Frame{Backspace: true})
	f.Consume(Frame{Backspace: true})
	require.Equal(t, "", f.Text())
}

func TestInputField_EnterDropsFocus(t *testing.T) {
	t.Parallel()

	f := activeField(Rect{0, 0, 200, 40})
	f.Consume(Frame{Chars: []rune("abc"), Enter: true})
	require.False(t, f.Active())
	require.Equal(t, "abc", f.Text())

	// Further input is ignored once focus is gone
	f.Consume(Frame{Chars: []rune("xyz")})
	require.Equal(t, "abc", f.Text())
}

func TestInputField_InactiveIgnoresInput(t *testing.T) {
	t.Parallel()

	f := NewInputField(Rect{0, 0, 200, 40}, false)
	f.Consume(Frame{Chars: []rune("abc"), Backspace: true})
	require.Equal(t, "", f.Text())
}

func TestInputField_Reset(t *testing.T) {
	t.Parallel()

	f := activeField(Rect{0, 0, 200, 40})
	f.Consume(Frame{Chars: []rune("abc")})
	f.Reset()
	require.Equal(t, "", f.Text())
	require.False(t, f.Active())
}

func TestInputField_MaskedDraw(t *testing.T) {
	t.Parallel()

	f := NewInputField(Rect{0, 0, 200, 40}, true)
	f.active = true
	f.Consume(Frame{Chars: []rune("secret")})

	p := &recordingPainter{}
	f.Draw(p, "Password:", 0)

	require.True(t, p.contains("******"))
	require.False(t, p.contains("secret"))
	// Caret is drawn at time zero for an active field
	require.True(t, p.contains("_"))
}

func TestForm_FocusIsExclusive(t *testing.T) {
	t.Parallel()

	top := NewInputField(Rect{0, 0, 100, 40}, false)
	bottom := NewInputField(Rect{0, 60, 100, 40}, false)
	fm := newForm(top, bottom)

	fm.Update(Frame{Click: true, Mouse: Point{50, 20}})
	require.True(t, top.Active())
	require.False(t, bottom.Active())

	fm.Update(Frame{Click: true, Mouse: Point{50, 80}})
	require.False(t, top.Active())
	require.True(t, bottom.Active())

	// A click outside every field defocuses all of them
	fm.Update(Frame{Click: true, Mouse: Point{500, 500}})
	require.False(t, top.Active())
	require.False(t, bottom.Active())
}

func TestForm_OverlappingFieldsFirstWins(t *testing.T) {
	t.Parallel()

	first := NewInputField(Rect{0, 0, 100, 40}, false)
	second := NewInputField(Rect{0, 0, 100, 40}, false)
	fm := newForm(first, second)

	fm.Update(Frame{Click: true, Mouse: Point{50, 20}})
	require.True(t, first.Active())
	require.False(t, second.Active())
}

func TestForm_RoutesKeyboardToActiveFieldOnly(t *testing.T) {
	t.Parallel()

	top := NewInputField(Rect{0, 0, 100, 40}, false)
	bottom := NewInputField(Rect{0, 60, 100, 40}, false)
	fm := newForm(top, bottom)

	fm.Update(Frame{Click: true, Mouse: Point{50, 20}})
	fm.Update(Frame{Chars: []rune("hello")})

	require.Equal(t, "hello", top.Text())
	require.Equal(t, "", bottom.Text())
}
