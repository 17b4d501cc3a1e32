// Package ui holds the GUI core of the auction app: the screen state
// machine, input fields, and the transient notice banner. It draws through
// the Painter interface and consumes per-frame input snapshots, so the
// whole package runs headless in tests; the one real backend lives in
// internal/platform.
package ui

// Point is a position in window coordinates.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Frame is one frame's worth of input, snapshotted by the platform layer
// before the update step runs.
type Frame struct {
	DT        float64 // seconds since the previous frame
	Time      float64 // seconds since startup, drives the caret blink
	Mouse     Point
	Click     bool   // left mouse button press edge
	Chars     []rune // characters typed this frame, in order
	Backspace bool   // press edge
	Enter     bool   // press edge
}

// Painter is the drawing half of the rendering collaborator.
type Painter interface {
	Clear(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, thickness float32, c Color)
	Text(s string, x, y float32, size int32, c Color)
	MeasureText(s string, size int32) float32
}
