package ui

// noticeDuration is how long a transient message stays on screen, in seconds.
const noticeDuration = 3.0

// Notice is the single timed status message shown to the user. Setting a
// new message replaces the old one and restarts the timer.
type Notice struct {
	message   string
	remaining float64
}

// Set replaces the current message and restarts the display timer.
func (n *Notice) Set(message string) {
	n.message = message
	n.remaining = noticeDuration
}

// Clear drops the message immediately.
func (n *Notice) Clear() {
	n.message = ""
	n.remaining = 0
}

// Message returns the displayed text, empty when nothing is shown.
func (n *Notice) Message() string { return n.message }

// Tick advances the timer by dt seconds and clears the message once the
// timer crosses zero.
func (n *Notice) Tick(dt float64) {
	if n.remaining <= 0 {
		return
	}
	n.remaining -= dt
	if n.remaining <= 0 {
		n.message = ""
	}
}

// Draw paints the message banner along the bottom edge of the window.
// Draws nothing when the message is empty.
func (n *Notice) Draw(p Painter, width, height float32) {
	if n.message == "" {
		return
	}
	p.FillRect(Rect{0, height - 30, width, 30}, colorWarning)
	p.Text(n.message, width/2-p.MeasureText(n.message, 20)/2, height-25, 20, colorGray)
}
