// Package feedback carries the discrete events a game emits so front ends
// can react to them with text, sound or anything else.
package feedback

import "time"

// Cue is a discrete game event.
type Cue int

const (
	CueGameStarted Cue = iota
	CueGiftCollected
	CueBombHit
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueGameStarted:
		return "game started"
	case CueGiftCollected:
		return "gift collected"
	case CueBombHit:
		return "bomb hit"
	case CueGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Message returns the short toast text shown for the cue.
func (c Cue) Message() string {
	switch c {
	case CueGameStarted:
		return "Start! 🎮"
	case CueGiftCollected:
		return "+1 🎁"
	case CueBombHit:
		return "💣 -1"
	case CueGameOver:
		return "Game over"
	default:
		return ""
	}
}

// Sink receives cues.
type Sink interface {
	Cue(c Cue)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(c Cue)

// Cue calls f(c).
func (f SinkFunc) Cue(c Cue) {
	f(c)
}

// Multi fans cues out to several sinks in order.
type Multi []Sink

// Cue forwards c to every non-nil sink.
func (m Multi) Cue(c Cue) {
	for _, s := range m {
		if s != nil {
			s.Cue(c)
		}
	}
}

// Dispatch forwards each cue to the sink.
func Dispatch(s Sink, cues []Cue) {
	if s == nil {
		return
	}
	for _, c := range cues {
		s.Cue(c)
	}
}

// ToastDuration is how long a toast stays visible.
const ToastDuration = 900 * time.Millisecond

// Toast shows the latest cue message for a short time.
// It implements Sink.
type Toast struct {
	text      string
	remaining time.Duration
}

// Show replaces the current message and restarts the timer.
func (t *Toast) Show(text string) {
	t.text = text
	t.remaining = ToastDuration
}

// Cue shows the cue's message.
func (t *Toast) Cue(c Cue) {
	if msg := c.Message(); msg != "" {
		t.Show(msg)
	}
}

// Update counts the toast down by dt.
func (t *Toast) Update(dt time.Duration) {
	if t.remaining <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.text = ""
	}
}

// Visible reports whether a message is currently shown.
func (t *Toast) Visible() bool {
	return t.remaining > 0
}

// Text returns the current message, or "" if none is shown.
func (t *Toast) Text() string {
	return t.text
}
