// Package input turns raw button presses into score events.
package input

import (
	"time"

	"pingpong/internal/core"
	"pingpong/internal/score"
)

// LongPressThreshold is how long a button must be held to count as a long
// press.
const LongPressThreshold = 500 * time.Millisecond

// Button names one of the three watch buttons on the action bar.
type Button int

const (
	// ButtonPrimary is the top button.
	ButtonPrimary Button = iota
	// ButtonTertiary is the middle (select) button.
	ButtonTertiary
	// ButtonSecondary is the bottom button.
	ButtonSecondary

	buttonCount
)

// Buttons lists the action bar buttons from top to bottom.
func Buttons() []Button {
	return []Button{ButtonPrimary, ButtonTertiary, ButtonSecondary}
}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Press classifies how a button was pressed.
type Press int

const (
	// PressShort is a click released before the long press threshold.
	PressShort Press = iota
	// PressLong is a click held for at least the long press threshold.
	PressLong
)

func (p Press) String() string {
	if p == PressLong {
		return "long"
	}
	return "short"
}

// Binding pairs a button with a press kind.
type Binding struct {
	Button Button
	Press  Press
}

// Bindings maps button presses to tracker events.
type Bindings map[Binding]score.Event

// DefaultBindings returns the watch layout: top and bottom score, select
// undoes and a long select resets.
func DefaultBindings() Bindings {
	return Bindings{
		{ButtonPrimary, PressShort}:   score.EventIncrementPlayer1,
		{ButtonSecondary, PressShort}: score.EventIncrementPlayer2,
		{ButtonTertiary, PressShort}:  score.EventUndo,
		{ButtonTertiary, PressLong}:   score.EventReset,
	}
}

// Event returns the event bound to the press, or EventNone.
func (bs Bindings) Event(b Button, p Press) score.Event {
	if ev, ok := bs[Binding{b, p}]; ok {
		return ev
	}
	return score.EventNone
}

// HasLong reports whether b has anything bound to a long press.
func (bs Bindings) HasLong(b Button) bool {
	_, ok := bs[Binding{b, PressLong}]
	return ok
}

// Handle looks up the press in bs and dispatches it to t. It reports whether
// the display needs a redraw.
func Handle(t *score.Tracker, bs Bindings, b Button, p Press) bool {
	return score.Dispatch(t, bs.Event(b, p))
}

// Recognizer classifies presses as short or long when the button comes up,
// the way the watch fires a long click on release.
type Recognizer struct {
	bindings  Bindings
	threshold time.Duration
	watches   [buttonCount]*core.Stopwatch
}

// NewRecognizer builds a recognizer for the given bindings. A nil clock uses
// time.Now and a non-positive threshold uses LongPressThreshold.
func NewRecognizer(bs Bindings, threshold time.Duration, now func() time.Time) *Recognizer {
	if threshold <= 0 {
		threshold = LongPressThreshold
	}
	r := &Recognizer{bindings: bs, threshold: threshold}
	for i := range r.watches {
		r.watches[i] = core.NewStopwatch(now)
	}
	return r
}

// Down records that b went down.
func (r *Recognizer) Down(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	r.watches[b].Start()
}

// Up records that b was released and returns the resulting press. It returns
// false when the button was never seen going down.
func (r *Recognizer) Up(b Button) (Press, bool) {
	if b < 0 || b >= buttonCount {
		return PressShort, false
	}
	w := r.watches[b]
	if !w.Running() {
		return PressShort, false
	}
	held := w.Stop()
	if held >= r.threshold && r.bindings.HasLong(b) {
		return PressLong, true
	}
	return PressShort, true
}
