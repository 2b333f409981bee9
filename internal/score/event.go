package score

import (
	"fmt"
	"strings"
)

// Event is a logical action that mutates the tracker.
type Event int

const (
	// EventNone leaves the tracker untouched.
	EventNone Event = iota
	// EventIncrementPlayer1 scores a point for the first player.
	EventIncrementPlayer1
	// EventIncrementPlayer2 scores a point for the second player.
	EventIncrementPlayer2
	// EventUndo reverses the last increment.
	EventUndo
	// EventReset starts a new game.
	EventReset
)

var eventNames = map[Event]string{
	EventNone:             "none",
	EventIncrementPlayer1: "p1",
	EventIncrementPlayer2: "p2",
	EventUndo:             "undo",
	EventReset:            "reset",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// ParseEvent maps a name such as "p1" or "undo" back to its Event.
func ParseEvent(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for ev, n := range eventNames {
		if n == name {
			return ev, nil
		}
	}
	return EventNone, fmt.Errorf("unknown event %q", name)
}

// Dispatch applies ev to t and reports whether the display needs a redraw.
func Dispatch(t *Tracker, ev Event) bool {
	if t == nil {
		return false
	}
	switch ev {
	case EventIncrementPlayer1:
		t.IncrementPlayer1()
		return true
	case EventIncrementPlayer2:
		t.IncrementPlayer2()
		return true
	case EventUndo:
		return t.UndoLast()
	case EventReset:
		t.Reset()
		return true
	default:
		return false
	}
}
