package score

import "testing"

func TestDispatch(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Tracker)
		ev      Event
		redraw  bool
		p1, p2  int
	}{
		{name: "p1", ev: EventIncrementPlayer1, redraw: true, p1: 1},
		{name: "p2", ev: EventIncrementPlayer2, redraw: true, p2: 1},
		{name: "undo empty", ev: EventUndo},
		{
			name:    "undo",
			prepare: func(tr *Tracker) { tr.IncrementPlayer2(); tr.IncrementPlayer1() },
			ev:      EventUndo,
			redraw:  true,
			p2:      1,
		},
		{
			name:    "reset",
			prepare: func(tr *Tracker) { tr.IncrementPlayer1() },
			ev:      EventReset,
			redraw:  true,
		},
		{
			name:    "none",
			prepare: func(tr *Tracker) { tr.IncrementPlayer1() },
			ev:      EventNone,
			p1:      1,
		},
	}
	for _, tc := range tests {
		tr := New()
		if tc.prepare != nil {
			tc.prepare(tr)
		}
		if got := Dispatch(tr, tc.ev); got != tc.redraw {
			t.Errorf("%s: redraw = %v, want %v", tc.name, got, tc.redraw)
		}
		p1, p2 := tr.Scores()
		if p1 != tc.p1 || p2 != tc.p2 {
			t.Errorf("%s: scores = (%d,%d), want (%d,%d)", tc.name, p1, p2, tc.p1, tc.p2)
		}
	}
	if Dispatch(nil, EventIncrementPlayer1) {
		t.Errorf("dispatch on nil tracker reported a redraw")
	}
}

func TestParseEvent(t *testing.T) {
	for ev, name := range eventNames {
		got, err := ParseEvent(" " + name + " ")
		if err != nil || got != ev {
			t.Errorf("ParseEvent(%q) = %v %v, want %v", name, got, err, ev)
		}
	}
	if _, err := ParseEvent("serve"); err == nil {
		t.Errorf("ParseEvent(serve) should fail")
	}
	if got := Event(99).String(); got != "event(99)" {
		t.Errorf("String of unknown event = %q", got)
	}
}
