package input

import (
	"testing"
	"time"

	"pingpong/internal/score"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestDefaultBindings(t *testing.T) {
	bs := DefaultBindings()
	tests := []struct {
		b    Button
		p    Press
		want score.Event
	}{
		{ButtonPrimary, PressShort, score.EventIncrementPlayer1},
		{ButtonSecondary, PressShort, score.EventIncrementPlayer2},
		{ButtonTertiary, PressShort, score.EventUndo},
		{ButtonTertiary, PressLong, score.EventReset},
		{ButtonPrimary, PressLong, score.EventNone},
	}
	for _, tc := range tests {
		if got := bs.Event(tc.b, tc.p); got != tc.want {
			t.Errorf("%s/%s = %s, want %s", tc.b, tc.p, got, tc.want)
		}
	}
}

func TestRecognizerClassifiesHoldTime(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	r := NewRecognizer(DefaultBindings(), 0, clock.Now)

	tests := []struct {
		name string
		b    Button
		hold time.Duration
		want Press
	}{
		{"quick select", ButtonTertiary, 120 * time.Millisecond, PressShort},
		{"just under", ButtonTertiary, LongPressThreshold - time.Millisecond, PressShort},
		{"threshold", ButtonTertiary, LongPressThreshold, PressLong},
		{"long select", ButtonTertiary, 2 * time.Second, PressLong},
		{"long primary has no long binding", ButtonPrimary, 2 * time.Second, PressShort},
	}
	for _, tc := range tests {
		r.Down(tc.b)
		clock.Advance(tc.hold)
		got, ok := r.Up(tc.b)
		if !ok {
			t.Fatalf("%s: Up reported no press", tc.name)
		}
		if got != tc.want {
			t.Errorf("%s: press = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestRecognizerIgnoresStrayRelease(t *testing.T) {
	r := NewRecognizer(DefaultBindings(), time.Second, nil)
	if _, ok := r.Up(ButtonSecondary); ok {
		t.Fatalf("release without press should be ignored")
	}
	if _, ok := r.Up(Button(9)); ok {
		t.Fatalf("unknown button should be ignored")
	}
	r.Down(Button(-1))
}

func TestHandleDrivesTracker(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	bs := DefaultBindings()
	r := NewRecognizer(bs, LongPressThreshold, clock.Now)
	tr := score.New()

	press := func(b Button, hold time.Duration) {
		r.Down(b)
		clock.Advance(hold)
		p, ok := r.Up(b)
		if !ok {
			t.Fatalf("press of %s not recognized", b)
		}
		Handle(tr, bs, b, p)
	}

	press(ButtonPrimary, 50*time.Millisecond)
	press(ButtonSecondary, 50*time.Millisecond)
	press(ButtonPrimary, 50*time.Millisecond)
	if got := tr.ScoreText(); got != "2 - 1" {
		t.Fatalf("score = %q, want 2 - 1", got)
	}
	press(ButtonTertiary, 50*time.Millisecond)
	if got := tr.ScoreText(); got != "1 - 1" {
		t.Fatalf("after undo score = %q, want 1 - 1", got)
	}
	press(ButtonTertiary, 600*time.Millisecond)
	if got := tr.ScoreText(); got != "0 - 0" {
		t.Fatalf("after reset score = %q, want 0 - 0", got)
	}
}
