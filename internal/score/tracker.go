// Package score holds the two-player score state and the operations the
// watch buttons trigger on it.
package score

import "fmt"

// Tracker owns both scores and the undo history. The zero value is a fresh
// game at 0 - 0.
type Tracker struct {
	p1, p2  int
	history History
}

// New returns a tracker at 0 - 0.
func New() *Tracker { return &Tracker{} }

// IncrementPlayer1 adds a point for the first player.
func (t *Tracker) IncrementPlayer1() {
	t.p1++
	t.history.Push(Player1)
}

// IncrementPlayer2 adds a point for the second player.
func (t *Tracker) IncrementPlayer2() {
	t.p2++
	t.history.Push(Player2)
}

// UndoLast reverses the most recent recorded increment. It does nothing when
// both scores are zero or when no increment is left in the history, which is
// the case for points carried over from a previous session. It reports whether
// the scores changed.
func (t *Tracker) UndoLast() bool {
	if t.p1+t.p2 == 0 {
		return false
	}
	p, ok := t.history.Pop()
	if !ok {
		return false
	}
	switch p {
	case Player1:
		if t.p1 > 0 {
			t.p1--
		}
	case Player2:
		if t.p2 > 0 {
			t.p2--
		}
	}
	return true
}

// Reset zeroes both scores and drops the undo history.
func (t *Tracker) Reset() {
	t.p1, t.p2 = 0, 0
	t.history.Clear()
}

// Restore sets the scores loaded from storage. The history starts empty so
// restored points cannot be undone.
func (t *Tracker) Restore(p1, p2 int) {
	t.p1 = max(p1, 0)
	t.p2 = max(p2, 0)
	t.history.Clear()
}

// Scores returns the current points of both players.
func (t *Tracker) Scores() (p1, p2 int) { return t.p1, t.p2 }

// CanUndo reports whether UndoLast would change the scores.
func (t *Tracker) CanUndo() bool {
	return t.p1+t.p2 > 0 && t.history.Len() > 0
}

// UndoDepth reports how many increments can still be walked back.
func (t *Tracker) UndoDepth() int { return t.history.Len() }

// ScoreText renders the score line shown between the player names.
func (t *Tracker) ScoreText() string {
	return fmt.Sprintf("%d - %d", t.p1, t.p2)
}
