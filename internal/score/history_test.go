package score

import "testing"

func TestHistoryLIFO(t *testing.T) {
	var h History
	h.Push(Player1)
	h.Push(Player2)
	h.Push(Player2)

	want := []Player{Player2, Player2, Player1}
	for i, w := range want {
		p, ok := h.Pop()
		if !ok || p != w {
			t.Fatalf("pop %d = %v %v, want %v", i, p, ok, w)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on empty history succeeded")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	var h History
	h.Push(Player2)
	for i := 0; i < HistoryDepth; i++ {
		h.Push(Player1)
	}
	if h.Len() != HistoryDepth {
		t.Fatalf("Len = %d, want %d", h.Len(), HistoryDepth)
	}
	for i := 0; i < HistoryDepth; i++ {
		p, ok := h.Pop()
		if !ok || p != Player1 {
			t.Fatalf("pop %d = %v %v, want player1", i, p, ok)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Fatalf("evicted marker was still poppable")
	}
}

func TestHistoryWrapAround(t *testing.T) {
	var h History
	for i := 0; i < HistoryDepth+3; i++ {
		h.Push(Player(i % 2))
	}
	h.Pop()
	h.Push(Player2)
	p, ok := h.Pop()
	if !ok || p != Player2 {
		t.Fatalf("pop after wrap = %v %v, want player2", p, ok)
	}
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len after Clear = %d", h.Len())
	}
}
