package score

// HistoryDepth bounds how many increments can be walked back.
const HistoryDepth = 32

// Player identifies which side scored.
type Player uint8

const (
	// Player1 is the player shown at the top of the face.
	Player1 Player = iota
	// Player2 is the player shown at the bottom of the face.
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "unknown"
	}
}

// History is a fixed capacity ring of increment markers. When full, pushing a
// new marker silently drops the oldest one.
type History struct {
	marks [HistoryDepth]Player
	head  int // index of the next free slot
	n     int
}

// Push records an increment by p as the most recent entry.
func (h *History) Push(p Player) {
	h.marks[h.head] = p
	h.head = (h.head + 1) % HistoryDepth
	if h.n < HistoryDepth {
		h.n++
	}
}

// Pop removes and returns the most recent marker.
func (h *History) Pop() (Player, bool) {
	if h.n == 0 {
		return 0, false
	}
	h.head = (h.head - 1 + HistoryDepth) % HistoryDepth
	h.n--
	return h.marks[h.head], true
}

// Len reports how many markers are available to undo.
func (h *History) Len() int { return h.n }

// Clear forgets every marker.
func (h *History) Clear() {
	h.head = 0
	h.n = 0
}
