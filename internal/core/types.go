package core

// Size describes the dimensions of the watch face in pixels.
type Size struct {
	W int
	H int
}

// Region identifies one of the text areas on the watch face.
type Region int

const (
	// RegionPlayer1Name holds the static name of the first player.
	RegionPlayer1Name Region = iota
	// RegionScore holds the "P1 - P2" score string.
	RegionScore
	// RegionPlayer2Name holds the static name of the second player.
	RegionPlayer2Name

	regionCount
)

// Regions lists every region in top to bottom order.
func Regions() []Region {
	return []Region{RegionPlayer1Name, RegionScore, RegionPlayer2Name}
}

func (r Region) String() string {
	switch r {
	case RegionPlayer1Name:
		return "player1"
	case RegionScore:
		return "score"
	case RegionPlayer2Name:
		return "player2"
	default:
		return "unknown"
	}
}

// Surface is anything that can show text in the face regions.
type Surface interface {
	SetText(region Region, text string)
}

// Frame captures the text of every region for one render pass.
type Frame struct {
	text [regionCount]string
}

// NewFrame builds a frame from the three region strings.
func NewFrame(player1, score, player2 string) Frame {
	var f Frame
	f.text[RegionPlayer1Name] = player1
	f.text[RegionScore] = score
	f.text[RegionPlayer2Name] = player2
	return f
}

// Text returns the string shown in the region.
func (f Frame) Text(r Region) string {
	if r < 0 || r >= regionCount {
		return ""
	}
	return f.text[r]
}

// Apply pushes every region of the frame onto the surface.
func (f Frame) Apply(s Surface) {
	if s == nil {
		return
	}
	for _, r := range Regions() {
		s.SetText(r, f.text[r])
	}
}
