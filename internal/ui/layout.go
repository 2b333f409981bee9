package ui

import (
	"image"

	"pingpong/internal/core"
	"pingpong/internal/input"
)

// Watch face geometry, in device pixels.
const (
	ScreenWidth    = 144
	ScreenHeight   = 168
	ActionBarWidth = 30

	textInsetX    = 4
	textGap       = 3
	regionHeight  = 60
	regionSpacing = 50
	firstRegionY  = 10
	iconSize      = 14
)

// FaceLayout holds the rectangles every element of the face is drawn into.
type FaceLayout struct {
	Screen    core.Size
	Regions   map[core.Region]image.Rectangle
	ActionBar image.Rectangle
	Icons     map[input.Button]image.Point
}

// DefaultSize is the size of the watch screen.
func DefaultSize() core.Size { return core.Size{W: ScreenWidth, H: ScreenHeight} }

// Layout places the text regions to the left of the action bar, stacked top
// to bottom, and centers one icon slot per button inside the bar.
func Layout(screen core.Size) FaceLayout {
	if screen.W <= ActionBarWidth || screen.H <= 0 {
		screen = DefaultSize()
	}
	width := screen.W - ActionBarWidth - textGap
	l := FaceLayout{
		Screen:    screen,
		Regions:   make(map[core.Region]image.Rectangle, 3),
		ActionBar: image.Rect(screen.W-ActionBarWidth, 0, screen.W, screen.H),
		Icons:     make(map[input.Button]image.Point, 3),
	}
	for i, r := range core.Regions() {
		top := firstRegionY + i*regionSpacing
		l.Regions[r] = image.Rect(textInsetX, top, textInsetX+width, top+regionHeight)
	}
	slot := screen.H / 3
	x := l.ActionBar.Min.X + (ActionBarWidth-iconSize)/2
	for i, b := range input.Buttons() {
		y := i*slot + (slot-iconSize)/2
		l.Icons[b] = image.Pt(x, y)
	}
	return l
}
