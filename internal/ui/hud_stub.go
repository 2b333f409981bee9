//go:build !ebiten

package ui

import "pingpong/internal/core"

// HUD records region text in headless builds.
type HUD struct {
	size  core.Size
	texts map[core.Region]string
}

// NewHUD returns a HUD that only remembers what it was told to show.
func NewHUD(size core.Size) *HUD {
	return &HUD{size: Layout(size).Screen, texts: make(map[core.Region]string, 3)}
}

// SetText replaces the text shown in region r.
func (h *HUD) SetText(r core.Region, s string) {
	if h == nil {
		return
	}
	h.texts[r] = s
}

// Text returns what region r currently shows.
func (h *HUD) Text(r core.Region) string { return h.texts[r] }

// Size returns the logical screen size.
func (h *HUD) Size() core.Size { return h.size }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
