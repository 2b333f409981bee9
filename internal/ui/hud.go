//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"pingpong/internal/core"
	"pingpong/internal/input"
	"pingpong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the watch face: three text regions and the action bar.
type HUD struct {
	layout FaceLayout
	texts  map[core.Region]string
	icon   *render.IconPainter
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD for a screen of the given size.
func NewHUD(size core.Size) *HUD {
	h := &HUD{
		layout: Layout(size),
		texts:  make(map[core.Region]string, 3),
		icon:   render.NewIconPainter(render.PlusIcon(), color.White),
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetText replaces the text shown in region r.
func (h *HUD) SetText(r core.Region, s string) {
	if h == nil {
		return
	}
	h.texts[r] = s
}

// Size returns the logical screen size.
func (h *HUD) Size() core.Size { return h.layout.Screen }

// Draw paints the face onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	screen.Fill(color.White)
	face := basicfont.Face7x13
	for _, r := range core.Regions() {
		rect := h.layout.Regions[r]
		text.Draw(screen, h.texts[r], face, rect.Min.X, rect.Min.Y+headerBaseline, color.Black)
	}
	h.fillRect(screen, h.layout.ActionBar, color.Black)
	for _, b := range input.Buttons() {
		pt := h.layout.Icons[b]
		h.icon.Draw(screen, pt.X, pt.Y, 1)
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	r, g, b, a := c.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	dst.DrawImage(h.pixel, op)
}

const headerBaseline = 18
