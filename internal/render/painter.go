//go:build ebiten

package render

import (
	"image/color"

	"pingpong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// IconPainter uploads a 1-bit icon once and stamps it wherever it is needed.
type IconPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewIconPainter rasterises icon in the given color.
func NewIconPainter(icon *core.Bitmap, fg color.Color) *IconPainter {
	p := &IconPainter{w: icon.W, h: icon.H}
	p.img = ebiten.NewImage(icon.W, icon.H)
	p.img.WritePixels(IconRGBA(icon.Cells(), fg))
	return p
}

// Draw stamps the icon with its top-left corner at (x, y), scaled.
func (p *IconPainter) Draw(dst *ebiten.Image, x, y, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x*scale), float64(y*scale))
	dst.DrawImage(p.img, op)
}

// Size returns the icon dimensions.
func (p *IconPainter) Size() (int, int) { return p.w, p.h }
