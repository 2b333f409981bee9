package core

import "fmt"

// Bitmap stores a 1-bit W*H image in row-major order. Icons on the action bar
// are described with it.
type Bitmap struct {
	W, H int
	data []uint8
}

// NewBitmap allocates a cleared bitmap with the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Bitmap{W: w, H: h, data: make([]uint8, w*h)}
}

// ParseBitmap builds a bitmap from text rows where '#' marks a set pixel and
// any other rune marks a clear one. All rows must share the same width.
func ParseBitmap(rows []string) (*Bitmap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("bitmap has no rows")
	}
	w := len(rows[0])
	b := NewBitmap(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("bitmap row %d has width %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if row[x] == '#' {
				b.Set(x, y, true)
			}
		}
	}
	return b, nil
}

// Cells exposes the backing slice (one byte per pixel, 0 or 1).
func (b *Bitmap) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Bitmap) Index(x, y int) int { return y*b.W + x }

// In reports whether (x, y) lies inside the bitmap.
func (b *Bitmap) In(x, y int) bool { return x >= 0 && y >= 0 && x < b.W && y < b.H }

// Set turns the pixel at (x, y) on or off. Out of range writes are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if !b.In(x, y) {
		return
	}
	var v uint8
	if on {
		v = 1
	}
	b.data[b.Index(x, y)] = v
}

// At reports whether the pixel at (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	if !b.In(x, y) {
		return false
	}
	return b.data[b.Index(x, y)] != 0
}

// Clear fills the bitmap with zeros.
func (b *Bitmap) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
