// Package trace extracts 2D geometry from binary rasters: Moore-Neighbor
// boundary contours, Douglas-Peucker polyline simplification, and Zhang-Suen
// skeletonization for single-stroke path extraction.
package trace

import "github.com/eyeoverthink/SignMaker3D-sub002/relief"

// Bitmap is a dense binary raster. Out-of-range reads are background, which
// makes every image border pixel a boundary pixel.
type Bitmap struct {
	W, H int
	bits []bool
}

// NewBitmap allocates a cleared w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, bits: make([]bool, w*h)}
}

// Threshold builds a bitmap from a height map: foreground wherever the
// sample is at least min.
func Threshold(m *relief.Map, min float64) *Bitmap {
	b := NewBitmap(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) >= min {
				b.Set(x, y, true)
			}
		}
	}
	return b
}

// At reports the pixel at (x, y); out-of-range is background.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.bits[y*b.W+x]
}

// Set stores the pixel at (x, y); out-of-range is ignored.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.bits[y*b.W+x] = v
}

// Count returns the number of foreground pixels.
func (b *Bitmap) Count() int {
	var n int
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := NewBitmap(b.W, b.H)
	copy(c.bits, b.bits)
	return c
}

// neighbors returns the number of foreground 8-neighbors of (x, y).
func (b *Bitmap) neighbors(x, y int) int {
	var n int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.At(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// isBoundary reports whether (x, y) is foreground with at least one
// background 8-neighbor.
func (b *Bitmap) isBoundary(x, y int) bool {
	return b.At(x, y) && b.neighbors(x, y) < 8
}
