// Package relief turns 2D height fields into closed printable solids:
// a deformed grid surface over a base plate, with optional additive channel
// geometry for embedded light sources.
package relief

import (
	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Map is a dense grid of surface elevations, one sample per discretized
// pixel, owned by a single generation call.
type Map struct {
	W, H int
	// Depth holds H rows of W samples.
	Depth []float64

	// Physical size of the plate and thickness of the base below z=0.
	Width, Height, Base float64
}

// NewMap allocates a zeroed w x h map with the given physical dimensions.
func NewMap(w, h int, width, height, base float64) *Map {
	return &Map{
		W: w, H: h,
		Depth: make([]float64, w*h),
		Width: width, Height: height, Base: base,
	}
}

// At returns the sample at (x, y); out-of-range coordinates read as 0.
func (m *Map) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Depth[y*m.W+x]
}

// Set stores a sample at (x, y); out-of-range coordinates are ignored.
func (m *Map) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Depth[y*m.W+x] = v
}

// cell returns the physical size of one grid cell.
func (m *Map) cell() (dx, dy float64) {
	return m.Width / float64(m.W-1), m.Height / float64(m.H-1)
}

// Smooth applies passes of a 3x3 box blur to the map. Interior cells are
// replaced by the average of themselves and their 8 neighbors; border cells
// are copied unchanged. Each pass is double-buffered so reads never see the
// pass's own writes. A uniform field is a fixed point of the blur.
func Smooth(m *Map, passes int) {
	if m.W < 3 || m.H < 3 {
		return
	}
	next := make([]float64, len(m.Depth))
	for p := 0; p < passes; p++ {
		copy(next, m.Depth)
		for y := 1; y < m.H-1; y++ {
			for x := 1; x < m.W-1; x++ {
				var sum float64
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += m.Depth[(y+dy)*m.W+(x+dx)]
					}
				}
				next[y*m.W+x] = sum / 9
			}
		}
		m.Depth, next = next, m.Depth
	}
}

// Mesh converts the map into a closed solid: for every 2x2 cell two surface
// triangles at z = Base + depth, a matching pair of back-face triangles at
// z = 0, plus side walls around the rim. Maps smaller than 2x2 yield nil.
func Mesh(m *Map) []mesh.Triangle {
	if m.W < 2 || m.H < 2 {
		return nil
	}
	dx, dy := m.cell()

	top := func(x, y int) mgl64.Vec3 {
		return mgl64.Vec3{float64(x) * dx, float64(y) * dy, m.Base + m.At(x, y)}
	}
	bottom := func(x, y int) mgl64.Vec3 {
		return mgl64.Vec3{float64(x) * dx, float64(y) * dy, 0}
	}

	var tris []mesh.Triangle
	for y := 0; y+1 < m.H; y++ {
		for x := 0; x+1 < m.W; x++ {
			a, b := top(x, y), top(x+1, y)
			c, d := top(x+1, y+1), top(x, y+1)
			// Surface faces +Z.
			tris = mesh.Quad(tris, a, b, c, d)
			// Back face at elevation 0 faces -Z.
			tris = mesh.Quad(tris, bottom(x, y), bottom(x, y+1), bottom(x+1, y+1), bottom(x+1, y))
		}
	}

	// Side walls stitch the surface rim to the base rim, outward facing.
	for x := 0; x+1 < m.W; x++ {
		tris = mesh.Quad(tris, bottom(x, 0), bottom(x+1, 0), top(x+1, 0), top(x, 0))                 // y=0 wall faces -Y
		tris = mesh.Quad(tris, bottom(x+1, m.H-1), bottom(x, m.H-1), top(x, m.H-1), top(x+1, m.H-1)) // y=max wall faces +Y
	}
	for y := 0; y+1 < m.H; y++ {
		tris = mesh.Quad(tris, bottom(0, y+1), bottom(0, y), top(0, y), top(0, y+1))                 // x=0 wall faces -X
		tris = mesh.Quad(tris, bottom(m.W-1, y), bottom(m.W-1, y+1), top(m.W-1, y+1), top(m.W-1, y)) // x=max wall faces +X
	}
	return tris
}
