package trace

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// Contour is an ordered sequence of boundary pixel coordinates.
type Contour []image.Point

// Points converts the contour to float coordinates for simplification and
// sweeping.
func (c Contour) Points() []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, len(c))
	for i, p := range c {
		pts[i] = mgl64.Vec2{float64(p.X), float64(p.Y)}
	}
	return pts
}

// Clockwise deltas with image coordinates (y grows downward), starting east.
var moore = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Contours traces the boundary of every connected foreground region using
// Moore-Neighbor tracing and discards contours shorter than minLen pixels.
//
// The outer scan walks pixels in row-major order; each trace reads only the
// bitmap and a snapshot of the already-consumed boundary pixels, and its own
// pixels are merged into the consumed set after the trace completes, so the
// result does not depend on mutation order within a trace.
func Contours(b *Bitmap, minLen int) []Contour {
	consumed := NewBitmap(b.W, b.H)
	maxSteps := 8 * b.W * b.H

	var result []Contour
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if consumed.At(x, y) || !b.isBoundary(x, y) {
				continue
			}
			c := traceFrom(b, image.Point{x, y}, maxSteps)
			for _, p := range c {
				consumed.Set(p.X, p.Y, true)
			}
			if len(c) >= minLen {
				result = append(result, c)
			}
		}
	}
	return result
}

// traceFrom walks the boundary clockwise starting at start. From each pixel
// the 8-neighborhood is scanned clockwise beginning at the direction obtained
// by turning left relative to the last move; the first foreground boundary
// neighbor is taken. The walk ends when the start pixel is revisited or the
// step budget runs out.
func traceFrom(b *Bitmap, start image.Point, maxSteps int) Contour {
	contour := Contour{start}
	cur := start
	dir := 0 // pretend the last move was east

	for steps := 0; steps < maxSteps; steps++ {
		found := -1
		for i := 0; i < 8; i++ {
			d := (dir + 6 + i) % 8 // turn left, then sweep clockwise
			n := cur.Add(moore[d])
			if b.isBoundary(n.X, n.Y) {
				found = d
				break
			}
		}
		if found < 0 {
			break // isolated pixel
		}
		cur = cur.Add(moore[found])
		dir = found
		if cur == start {
			break
		}
		contour = append(contour, cur)
	}
	return contour
}

// Simplify runs Douglas-Peucker on a polyline: points whose perpendicular
// distance to the chord between the kept neighbors stays below tol are
// dropped. Re-simplifying with the same tolerance returns the same points.
func Simplify(pts []mgl64.Vec2, tol float64) []mgl64.Vec2 {
	if len(pts) < 3 {
		return append([]mgl64.Vec2(nil), pts...)
	}

	keep := make([]bool, len(pts))
	keep[0], keep[len(pts)-1] = true, true
	dpMark(pts, 0, len(pts)-1, tol, keep)

	var out []mgl64.Vec2
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func dpMark(pts []mgl64.Vec2, lo, hi int, tol float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	var maxDist float64
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		if d := perpDistance(pts[i], pts[lo], pts[hi]); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxIdx < 0 || maxDist <= tol {
		return
	}
	keep[maxIdx] = true
	dpMark(pts, lo, maxIdx, tol, keep)
	dpMark(pts, maxIdx, hi, tol, keep)
}

// perpDistance is the distance from p to the chord a-b, or to a when the
// chord is degenerate.
func perpDistance(p, a, b mgl64.Vec2) float64 {
	ab := b.Sub(a)
	l := ab.Len()
	if l < 1e-12 {
		return p.Sub(a).Len()
	}
	d := cross2(ab, p.Sub(a)) / l
	if d < 0 {
		return -d
	}
	return d
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
