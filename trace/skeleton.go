package trace

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// maxThinIterations bounds skeletonization on malformed input; a well-formed
// region converges in roughly min(W, H)/2 iterations.
const maxThinIterations = 1000

// Skeletonize reduces a filled region to a 1-pixel-wide, topology-preserving
// centerline using Zhang-Suen thinning. The input bitmap is not modified.
func Skeletonize(b *Bitmap) *Bitmap {
	s := b.Clone()
	for i := 0; i < maxThinIterations; i++ {
		removed := thinPass(s, 0)
		removed += thinPass(s, 1)
		if removed == 0 {
			break
		}
	}
	return s
}

// thinPass runs one Zhang-Suen sub-pass, collecting deletions first and
// applying them afterwards so every decision sees the same input state.
func thinPass(s *Bitmap, pass int) int {
	var deletions []image.Point
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if !s.At(x, y) {
				continue
			}
			p := ring(s, x, y)
			bn := count(p)
			if bn < 2 || bn > 6 {
				continue
			}
			if transitions(p) != 1 {
				continue
			}
			// p[0]=N, p[2]=E, p[4]=S, p[6]=W
			if pass == 0 {
				if p[0] && p[2] && p[4] {
					continue
				}
				if p[2] && p[4] && p[6] {
					continue
				}
			} else {
				if p[0] && p[2] && p[6] {
					continue
				}
				if p[0] && p[4] && p[6] {
					continue
				}
			}
			deletions = append(deletions, image.Point{x, y})
		}
	}
	for _, d := range deletions {
		s.Set(d.X, d.Y, false)
	}
	return len(deletions)
}

// ring returns the 8-neighborhood clockwise from north: N NE E SE S SW W NW.
func ring(s *Bitmap, x, y int) [8]bool {
	return [8]bool{
		s.At(x, y-1), s.At(x+1, y-1), s.At(x+1, y), s.At(x+1, y+1),
		s.At(x, y+1), s.At(x-1, y+1), s.At(x-1, y), s.At(x-1, y-1),
	}
}

func count(p [8]bool) int {
	var n int
	for _, v := range p {
		if v {
			n++
		}
	}
	return n
}

// transitions counts 0->1 flips walking the ring in order, wrapping around.
func transitions(p [8]bool) int {
	var n int
	for i := 0; i < 8; i++ {
		if !p[i] && p[(i+1)%8] {
			n++
		}
	}
	return n
}

// SkeletonPaths orders the pixels of a thinned bitmap into single-stroke
// polylines suitable for tube sweeping. Strokes start at endpoints (pixels
// with exactly one skeleton neighbor); leftover cycles start anywhere.
func SkeletonPaths(s *Bitmap) [][]mgl64.Vec2 {
	work := s.Clone()

	walk := func(x, y int) []mgl64.Vec2 {
		var path []mgl64.Vec2
		for {
			path = append(path, mgl64.Vec2{float64(x), float64(y)})
			work.Set(x, y, false)
			nx, ny, ok := nextNeighbor(work, x, y)
			if !ok {
				return path
			}
			x, y = nx, ny
		}
	}

	var paths [][]mgl64.Vec2
	// Endpoints first so open strokes are traced end to end.
	for y := 0; y < work.H; y++ {
		for x := 0; x < work.W; x++ {
			if work.At(x, y) && work.neighbors(x, y) == 1 {
				paths = append(paths, walk(x, y))
			}
		}
	}
	for y := 0; y < work.H; y++ {
		for x := 0; x < work.W; x++ {
			if work.At(x, y) {
				paths = append(paths, walk(x, y))
			}
		}
	}
	return paths
}

// nextNeighbor prefers 4-connected continuations over diagonals so strokes
// do not cut corners.
func nextNeighbor(b *Bitmap, x, y int) (int, int, bool) {
	order := [8][2]int{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1},
		{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
	}
	for _, d := range order {
		if b.At(x+d[0], y+d[1]) {
			return x + d[0], y + d[1], true
		}
	}
	return 0, 0, false
}
