package tube

import (
	"math"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// profile is a closed 2D cross-section outline in frame coordinates
// (u along the binormal, v along the normal). Counter-clockwise winding
// produces outward-facing side walls when swept.
type profile []mgl64.Vec2

// place maps the profile into world space at the given cross-section.
func (pr profile) place(cs CrossSection) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, len(pr))
	for i, p := range pr {
		pts[i] = cs.point(p.X(), p.Y())
	}
	return pts
}

// connectRings stitches two equal-length rings with two triangles per quad.
// For counter-clockwise rings the walls face outward when b follows a along
// the sweep direction; reverse flips the winding (used for inner walls).
func connectRings(tris []mesh.Triangle, a, b []mgl64.Vec3, reverse bool) []mesh.Triangle {
	n := len(a)
	for j := 0; j < n; j++ {
		jn := (j + 1) % n
		if reverse {
			tris = mesh.Quad(tris, a[j], a[jn], b[jn], b[j])
		} else {
			tris = mesh.Quad(tris, a[j], b[j], b[jn], a[jn])
		}
	}
	return tris
}

// connectStrips is connectRings for open point strips (no wrap-around),
// used along split seams and arc walls.
func connectStrips(tris []mesh.Triangle, a, b []mgl64.Vec3, reverse bool) []mesh.Triangle {
	for j := 0; j+1 < len(a); j++ {
		if reverse {
			tris = mesh.Quad(tris, a[j], a[j+1], b[j+1], b[j])
		} else {
			tris = mesh.Quad(tris, a[j], b[j], b[j+1], a[j+1])
		}
	}
	return tris
}

// sweepLoop extrudes a closed profile loop along the path cross-sections.
// Open paths are capped at both ends by triangulating the profile; closed
// paths wrap the last section back to the first.
func sweepLoop(sections []CrossSection, pr profile, closed bool) []mesh.Triangle {
	if len(sections) < 2 || len(pr) < 3 {
		return nil
	}

	loops := make([][]mgl64.Vec3, len(sections))
	for i, cs := range sections {
		loops[i] = pr.place(cs)
	}

	var tris []mesh.Triangle
	for i := 0; i+1 < len(loops); i++ {
		tris = connectRings(tris, loops[i], loops[i+1], false)
	}
	if closed {
		return connectRings(tris, loops[len(loops)-1], loops[0], false)
	}

	ears := triangulate(pr)
	first, last := loops[0], loops[len(loops)-1]
	for _, e := range ears {
		// A counter-clockwise profile triangulates facing -tangent,
		// which is the start cap; the end cap is mirrored.
		tris = append(tris, mesh.NewTriangle(first[e[0]], first[e[1]], first[e[2]]))
		tris = append(tris, mesh.NewTriangle(last[e[0]], last[e[2]], last[e[1]]))
	}
	return tris
}

// triangulate ear-clips a simple counter-clockwise polygon into index
// triples. Collinear runs are clipped as degenerate ears so the loop always
// shrinks; the caller tolerates zero-area triangles.
func triangulate(pr profile) [][3]int {
	n := len(pr)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var out [][3]int
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i-1+len(idx))%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			if !isEar(pr, idx, ia, ib, ic) {
				continue
			}
			out = append(out, [3]int{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Numerically stuck (e.g. self-touching profile); emit a fan for
			// the remainder rather than looping forever.
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, [3]int{idx[0], idx[i], idx[i+1]})
			}
			return out
		}
	}
	out = append(out, [3]int{idx[0], idx[1], idx[2]})
	return out
}

func isEar(pr profile, idx []int, ia, ib, ic int) bool {
	a, b, c := pr[ia], pr[ib], pr[ic]
	if cross2(b.Sub(a), c.Sub(a)) < -1e-12 {
		return false // reflex corner
	}
	for _, j := range idx {
		if j == ia || j == ib || j == ic {
			continue
		}
		if pointInTriangle(pr[j], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func pointInTriangle(p, a, b, c mgl64.Vec2) bool {
	d1 := cross2(b.Sub(a), p.Sub(a))
	d2 := cross2(c.Sub(b), p.Sub(b))
	d3 := cross2(a.Sub(c), p.Sub(c))
	hasNeg := d1 < -1e-12 || d2 < -1e-12 || d3 < -1e-12
	hasPos := d1 > 1e-12 || d2 > 1e-12 || d3 > 1e-12
	return !(hasNeg && hasPos)
}

// arcProfile samples a circular arc in profile space from startAngle to
// endAngle inclusive.
func arcProfile(radius, startAngle, endAngle float64, segments int) profile {
	pts := make(profile, segments+1)
	for j := 0; j <= segments; j++ {
		a := startAngle + (endAngle-startAngle)*float64(j)/float64(segments)
		pts[j] = mgl64.Vec2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return pts
}
