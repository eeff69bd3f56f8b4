// Package mesh provides the triangle primitives shared by all generators.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is three ordered vertices plus a unit normal derived from the
// winding order (right-hand rule). The normal is only valid as long as the
// vertices are unchanged; use NewTriangle rather than mutating V1..V3.
type Triangle struct {
	V1, V2, V3 mgl64.Vec3
	N          mgl64.Vec3
}

// NewTriangle builds a triangle and computes its normal from the winding.
// A degenerate triangle (near-zero area) keeps a zero normal and is still
// returned so callers never lose a record.
func NewTriangle(v1, v2, v3 mgl64.Vec3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3, N: Normal(v1, v2, v3)}
}

// Normal returns normalize((v2-v1) x (v3-v1)), or the zero vector when the
// cross product is too small to normalize safely.
func Normal(v1, v2, v3 mgl64.Vec3) mgl64.Vec3 {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	l := n.Len()
	if l < 1e-12 {
		return mgl64.Vec3{}
	}
	return n.Mul(1 / l)
}

// Quad appends the two triangles covering the quad (a,b,c,d), where the
// vertices are given in winding order around the perimeter.
func Quad(tris []Triangle, a, b, c, d mgl64.Vec3) []Triangle {
	tris = append(tris, NewTriangle(a, b, c))
	tris = append(tris, NewTriangle(a, c, d))
	return tris
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Bounds returns the axis-aligned bounding box of tris.
// Empty input yields two zero vectors.
func Bounds(tris []Triangle) (min, max mgl64.Vec3) {
	if len(tris) == 0 {
		return min, max
	}
	min = tris[0].V1
	max = tris[0].V1
	grow := func(v mgl64.Vec3) {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	for _, t := range tris {
		grow(t.V1)
		grow(t.V2)
		grow(t.V3)
	}
	return min, max
}

// Translate returns a copy of tris moved by delta. Normals are unchanged.
func Translate(tris []Triangle, delta mgl64.Vec3) []Triangle {
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		out[i] = Triangle{
			V1: t.V1.Add(delta),
			V2: t.V2.Add(delta),
			V3: t.V3.Add(delta),
			N:  t.N,
		}
	}
	return out
}

// Defect describes an edge that breaks the two-triangles-per-edge pairing.
type Defect struct {
	A, B  mgl64.Vec3
	Count int // directed uses of the edge A->B
}

// Check runs an edge-pairing scan over tris: in a closed, consistently wound
// mesh every undirected edge is used exactly twice, once in each direction.
// It returns the edges that violate this. The generators never call Check
// themselves; it is a diagnostic for callers that need watertight output.
func Check(tris []Triangle) []Defect {
	type key struct{ ax, ay, az, bx, by, bz float64 }
	dir := map[key]int{}
	edge := func(a, b mgl64.Vec3) key {
		return key{a.X(), a.Y(), a.Z(), b.X(), b.Y(), b.Z()}
	}
	for _, t := range tris {
		dir[edge(t.V1, t.V2)]++
		dir[edge(t.V2, t.V3)]++
		dir[edge(t.V3, t.V1)]++
	}

	var defects []Defect
	seen := map[key]bool{}
	for k, n := range dir {
		rk := key{k.bx, k.by, k.bz, k.ax, k.ay, k.az}
		if seen[k] || seen[rk] {
			continue
		}
		seen[k] = true
		if n != 1 || dir[rk] != 1 {
			defects = append(defects, Defect{
				A:     mgl64.Vec3{k.ax, k.ay, k.az},
				B:     mgl64.Vec3{k.bx, k.by, k.bz},
				Count: n,
			})
		}
	}
	return defects
}

// HasNaN reports whether any coordinate of the triangle is NaN.
// Serialization never rejects such triangles; this is for diagnostics only.
func (t Triangle) HasNaN() bool {
	for _, v := range []mgl64.Vec3{t.V1, t.V2, t.V3, t.N} {
		for i := 0; i < 3; i++ {
			if math.IsNaN(v[i]) {
				return true
			}
		}
	}
	return false
}
