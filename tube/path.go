// Package tube sweeps 2D paths into printable tube solids: plain hollow
// tubes, interlocking split halves with tongue-and-groove seams, rectangular
// wire ducts, and modular end connectors.
package tube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// closeTolerance is the maximum distance between the first and last point of
// a path for it to be treated as closed.
const closeTolerance = 1.0

// Path is an ordered sequence of 2D points in the XY plane.
type Path struct {
	Points []mgl64.Vec2
	Closed bool
}

// NewPath builds a path from points. When the first and last points coincide
// within closeTolerance, the duplicate last point is dropped and the path is
// marked closed.
func NewPath(points []mgl64.Vec2) Path {
	p := Path{Points: points}
	if n := len(points); n >= 3 && points[0].Sub(points[n-1]).Len() <= closeTolerance {
		p.Points = points[:n-1]
		p.Closed = true
	}
	return p
}

// Options is the flat parameter record shared by the tube generators.
type Options struct {
	OuterRadius float64
	InnerRadius float64 // <= 0 means a solid tube
	Segments    int

	// Split-half seam geometry.
	TongueWidth float64
	TongueDepth float64
	Clearance   float64 // groove is widened and deepened by this much

	// End connector geometry.
	ConnectorLength    float64
	ConnectorTolerance float64
}

// CrossSection is the per-path-point frame used to place ring points in 3D.
// Binormal is the outward in-plane perpendicular; Normal is the carried
// parallel-transport axis (vertical for planar paths). Cross-sections are
// derived transiently per generation call and never persisted.
type CrossSection struct {
	Pos      mgl64.Vec3
	Tangent  mgl64.Vec3
	Normal   mgl64.Vec3
	Binormal mgl64.Vec3
}

// point maps frame coordinates (u along Binormal, v along Normal) to world
// space.
func (cs CrossSection) point(u, v float64) mgl64.Vec3 {
	return cs.Pos.Add(cs.Binormal.Mul(u)).Add(cs.Normal.Mul(v))
}

// Ring samples a full circle of segments points around the cross-section.
func (cs CrossSection) Ring(radius float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for j := 0; j < segments; j++ {
		a := 2 * math.Pi * float64(j) / float64(segments)
		pts[j] = cs.point(radius*math.Cos(a), radius*math.Sin(a))
	}
	return pts
}

// Arc samples segments+1 points from startAngle to endAngle inclusive.
func (cs CrossSection) Arc(radius, startAngle, endAngle float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments+1)
	for j := 0; j <= segments; j++ {
		a := startAngle + (endAngle-startAngle)*float64(j)/float64(segments)
		pts[j] = cs.point(radius*math.Cos(a), radius*math.Sin(a))
	}
	return pts
}

// CrossSections computes the sweep frames for the path: smoothed tangents and
// a rotation-minimizing normal carried forward by parallel transport. Paths
// with fewer than 2 points yield nil.
func CrossSections(p Path) []CrossSection {
	n := len(p.Points)
	if n < 2 {
		return nil
	}

	sections := make([]CrossSection, n)
	f := frame{normal: mgl64.Vec3{0, 0, 1}}
	for i := 0; i < n; i++ {
		t := tangentAt(p, i)
		f = f.transport(t)
		pt := p.Points[i]
		sections[i] = CrossSection{
			Pos:      mgl64.Vec3{pt.X(), pt.Y(), 0},
			Tangent:  t,
			Normal:   f.normal,
			Binormal: t.Cross(f.normal),
		}
	}
	return sections
}

// frame is the parallel-transport state threaded through the sweep. Keeping
// it an explicit value (rather than a captured variable) means each
// generation call owns its frame history.
type frame struct {
	normal mgl64.Vec3
}

// transport re-orthogonalizes the carried normal against the new tangent
// (Gram-Schmidt). When the tangent is nearly parallel to the carried normal
// (close to vertical), it restarts from a fixed reference axis instead of
// producing a twisting artifact.
func (f frame) transport(t mgl64.Vec3) frame {
	n := f.normal.Sub(t.Mul(t.Dot(f.normal)))
	if n.Len() < 1e-9 {
		ref := mgl64.Vec3{0, 0, 1}
		if math.Abs(t.Z()) > 0.9 {
			ref = mgl64.Vec3{1, 0, 0}
		}
		n = ref.Sub(t.Mul(t.Dot(ref)))
	}
	return frame{normal: n.Normalize()}
}

// tangentAt averages the directions to the previous and next point. Endpoints
// of open paths use a one-sided difference; closed paths wrap. A degenerate
// (zero-length) result defaults to +X.
func tangentAt(p Path, i int) mgl64.Vec3 {
	n := len(p.Points)
	dir := func(a, b int) (mgl64.Vec2, bool) {
		d := p.Points[b].Sub(p.Points[a])
		l := d.Len()
		if l < 1e-9 {
			return mgl64.Vec2{}, false
		}
		return d.Mul(1 / l), true
	}

	var sum mgl64.Vec2
	var any bool
	prev, next := i-1, i+1
	if p.Closed {
		prev, next = (i-1+n)%n, (i+1)%n
	}
	if prev >= 0 {
		if d, ok := dir(prev, i); ok {
			sum = sum.Add(d)
			any = true
		}
	}
	if next < n || p.Closed {
		if d, ok := dir(i, next%n); ok {
			sum = sum.Add(d)
			any = true
		}
	}
	if !any || sum.Len() < 1e-9 {
		return mgl64.Vec3{1, 0, 0}
	}
	t := sum.Normalize()
	return mgl64.Vec3{t.X(), t.Y(), 0}
}
