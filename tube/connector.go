package tube

import (
	"math"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// ConnectorKind selects the mating role of an end stub.
type ConnectorKind int

const (
	// Male stubs are sized below the nominal outer radius for insertion.
	Male ConnectorKind = iota
	// Female stubs are sized above the nominal outer radius for receiving.
	Female
)

// PathEnd identifies an open endpoint of a path.
type PathEnd int

const (
	StartEnd PathEnd = iota
	EndEnd
)

// Connector generates a short stub at an open path endpoint so printed
// segments can be chained. The stub extends along the path direction by
// opts.ConnectorLength; its radius is the nominal outer radius shrunk (male)
// or grown (female) by opts.ConnectorTolerance. halfArc matches the stub to a
// split-half profile and adds the flat seam face. Male stubs get a solid end
// cap; female stubs stay open. Closed paths have no endpoints and yield nil.
func Connector(p Path, end PathEnd, kind ConnectorKind, halfArc bool, opts Options) []mesh.Triangle {
	if p.Closed {
		return nil
	}
	sections := CrossSections(p)
	if sections == nil {
		return nil
	}

	cs := sections[0]
	if end == EndEnd {
		cs = sections[len(sections)-1]
	}
	dir := cs.Tangent
	if end == StartEnd {
		dir = dir.Mul(-1)
	}
	// Re-frame along the extension direction so ring winding stays outward.
	stub := CrossSection{
		Pos:      cs.Pos,
		Tangent:  dir,
		Normal:   cs.Normal,
		Binormal: dir.Cross(cs.Normal),
	}
	far := stub
	far.Pos = stub.Pos.Add(dir.Mul(opts.ConnectorLength))

	r := opts.OuterRadius - opts.ConnectorTolerance
	if kind == Female {
		r = opts.OuterRadius + opts.ConnectorTolerance
	}
	if r <= 0 {
		return nil
	}

	if halfArc {
		return halfConnector(stub, far, r, kind, opts)
	}

	base := stub.Ring(r, opts.Segments)
	tip := far.Ring(r, opts.Segments)
	tris := connectRings(nil, base, tip, false)
	if kind == Male {
		tris = discCap(tris, far, tip, true)
	}
	return tris
}

// halfConnector builds the half-arc variant: an arc wall, a flat seam face
// along the split plane, and for male stubs a solid half-disc end cap.
func halfConnector(stub, far CrossSection, r float64, kind ConnectorKind, opts Options) []mesh.Triangle {
	segs := opts.Segments
	if segs < 2 {
		segs = 2
	}
	base := stub.Arc(r, 0, math.Pi, segs)
	tip := far.Arc(r, 0, math.Pi, segs)

	tris := connectStrips(nil, base, tip, false)

	// Flat seam face between the two arc edges, facing away from the arc.
	tris = mesh.Quad(tris, base[0], base[segs], tip[segs], tip[0])

	if kind == Male {
		tris = fanCap(tris, far.Pos, tip, true)
	}
	return tris
}

// fanCap triangulates an arc strip against its section center.
func fanCap(tris []mesh.Triangle, center mgl64.Vec3, arc []mgl64.Vec3, atEnd bool) []mesh.Triangle {
	for j := 0; j+1 < len(arc); j++ {
		if atEnd {
			tris = append(tris, mesh.NewTriangle(center, arc[j+1], arc[j]))
		} else {
			tris = append(tris, mesh.NewTriangle(center, arc[j], arc[j+1]))
		}
	}
	return tris
}
