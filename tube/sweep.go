package tube

import (
	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Sweep extrudes a circular cross-section along the path: a hollow tube when
// InnerRadius > 0, a solid rod otherwise. Open ends are capped; closed paths
// wrap the last cross-section back to the first. Paths with fewer than 2
// points produce no triangles.
func Sweep(p Path, opts Options) []mesh.Triangle {
	sections := CrossSections(p)
	if sections == nil {
		return nil
	}

	hollow := opts.InnerRadius > 0
	outer := make([][]mgl64.Vec3, len(sections))
	inner := make([][]mgl64.Vec3, len(sections))
	for i, cs := range sections {
		outer[i] = cs.Ring(opts.OuterRadius, opts.Segments)
		if hollow {
			inner[i] = cs.Ring(opts.InnerRadius, opts.Segments)
		}
	}

	var tris []mesh.Triangle
	connect := func(i, j int) {
		tris = connectRings(tris, outer[i], outer[j], false)
		if hollow {
			tris = connectRings(tris, inner[i], inner[j], true)
		}
	}
	for i := 0; i+1 < len(sections); i++ {
		connect(i, i+1)
	}

	if p.Closed {
		connect(len(sections)-1, 0)
		return tris
	}

	if hollow {
		tris = annulusCap(tris, outer[0], inner[0], false)
		tris = annulusCap(tris, outer[len(outer)-1], inner[len(inner)-1], true)
	} else {
		tris = discCap(tris, sections[0], outer[0], false)
		tris = discCap(tris, sections[len(sections)-1], outer[len(outer)-1], true)
	}
	return tris
}

// SweepDuct extrudes a width x depth rectangular duct along the path,
// centered on it. Used for wire and LED channel geometry.
func SweepDuct(p Path, width, depth float64) []mesh.Triangle {
	sections := CrossSections(p)
	if sections == nil {
		return nil
	}
	w, d := width/2, depth/2
	rect := profile{
		{w, -d},
		{w, d},
		{-w, d},
		{-w, -d},
	}
	return sweepLoop(sections, rect, p.Closed)
}

// annulusCap closes an open hollow-tube end by stitching the outer ring to
// the inner ring. atEnd selects the winding so the cap faces away from the
// tube body.
func annulusCap(tris []mesh.Triangle, outer, inner []mgl64.Vec3, atEnd bool) []mesh.Triangle {
	n := len(outer)
	for j := 0; j < n; j++ {
		jn := (j + 1) % n
		if atEnd {
			tris = mesh.Quad(tris, outer[j], inner[j], inner[jn], outer[jn])
		} else {
			tris = mesh.Quad(tris, outer[j], outer[jn], inner[jn], inner[j])
		}
	}
	return tris
}

// discCap closes an open solid-tube end with a fan around the section center.
func discCap(tris []mesh.Triangle, cs CrossSection, ring []mgl64.Vec3, atEnd bool) []mesh.Triangle {
	n := len(ring)
	for j := 0; j < n; j++ {
		jn := (j + 1) % n
		if atEnd {
			tris = append(tris, mesh.NewTriangle(cs.Pos, ring[jn], ring[j]))
		} else {
			tris = append(tris, mesh.NewTriangle(cs.Pos, ring[j], ring[jn]))
		}
	}
	return tris
}
