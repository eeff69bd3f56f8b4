package relief

import (
	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/eyeoverthink/SignMaker3D-sub002/tube"
	"github.com/go-gl/mathgl/mgl64"
)

// Layout selects where channel segments are placed on the plate.
type Layout int

const (
	LayoutNone Layout = iota
	// LayoutEdges runs one channel along each plate edge.
	LayoutEdges
	// LayoutGrid lays channels on an evenly spaced grid of lines.
	LayoutGrid
	// LayoutContours sweeps channels along traced shape boundaries.
	LayoutContours
)

// Channels produces the additive channel geometry for the plate: rectangular
// segments of the given width and depth sitting on the base plane, hosting
// embedded linear light sources. The segments are overlay geometry, not
// boolean-subtracted from the plate. gridLines only applies to LayoutGrid;
// contours only to LayoutContours (in plate coordinates).
func Channels(m *Map, layout Layout, width, depth float64, gridLines int, contours [][]mgl64.Vec2) []mesh.Triangle {
	switch layout {
	case LayoutEdges:
		return edgeChannels(m, width, depth)
	case LayoutGrid:
		return gridChannels(m, width, depth, gridLines)
	case LayoutContours:
		var tris []mesh.Triangle
		for _, c := range contours {
			p := tube.NewPath(c)
			tris = append(tris, tube.SweepDuct(p, width, depth)...)
		}
		return tris
	}
	return nil
}

func edgeChannels(m *Map, width, depth float64) []mesh.Triangle {
	inset := width // keep the channel clear of the wall
	var tris []mesh.Triangle
	tris = append(tris, channelBox(m, inset, inset, m.Width-inset, inset+width, depth)...)
	tris = append(tris, channelBox(m, inset, m.Height-inset-width, m.Width-inset, m.Height-inset, depth)...)
	tris = append(tris, channelBox(m, inset, inset+width, inset+width, m.Height-inset-width, depth)...)
	tris = append(tris, channelBox(m, m.Width-inset-width, inset+width, m.Width-inset, m.Height-inset-width, depth)...)
	return tris
}

func gridChannels(m *Map, width, depth float64, lines int) []mesh.Triangle {
	if lines < 1 {
		return nil
	}
	var tris []mesh.Triangle
	for i := 1; i <= lines; i++ {
		x := m.Width * float64(i) / float64(lines+1)
		tris = append(tris, channelBox(m, x-width/2, 0, x+width/2, m.Height, depth)...)
		y := m.Height * float64(i) / float64(lines+1)
		tris = append(tris, channelBox(m, 0, y-width/2, m.Width, y+width/2, depth)...)
	}
	return tris
}

// channelBox emits a closed axis-aligned box from the base plane upward.
func channelBox(m *Map, x0, y0, x1, y1, depth float64) []mesh.Triangle {
	z0, z1 := m.Base, m.Base+depth
	p := func(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

	var tris []mesh.Triangle
	// top and bottom
	tris = mesh.Quad(tris, p(x0, y0, z1), p(x1, y0, z1), p(x1, y1, z1), p(x0, y1, z1))
	tris = mesh.Quad(tris, p(x0, y0, z0), p(x0, y1, z0), p(x1, y1, z0), p(x1, y0, z0))
	// sides
	tris = mesh.Quad(tris, p(x0, y0, z0), p(x1, y0, z0), p(x1, y0, z1), p(x0, y0, z1)) // -Y
	tris = mesh.Quad(tris, p(x1, y1, z0), p(x0, y1, z0), p(x0, y1, z1), p(x1, y1, z1)) // +Y
	tris = mesh.Quad(tris, p(x0, y1, z0), p(x0, y0, z0), p(x0, y0, z1), p(x0, y1, z1)) // -X
	tris = mesh.Quad(tris, p(x1, y0, z0), p(x1, y1, z0), p(x1, y1, z1), p(x1, y0, z1)) // +X
	return tris
}
