package sign

import (
	"fmt"
	"log"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/eyeoverthink/SignMaker3D-sub002/relief"
	"github.com/eyeoverthink/SignMaker3D-sub002/stl"
	"github.com/eyeoverthink/SignMaker3D-sub002/trace"
	"github.com/eyeoverthink/SignMaker3D-sub002/tube"
	"github.com/go-gl/mathgl/mgl64"
)

// GeneratePathParts sweeps every path into its shape's parts. Degenerate
// paths (fewer than 2 points) are skipped silently. When a later path fails,
// the parts generated before it are still returned alongside the error, so
// callers can package what succeeded.
func GeneratePathParts(baseName string, paths []tube.Path, s Settings) ([]ExportedPart, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts := s.tubeOptions()

	var parts []ExportedPart
	add := func(n int, pt PartType, tris []mesh.Triangle) {
		if len(tris) == 0 {
			return
		}
		parts = append(parts, newPart(baseName, "part", n, pt, s.Material, tris))
	}

	for i, p := range paths {
		if len(p.Points) < 2 {
			log.Printf("Skipping degenerate path #%v (%v points)", i, len(p.Points))
			continue
		}

		switch s.Shape {
		case ShapeRound:
			add(i, PartTube, tube.Sweep(p, opts))
		case ShapeSplit:
			top, bottom := tube.SplitHalves(p, opts)
			add(i, PartTopHalf, top)
			add(i, PartBottomHalf, bottom)
		case ShapeDuct:
			add(i, PartChannel, tube.SweepDuct(p, s.ChannelWidth, s.ChannelDepth))
		default:
			return parts, fmt.Errorf("unhandled shape %v", s.Shape)
		}

		if s.Connectors && !p.Closed && s.Shape != ShapeDuct {
			half := s.Shape == ShapeSplit
			add(i, PartConnectorFemale, tube.Connector(p, tube.StartEnd, tube.Female, half, opts))
			add(i, PartConnectorMale, tube.Connector(p, tube.EndEnd, tube.Male, half, opts))
		}
	}
	return parts, nil
}

// GenerateReliefParts smooths the height map, meshes it into a closed base
// solid, and adds channel geometry per the configured layout.
func GenerateReliefParts(baseName string, m *relief.Map, s Settings) ([]ExportedPart, error) {
	relief.Smooth(m, s.SmoothPasses)

	base := relief.Mesh(m)
	if base == nil {
		return nil, fmt.Errorf("height map %vx%v is too small to mesh", m.W, m.H)
	}
	parts := []ExportedPart{newPart(baseName, "relief", 0, PartBase, s.Material, base)}

	channels := channelTriangles(m, s)
	if len(channels) > 0 {
		parts = append(parts, newPart(baseName, "relief", 1, PartChannel, s.Material, channels))
	}
	return parts, nil
}

func channelTriangles(m *relief.Map, s Settings) []mesh.Triangle {
	switch s.ChannelLayout {
	case ChannelsEdges:
		return relief.Channels(m, relief.LayoutEdges, s.ChannelWidth, s.ChannelDepth, 0, nil)
	case ChannelsGrid:
		return relief.Channels(m, relief.LayoutGrid, s.ChannelWidth, s.ChannelDepth, s.GridLines, nil)
	case ChannelsContours:
		contours := tracedContours(m, s)
		tris := relief.Channels(m, relief.LayoutContours, s.ChannelWidth, s.ChannelDepth, 0, contours)
		// Ducts are swept around z=0; seat them on top of the base plate.
		return mesh.Translate(tris, mgl64.Vec3{0, 0, m.Base + s.ChannelDepth/2})
	}
	return nil
}

// tracedContours extracts simplified shape boundaries from the height map in
// physical plate coordinates.
func tracedContours(m *relief.Map, s Settings) [][]mgl64.Vec2 {
	bm := trace.Threshold(m, s.Threshold)
	minLen := s.MinContour
	if minLen <= 0 {
		minLen = 8
	}
	sx := m.Width / float64(m.W-1)
	sy := m.Height / float64(m.H-1)

	var out [][]mgl64.Vec2
	for _, c := range trace.Contours(bm, minLen) {
		pts := c.Points()
		if s.SimplifyTolerance > 0 {
			pts = trace.Simplify(pts, s.SimplifyTolerance)
		}
		if len(pts) < 2 {
			continue
		}
		for i := range pts {
			pts[i] = mgl64.Vec2{pts[i].X() * sx, pts[i].Y() * sy}
		}
		out = append(out, pts)
	}
	return out
}

func (s Settings) tubeOptions() tube.Options {
	return tube.Options{
		OuterRadius:        s.OuterRadius,
		InnerRadius:        s.innerRadius(),
		Segments:           s.Segments,
		TongueWidth:        s.TongueWidth,
		TongueDepth:        s.TongueDepth,
		Clearance:          s.SnapTolerance,
		ConnectorLength:    s.ConnectorLength,
		ConnectorTolerance: s.ConnectorTolerance,
	}
}

// newPart names the part within its generator's group ("part" for path
// sweeps, "relief" for plate parts) so the two generators never collide on a
// filename within one job.
func newPart(baseName, group string, n int, pt PartType, m Material, tris []mesh.Triangle) ExportedPart {
	filename := fmt.Sprintf("%v-%v%02d-%v.stl", baseName, group, n, pt)
	return ExportedPart{
		Filename:  filename,
		Content:   stl.Encode(filename, tris),
		Triangles: tris,
		Type:      pt,
		Material:  m.Hint(),
	}
}
