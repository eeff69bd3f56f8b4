// Package sign turns paths and height maps into named, export-ready sign
// parts. It resolves the string identifiers of the job input into closed
// enumerations once, at the parsing boundary, and hands finished parts to an
// archiving collaborator.
package sign

import (
	"fmt"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
)

// Shape selects the tube profile generated for each path.
type Shape int

const (
	// ShapeRound is a one-piece hollow tube.
	ShapeRound Shape = iota
	// ShapeSplit is a pair of interlocking half tubes.
	ShapeSplit
	// ShapeDuct is a rectangular wire duct.
	ShapeDuct
)

// ParseShape resolves a job shape identifier.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "round", "":
		return ShapeRound, nil
	case "split":
		return ShapeSplit, nil
	case "duct":
		return ShapeDuct, nil
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeSplit:
		return "split"
	case ShapeDuct:
		return "duct"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Material is the print-material hint attached to exported parts.
type Material int

const (
	MaterialPLA Material = iota
	MaterialPETG
	MaterialClear
)

// ParseMaterial resolves a job material identifier.
func ParseMaterial(s string) (Material, error) {
	switch s {
	case "pla", "":
		return MaterialPLA, nil
	case "petg":
		return MaterialPETG, nil
	case "clear":
		return MaterialClear, nil
	}
	return 0, fmt.Errorf("unknown material %q", s)
}

// Hint returns the material hint string carried on exported parts.
func (m Material) Hint() string {
	switch m {
	case MaterialPLA:
		return "pla"
	case MaterialPETG:
		return "petg"
	case MaterialClear:
		return "clear"
	}
	return fmt.Sprintf("Material(%d)", int(m))
}

// PartType tags an exported part with its role in the assembly.
type PartType int

const (
	PartTube PartType = iota
	PartTopHalf
	PartBottomHalf
	PartBase
	PartConnectorMale
	PartConnectorFemale
	PartChannel
)

func (p PartType) String() string {
	switch p {
	case PartTube:
		return "neon_tube"
	case PartTopHalf:
		return "top_half"
	case PartBottomHalf:
		return "bottom_half"
	case PartBase:
		return "base"
	case PartConnectorMale:
		return "connector_male"
	case PartConnectorFemale:
		return "connector_female"
	case PartChannel:
		return "channel"
	}
	return fmt.Sprintf("PartType(%d)", int(p))
}

// ChannelLayout selects where light channels are placed on a relief plate.
type ChannelLayout int

const (
	ChannelsNone ChannelLayout = iota
	ChannelsEdges
	ChannelsGrid
	ChannelsContours
)

// ParseChannelLayout resolves a job channel layout identifier.
func ParseChannelLayout(s string) (ChannelLayout, error) {
	switch s {
	case "none", "":
		return ChannelsNone, nil
	case "edges":
		return ChannelsEdges, nil
	case "grid":
		return ChannelsGrid, nil
	case "contours":
		return ChannelsContours, nil
	}
	return 0, fmt.Errorf("unknown channel layout %q", s)
}

// Settings is the flat parameter record for one generation call.
type Settings struct {
	Shape    Shape
	Material Material

	OuterRadius   float64
	InnerRadius   float64 // derived from WallThickness when zero
	WallThickness float64
	Segments      int

	TongueWidth   float64
	TongueDepth   float64
	SnapTolerance float64 // tongue/groove clearance

	Connectors         bool
	ConnectorLength    float64
	ConnectorTolerance float64

	ChannelLayout ChannelLayout
	ChannelWidth  float64
	ChannelDepth  float64
	GridLines     int

	SmoothPasses      int
	Threshold         float64 // contour threshold on relief depth
	MinContour        int
	SimplifyTolerance float64
}

// Validate rejects parameter combinations no generator can honor.
func (s Settings) Validate() error {
	if s.OuterRadius <= 0 {
		return fmt.Errorf("outer radius must be positive, got %v", s.OuterRadius)
	}
	if s.Segments < 3 {
		return fmt.Errorf("segment count must be at least 3, got %v", s.Segments)
	}
	if s.InnerRadius < 0 || s.InnerRadius >= s.OuterRadius {
		return fmt.Errorf("inner radius %v must be in [0, outer radius %v)", s.InnerRadius, s.OuterRadius)
	}
	if s.Shape == ShapeDuct && (s.ChannelWidth <= 0 || s.ChannelDepth <= 0) {
		return fmt.Errorf("duct shape needs positive channel dimensions, got %vx%v", s.ChannelWidth, s.ChannelDepth)
	}
	return nil
}

// innerRadius resolves the inner radius from the wall thickness when it was
// not given directly.
func (s Settings) innerRadius() float64 {
	if s.InnerRadius > 0 {
		return s.InnerRadius
	}
	if s.WallThickness > 0 && s.WallThickness < s.OuterRadius {
		return s.OuterRadius - s.WallThickness
	}
	return s.InnerRadius
}

// ExportedPart is one named output unit. It is immutable after creation.
// Content is the encoded STL buffer handed to the archiving collaborator;
// Triangles is the same geometry kept in mesh form for streaming writers.
type ExportedPart struct {
	Filename  string
	Content   []byte
	Triangles []mesh.Triangle
	Type      PartType
	Material  string
}
