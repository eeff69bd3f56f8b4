package sign

import (
	"encoding/json"
	"fmt"

	"github.com/eyeoverthink/SignMaker3D-sub002/relief"
	"github.com/eyeoverthink/SignMaker3D-sub002/tube"
	"github.com/go-gl/mathgl/mgl64"
)

// Job is one decoded generation request: paths and/or a height grid plus the
// resolved settings record. String identifiers from the wire format are
// resolved to enums during parsing; the generators never see them.
type Job struct {
	Name     string
	Paths    []tube.Path
	Relief   *relief.Map
	Settings Settings
}

// jobJSON is the wire format of a job file.
type jobJSON struct {
	Name   string     `json:"name"`
	Paths  []pathJSON `json:"paths"`
	Relief *gridJSON  `json:"relief"`

	Settings settingsJSON `json:"settings"`
}

type pathJSON struct {
	Points [][2]float64 `json:"points"`
	Closed bool         `json:"closed"`
}

type gridJSON struct {
	Columns int       `json:"columns"`
	Samples []float64 `json:"samples"` // row-major, len divisible by columns

	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

type settingsJSON struct {
	Shape    string `json:"shape"`
	Material string `json:"material"`

	OuterRadius   float64 `json:"outerRadius"`
	InnerRadius   float64 `json:"innerRadius"`
	WallThickness float64 `json:"wallThickness"`
	Segments      int     `json:"segments"`

	TongueWidth   float64 `json:"tongueWidth"`
	TongueDepth   float64 `json:"tongueDepth"`
	SnapTolerance float64 `json:"snapTolerance"`

	Connectors         bool    `json:"connectors"`
	ConnectorLength    float64 `json:"connectorLength"`
	ConnectorTolerance float64 `json:"connectorTolerance"`

	ChannelLayout string  `json:"channelLayout"`
	ChannelWidth  float64 `json:"channelWidth"`
	ChannelDepth  float64 `json:"channelDepth"`
	GridLines     int     `json:"gridLines"`

	SmoothPasses      int     `json:"smoothPasses"`
	Threshold         float64 `json:"threshold"`
	MinContour        int     `json:"minContour"`
	SimplifyTolerance float64 `json:"simplifyTolerance"`
}

// ParseJob decodes a job file and resolves its settings. A path whose first
// and last points coincide (within 1 unit) is closed automatically even when
// the closed flag is unset.
func ParseJob(data []byte) (*Job, error) {
	var j jobJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unable to parse job: %v", err)
	}

	settings, err := resolveSettings(j.Settings)
	if err != nil {
		return nil, err
	}

	job := &Job{Name: j.Name, Settings: settings}
	if job.Name == "" {
		job.Name = "sign"
	}

	for _, p := range j.Paths {
		pts := make([]mgl64.Vec2, len(p.Points))
		for i, xy := range p.Points {
			pts[i] = mgl64.Vec2{xy[0], xy[1]}
		}
		path := tube.NewPath(pts)
		if p.Closed {
			path.Closed = true
		}
		job.Paths = append(job.Paths, path)
	}

	if j.Relief != nil {
		m, err := resolveGrid(j.Relief)
		if err != nil {
			return nil, err
		}
		job.Relief = m
	}
	return job, nil
}

func resolveSettings(s settingsJSON) (Settings, error) {
	shape, err := ParseShape(s.Shape)
	if err != nil {
		return Settings{}, err
	}
	material, err := ParseMaterial(s.Material)
	if err != nil {
		return Settings{}, err
	}
	layout, err := ParseChannelLayout(s.ChannelLayout)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Shape:              shape,
		Material:           material,
		OuterRadius:        s.OuterRadius,
		InnerRadius:        s.InnerRadius,
		WallThickness:      s.WallThickness,
		Segments:           s.Segments,
		TongueWidth:        s.TongueWidth,
		TongueDepth:        s.TongueDepth,
		SnapTolerance:      s.SnapTolerance,
		Connectors:         s.Connectors,
		ConnectorLength:    s.ConnectorLength,
		ConnectorTolerance: s.ConnectorTolerance,
		ChannelLayout:      layout,
		ChannelWidth:       s.ChannelWidth,
		ChannelDepth:       s.ChannelDepth,
		GridLines:          s.GridLines,
		SmoothPasses:       s.SmoothPasses,
		Threshold:          s.Threshold,
		MinContour:         s.MinContour,
		SimplifyTolerance:  s.SimplifyTolerance,
	}, nil
}

func resolveGrid(g *gridJSON) (*relief.Map, error) {
	if g.Columns < 2 {
		return nil, fmt.Errorf("relief grid needs at least 2 columns, got %v", g.Columns)
	}
	if len(g.Samples) == 0 || len(g.Samples)%g.Columns != 0 {
		return nil, fmt.Errorf("relief sample count %v is not a multiple of %v columns", len(g.Samples), g.Columns)
	}
	rows := len(g.Samples) / g.Columns
	if rows < 2 {
		return nil, fmt.Errorf("relief grid needs at least 2 rows, got %v", rows)
	}

	m := relief.NewMap(g.Columns, rows, g.Width, g.Height, g.Thickness)
	copy(m.Depth, g.Samples)
	return m, nil
}
