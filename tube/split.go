package tube

import (
	"math"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Half identifies one of the two mating halves of a split tube.
type Half int

const (
	// TopHalf spans ring angles 0..pi and carries the tongue ribs.
	TopHalf Half = iota
	// BottomHalf spans ring angles pi..2pi and carries the grooves.
	BottomHalf
)

// SplitHalves generates the two complementary halves of a hollow tube along
// the path. Both halves share the exterior profile so the assembled part is
// flush; they differ only in seam geometry: the top half extrudes a
// rectangular tongue below the seam plane at both split edges, the bottom
// half cuts a matching groove widened and deepened by opts.Clearance so the
// halves assemble without post-processing.
func SplitHalves(p Path, opts Options) (top, bottom []mesh.Triangle) {
	sections := CrossSections(p)
	if sections == nil {
		return nil, nil
	}
	top = sweepLoop(sections, halfProfile(TopHalf, opts), p.Closed)
	bottom = sweepLoop(sections, halfProfile(BottomHalf, opts), p.Closed)
	return top, bottom
}

// SplitHalf generates a single half; see SplitHalves.
func SplitHalf(p Path, half Half, opts Options) []mesh.Triangle {
	sections := CrossSections(p)
	if sections == nil {
		return nil
	}
	return sweepLoop(sections, halfProfile(half, opts), p.Closed)
}

// SeamWidths reports the tongue width and the groove opening width produced
// by opts. With zero clearance the two are identical.
func SeamWidths(opts Options) (tongue, groove float64) {
	return opts.TongueWidth, opts.TongueWidth + 2*opts.Clearance
}

// halfProfile builds the closed counter-clockwise cross-section outline of
// one half: a semicircular annulus whose two seam lips carry either a tongue
// rib or a groove cut centered on the seam radius midpoint.
//
// Top half, +u seam (the -u seam mirrors it):
//
//	v=0   ri ----+      +---- ro
//	             |      |
//	v=-d         +------+        tongue rib below the seam plane
//
// The bottom half walks the same rectangle in the opposite material sense,
// so the identical coordinates (plus clearance) cut a groove instead.
func halfProfile(half Half, opts Options) profile {
	ro := opts.OuterRadius
	ri := opts.InnerRadius
	if ri <= 0 || ri >= ro {
		// A split rod still needs an interior channel for the seam to
		// protect; default to half the outer radius.
		ri = ro * 0.5
	}
	rm := (ro + ri) / 2

	segs := opts.Segments
	if segs < 2 {
		segs = 2
	}

	if half == TopHalf {
		hw, d := opts.TongueWidth/2, opts.TongueDepth
		pr := arcProfile(ro, 0, math.Pi, segs) // (ro,0) over the top to (-ro,0)
		pr = append(pr,
			mgl64.Vec2{-(rm + hw), 0},
			mgl64.Vec2{-(rm + hw), -d},
			mgl64.Vec2{-(rm - hw), -d},
			mgl64.Vec2{-(rm - hw), 0},
		)
		pr = append(pr, arcProfile(ri, math.Pi, 0, segs)...) // (-ri,0) back to (ri,0)
		pr = append(pr,
			mgl64.Vec2{rm - hw, 0},
			mgl64.Vec2{rm - hw, -d},
			mgl64.Vec2{rm + hw, -d},
			mgl64.Vec2{rm + hw, 0},
		)
		return pr
	}

	hw := opts.TongueWidth/2 + opts.Clearance
	d := opts.TongueDepth + opts.Clearance
	pr := arcProfile(ro, math.Pi, 2*math.Pi, segs) // (-ro,0) under the bottom to (ro,0)
	pr = append(pr,
		mgl64.Vec2{rm + hw, 0},
		mgl64.Vec2{rm + hw, -d},
		mgl64.Vec2{rm - hw, -d},
		mgl64.Vec2{rm - hw, 0},
	)
	pr = append(pr, arcProfile(ri, 2*math.Pi, math.Pi, segs)...) // (ri,0) back to (-ri,0)
	pr = append(pr,
		mgl64.Vec2{-(rm - hw), 0},
		mgl64.Vec2{-(rm - hw), -d},
		mgl64.Vec2{-(rm + hw), -d},
		mgl64.Vec2{-(rm + hw), 0},
	)
	return pr
}
