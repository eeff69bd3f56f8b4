package tube

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func circlePath(points int, radius float64) Path {
	pts := make([]mgl64.Vec2, points+1)
	for i := 0; i <= points; i++ {
		a := 2 * math.Pi * float64(i) / float64(points)
		pts[i] = mgl64.Vec2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	// First and last coincide, so NewPath closes the path.
	return NewPath(pts)
}

func linePath(points int, step float64) Path {
	pts := make([]mgl64.Vec2, points)
	for i := range pts {
		pts[i] = mgl64.Vec2{float64(i) * step, 0}
	}
	return NewPath(pts)
}

func TestNewPath(t *testing.T) {
	tests := []struct {
		name       string
		points     []mgl64.Vec2
		wantClosed bool
		wantLen    int
	}{
		{
			name:    "empty",
			wantLen: 0,
		},
		{
			name:    "open segment",
			points:  []mgl64.Vec2{{0, 0}, {10, 0}},
			wantLen: 2,
		},
		{
			name:       "exactly closed drops duplicate",
			points:     []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
			wantClosed: true,
			wantLen:    3,
		},
		{
			name:       "closed within tolerance",
			points:     []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0.5, 0.5}},
			wantClosed: true,
			wantLen:    3,
		},
		{
			name:    "open beyond tolerance",
			points:  []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {2, 2}},
			wantLen: 4,
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			p := NewPath(tt.points)
			if p.Closed != tt.wantClosed {
				t.Errorf("Closed got %v, want %v", p.Closed, tt.wantClosed)
			}
			if len(p.Points) != tt.wantLen {
				t.Errorf("point count got %v, want %v", len(p.Points), tt.wantLen)
			}
		})
	}
}

func TestCrossSectionsCount(t *testing.T) {
	// Closed paths generate one cross-section per point (wrap-around);
	// open paths one per point, capped separately.
	closed := circlePath(64, 100)
	if got := len(CrossSections(closed)); got != 64 {
		t.Errorf("closed sections got %v, want 64", got)
	}

	open := linePath(5, 10)
	if got := len(CrossSections(open)); got != 5 {
		t.Errorf("open sections got %v, want 5", got)
	}

	if got := CrossSections(NewPath([]mgl64.Vec2{{1, 2}})); got != nil {
		t.Errorf("degenerate path sections got %v, want nil", got)
	}
}

func TestCrossSectionFrames(t *testing.T) {
	p := linePath(3, 10)
	for i, cs := range CrossSections(p) {
		if !vecEq(cs.Tangent, mgl64.Vec3{1, 0, 0}, 1e-12) {
			t.Errorf("section %v tangent got %v, want +x", i, cs.Tangent)
		}
		if !vecEq(cs.Normal, mgl64.Vec3{0, 0, 1}, 1e-12) {
			t.Errorf("section %v normal got %v, want +z", i, cs.Normal)
		}
		if math.Abs(cs.Tangent.Dot(cs.Normal)) > 1e-12 {
			t.Errorf("section %v frame not orthogonal", i)
		}
	}
}

func TestTangentSmoothing(t *testing.T) {
	// A right-angle corner gets the averaged 45-degree tangent.
	p := NewPath([]mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}})
	cs := CrossSections(p)
	want := mgl64.Vec3{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}
	if !vecEq(cs[1].Tangent, want, 1e-12) {
		t.Errorf("corner tangent got %v, want %v", cs[1].Tangent, want)
	}
	// Endpoints are one-sided.
	if !vecEq(cs[0].Tangent, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("start tangent got %v, want +x", cs[0].Tangent)
	}
	if !vecEq(cs[2].Tangent, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("end tangent got %v, want +y", cs[2].Tangent)
	}
}

func TestTangentDegenerateDefaults(t *testing.T) {
	// Duplicate points have no direction; the tangent falls back to +X.
	p := Path{Points: []mgl64.Vec2{{5, 5}, {5, 5}}}
	cs := CrossSections(p)
	for i := range cs {
		if !vecEq(cs[i].Tangent, mgl64.Vec3{1, 0, 0}, 0) {
			t.Errorf("section %v tangent got %v, want +x fallback", i, cs[i].Tangent)
		}
	}
}

func TestParallelTransportNoFlip(t *testing.T) {
	// Sharp direction changes must not flip the carried normal.
	p := NewPath([]mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 1.5}})
	sections := CrossSections(p)
	for i := 1; i < len(sections); i++ {
		if sections[i].Normal.Dot(sections[i-1].Normal) <= 0 {
			t.Errorf("normal flipped between sections %v and %v", i-1, i)
		}
	}
}

func vecEq(a, b mgl64.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
