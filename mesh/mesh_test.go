package mesh

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormal(t *testing.T) {
	tests := []struct {
		name       string
		v1, v2, v3 mgl64.Vec3
		want       mgl64.Vec3
	}{
		{
			name: "ccw in xy plane faces +z",
			v1:   mgl64.Vec3{0, 0, 0},
			v2:   mgl64.Vec3{1, 0, 0},
			v3:   mgl64.Vec3{0, 1, 0},
			want: mgl64.Vec3{0, 0, 1},
		},
		{
			name: "cw in xy plane faces -z",
			v1:   mgl64.Vec3{0, 0, 0},
			v2:   mgl64.Vec3{0, 1, 0},
			v3:   mgl64.Vec3{1, 0, 0},
			want: mgl64.Vec3{0, 0, -1},
		},
		{
			name: "degenerate collinear is zero",
			v1:   mgl64.Vec3{0, 0, 0},
			v2:   mgl64.Vec3{1, 0, 0},
			v3:   mgl64.Vec3{2, 0, 0},
			want: mgl64.Vec3{},
		},
		{
			name: "duplicate points are zero",
			v1:   mgl64.Vec3{1, 2, 3},
			v2:   mgl64.Vec3{1, 2, 3},
			v3:   mgl64.Vec3{4, 5, 6},
			want: mgl64.Vec3{},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			got := Normal(tt.v1, tt.v2, tt.v3)
			if !vecEq(got, tt.want, 1e-12) {
				t.Errorf("Normal got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTriangleUnitNormal(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 7, 2})
	if l := tri.N.Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("normal length got %v, want 1", l)
	}
}

func TestQuad(t *testing.T) {
	tris := Quad(nil,
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 1, 0})
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %v", len(tris))
	}
	for i, tri := range tris {
		if !vecEq(tri.N, mgl64.Vec3{0, 0, 1}, 1e-12) {
			t.Errorf("triangle %v normal got %v, want +z", i, tri.N)
		}
	}
}

func TestCheck(t *testing.T) {
	// A closed unit tetrahedron with outward winding pairs every edge.
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{1, 0, 0}
	c := mgl64.Vec3{0, 1, 0}
	d := mgl64.Vec3{0, 0, 1}
	closed := []Triangle{
		NewTriangle(a, c, b),
		NewTriangle(a, b, d),
		NewTriangle(b, c, d),
		NewTriangle(c, a, d),
	}
	if defects := Check(closed); len(defects) != 0 {
		t.Errorf("closed tetrahedron: got %v defects, want 0", len(defects))
	}

	open := closed[:3]
	if defects := Check(open); len(defects) == 0 {
		t.Errorf("open tetrahedron: got 0 defects, want some")
	}
}

func TestTranslate(t *testing.T) {
	tris := []Triangle{NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})}
	moved := Translate(tris, mgl64.Vec3{0, 0, 5})
	if got := moved[0].V1.Z(); got != 5 {
		t.Errorf("translated V1.Z got %v, want 5", got)
	}
	if !vecEq(moved[0].N, tris[0].N, 0) {
		t.Errorf("translation changed the normal: %v -> %v", tris[0].N, moved[0].N)
	}
	if tris[0].V1.Z() != 0 {
		t.Errorf("Translate mutated its input")
	}
}

func TestBounds(t *testing.T) {
	tris := []Triangle{
		NewTriangle(mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{3, -4, 0}, mgl64.Vec3{0, 1, 7}),
	}
	min, max := Bounds(tris)
	if !vecEq(min, mgl64.Vec3{-1, -4, 0}, 0) || !vecEq(max, mgl64.Vec3{3, 1, 7}, 0) {
		t.Errorf("Bounds got %v..%v", min, max)
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
