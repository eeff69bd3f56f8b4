package trace

import (
	"image"
	"testing"

	"github.com/eyeoverthink/SignMaker3D-sub002/relief"
	"github.com/go-gl/mathgl/mgl64"
)

func fillRect(b *Bitmap, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, true)
		}
	}
}

func adjacent(a, b image.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx+dy) > 0
}

func TestThreshold(t *testing.T) {
	m := relief.NewMap(4, 3, 40, 30, 1)
	m.Set(1, 1, 2)
	m.Set(2, 1, 0.4)
	m.Set(3, 2, 0.5)

	b := Threshold(m, 0.5)
	if got := b.Count(); got != 2 {
		t.Errorf("foreground count %v, want 2", got)
	}
	if !b.At(1, 1) || !b.At(3, 2) {
		t.Error("samples at or above threshold must be foreground")
	}
	if b.At(2, 1) {
		t.Error("sample below threshold must be background")
	}
}

func TestContoursSquare(t *testing.T) {
	b := NewBitmap(8, 8)
	fillRect(b, 2, 2, 6, 6)

	contours := Contours(b, 3)
	if len(contours) != 1 {
		t.Fatalf("%v contours, want 1", len(contours))
	}
	c := contours[0]
	if len(c) != 12 {
		t.Errorf("contour length %v, want the 12 perimeter pixels", len(c))
	}
	for i, p := range c {
		if !b.isBoundary(p.X, p.Y) {
			t.Errorf("point %v at %v is not a boundary pixel", i, p)
		}
		if i > 0 && !adjacent(c[i-1], p) {
			t.Errorf("points %v and %v are not 8-adjacent", c[i-1], p)
		}
	}
	if !adjacent(c[len(c)-1], c[0]) {
		t.Errorf("contour does not close: %v to %v", c[len(c)-1], c[0])
	}
}

func TestContoursMinLen(t *testing.T) {
	b := NewBitmap(8, 8)
	fillRect(b, 2, 2, 6, 6)
	if contours := Contours(b, 20); len(contours) != 0 {
		t.Errorf("%v contours survived minLen 20, want 0", len(contours))
	}
}

func TestContoursTwoRegions(t *testing.T) {
	b := NewBitmap(16, 8)
	fillRect(b, 1, 1, 5, 5)
	fillRect(b, 9, 2, 14, 6)
	if contours := Contours(b, 3); len(contours) != 2 {
		t.Errorf("%v contours, want 2", len(contours))
	}
}

func TestContoursIsolatedPixel(t *testing.T) {
	b := NewBitmap(5, 5)
	b.Set(2, 2, true)
	contours := Contours(b, 1)
	if len(contours) != 1 || len(contours[0]) != 1 {
		t.Fatalf("got %v, want one single-pixel contour", contours)
	}
}

func TestContourPoints(t *testing.T) {
	c := Contour{{2, 3}, {3, 3}}
	pts := c.Points()
	want := []mgl64.Vec2{{2, 3}, {3, 3}}
	if len(pts) != len(want) {
		t.Fatalf("%v points, want %v", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %v got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestSimplifyCollinear(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {1, 0.05}, {2, 0}, {3, 0.02}, {4, 0}}
	got := Simplify(pts, 0.1)
	if len(got) != 2 {
		t.Fatalf("%v points, want 2 (endpoints only), got %v", len(got), got)
	}
	if got[0] != pts[0] || got[1] != pts[len(pts)-1] {
		t.Errorf("endpoints not preserved: %v", got)
	}
}

func TestSimplifyKeepsCorner(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {5, 0}, {10, 0}, {10, 5}, {10, 10}}
	got := Simplify(pts, 0.5)
	if len(got) != 3 {
		t.Fatalf("%v points, want 3, got %v", len(got), got)
	}
	if got[1] != (mgl64.Vec2{10, 0}) {
		t.Errorf("corner got %v, want (10, 0)", got[1])
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {1, 0.3}, {2, -0.2}, {3, 1.5}, {4, 1.4}, {5, 0}}
	once := Simplify(pts, 0.4)
	twice := Simplify(once, 0.4)
	if len(once) != len(twice) {
		t.Fatalf("simplify not idempotent: %v then %v points", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %v changed from %v to %v", i, once[i], twice[i])
		}
	}
}

func TestSimplifyShortInput(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {1, 1}}
	got := Simplify(pts, 10)
	if len(got) != 2 {
		t.Fatalf("%v points, want 2", len(got))
	}
}
