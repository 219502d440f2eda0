package math

import (
	gomath "math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMidpoint(t *testing.T) {
	got := Midpoint(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 3, Y: 4, Z: -3})
	want := r3.Vec{X: 2, Y: 3, Z: 0}
	if got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 4, Y: 8, Z: 2}
	got := Lerp(a, b, 0.25)
	want := r3.Vec{X: 1, Y: 2, Z: 0.5}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); got != (r3.Vec{}) {
		t.Errorf("Centroid(nil) = %v, want origin", got)
	}
	pts := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}, {X: 2, Y: 2, Z: 0}}
	got := Centroid(pts)
	want := r3.Vec{X: 1, Y: 1, Z: 0}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v    r3.Vec
		want bool
	}{
		{r3.Vec{X: 1, Y: 2, Z: 3}, true},
		{r3.Vec{X: gomath.NaN()}, false},
		{r3.Vec{Y: gomath.Inf(1)}, false},
		{r3.Vec{Z: gomath.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.v); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.Empty() {
		t.Fatal("EmptyBounds() should be empty")
	}
	if b.Size() != (r3.Vec{}) {
		t.Errorf("empty Size() = %v, want zero", b.Size())
	}

	b = BoundsOf([]r3.Vec{{X: -1, Y: 0, Z: 2}, {X: 3, Y: -2, Z: 4}})
	if b.Empty() {
		t.Fatal("bounds of two points should not be empty")
	}
	if b.Min != (r3.Vec{X: -1, Y: -2, Z: 2}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (r3.Vec{X: 3, Y: 0, Z: 4}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Center() != (r3.Vec{X: 1, Y: -1, Z: 3}) {
		t.Errorf("Center = %v", b.Center())
	}
	if d := b.Diagonal(); gomath.Abs(d-gomath.Sqrt(16+4+4)) > 1e-12 {
		t.Errorf("Diagonal = %v", d)
	}
	if !b.Contains(r3.Vec{X: 0, Y: -1, Z: 3}, 0) {
		t.Error("expected center-ish point inside")
	}
	if b.Contains(r3.Vec{X: 5}, 0.1) {
		t.Error("expected far point outside")
	}
}

func TestTriangleNormalAndArea(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 1, Y: 0, Z: 0}
	c := r3.Vec{X: 0, Y: 1, Z: 0}

	if n := TriangleNormal(a, b, c); n != (r3.Vec{X: 0, Y: 0, Z: 1}) {
		t.Errorf("TriangleNormal() = %v, want +Z", n)
	}
	if n := TriangleNormal(a, c, b); n != (r3.Vec{X: 0, Y: 0, Z: -1}) {
		t.Errorf("reversed TriangleNormal() = %v, want -Z", n)
	}
	if n := TriangleNormal(a, b, b); n != (r3.Vec{}) {
		t.Errorf("degenerate TriangleNormal() = %v, want zero", n)
	}
	if area := TriangleArea(a, b, c); area != 0.5 {
		t.Errorf("TriangleArea() = %v, want 0.5", area)
	}
}

func TestFitPlane(t *testing.T) {
	pts := []r3.Vec{
		{X: 0, Y: 0, Z: 2},
		{X: 1, Y: 0, Z: 2},
		{X: 1, Y: 1, Z: 2},
		{X: 0, Y: 1, Z: 2},
	}
	pl, ok := FitPlane(pts)
	if !ok {
		t.Fatal("FitPlane failed on a square")
	}
	if !ApproxEqual(pl.Normal, r3.Vec{X: 0, Y: 0, Z: 1}, 1e-12) {
		t.Errorf("normal = %v, want +Z", pl.Normal)
	}
	if gomath.Abs(pl.D-2) > 1e-12 {
		t.Errorf("D = %v, want 2", pl.D)
	}
	if !Coplanar(pl, pts, 1e-12) {
		t.Error("square should be coplanar")
	}
	if Coplanar(pl, []r3.Vec{{X: 0, Y: 0, Z: 2.5}}, 1e-3) {
		t.Error("lifted point should not be coplanar")
	}

	if _, ok := FitPlane([]r3.Vec{{X: 0}, {X: 1}, {X: 2}}); ok {
		t.Error("collinear points should not fit a plane")
	}
}
