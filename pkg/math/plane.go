package math

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// TriangleNormal returns the unit normal of triangle (a, b, c) following its
// counter-clockwise winding. Degenerate triangles return the zero vector.
func TriangleNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// TriangleArea returns the area of triangle (a, b, c).
func TriangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// Plane is the set of points p with Normal·p = D.
type Plane struct {
	Normal r3.Vec
	D      float64
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p r3.Vec) float64 {
	return r3.Dot(pl.Normal, p) - pl.D
}

// FitPlane fits a plane through points using Newell's method, which is
// robust for nearly collinear polygons. ok is false when the points do not
// span a plane.
func FitPlane(points []r3.Vec) (Plane, bool) {
	if len(points) < 3 {
		return Plane{}, false
	}
	var n r3.Vec
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	l := r3.Norm(n)
	if l == 0 {
		return Plane{}, false
	}
	n = r3.Scale(1/l, n)
	return Plane{Normal: n, D: r3.Dot(n, Centroid(points))}, true
}

// Coplanar reports whether every point lies within tol of pl.
func Coplanar(pl Plane, points []r3.Vec, tol float64) bool {
	for _, p := range points {
		if gomath.Abs(pl.Distance(p)) > tol {
			return false
		}
	}
	return true
}
