// Package math provides geometry helpers on top of gonum's r3 vectors.
package math

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lerp returns a + (b-a)*t.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Midpoint returns the arithmetic midpoint of a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Centroid returns the average of points. The centroid of no points is the origin.
func Centroid(points []r3.Vec) r3.Vec {
	if len(points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite(v r3.Vec) bool {
	return !gomath.IsNaN(v.X) && !gomath.IsInf(v.X, 0) &&
		!gomath.IsNaN(v.Y) && !gomath.IsInf(v.Y, 0) &&
		!gomath.IsNaN(v.Z) && !gomath.IsInf(v.Z, 0)
}

// ApproxEqual reports whether a and b are within tol of each other on every axis.
func ApproxEqual(a, b r3.Vec, tol float64) bool {
	return gomath.Abs(a.X-b.X) <= tol &&
		gomath.Abs(a.Y-b.Y) <= tol &&
		gomath.Abs(a.Z-b.Z) <= tol
}
