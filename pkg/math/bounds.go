package math

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// EmptyBounds returns a box that contains nothing. Extending it with a
// point yields a degenerate box around that point.
func EmptyBounds() Bounds {
	inf := gomath.Inf(1)
	return Bounds{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoundsOf returns the bounding box of points.
func BoundsOf(points []r3.Vec) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Empty reports whether the box contains no points.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the box grown to include p.
func (b Bounds) Extend(p r3.Vec) Bounds {
	return Bounds{
		Min: r3.Vec{X: gomath.Min(b.Min.X, p.X), Y: gomath.Min(b.Min.Y, p.Y), Z: gomath.Min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: gomath.Max(b.Max.X, p.X), Y: gomath.Max(b.Max.Y, p.Y), Z: gomath.Max(b.Max.Z, p.Z)},
	}
}

// Size returns the box extent along each axis.
func (b Bounds) Size() r3.Vec {
	if b.Empty() {
		return r3.Vec{}
	}
	return r3.Sub(b.Max, b.Min)
}

// Center returns the center of the box.
func (b Bounds) Center() r3.Vec {
	if b.Empty() {
		return r3.Vec{}
	}
	return Midpoint(b.Min, b.Max)
}

// Diagonal returns the length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	return r3.Norm(b.Size())
}

// Contains reports whether p lies inside the box, expanded by tol.
func (b Bounds) Contains(p r3.Vec, tol float64) bool {
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol &&
		p.Z >= b.Min.Z-tol && p.Z <= b.Max.Z+tol
}
