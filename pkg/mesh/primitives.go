package mesh

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Reference meshes. All closed shapes are centered on the origin with
// outward facing counter-clockwise winding.

// Triangle returns a single right triangle in the XY plane.
func Triangle() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces:    [][]int{{0, 1, 2}},
	}
}

// Quad returns a unit square in the XY plane as one quad face.
func Quad() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
}

// Cube returns the cube [-1,1]^3 as six quads. Built, it has 8 vertices,
// 18 edges and 12 triangles.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // -Z
			{4, 5, 6, 7}, // +Z
			{0, 1, 5, 4}, // -Y
			{2, 3, 7, 6}, // +Y
			{0, 4, 7, 3}, // -X
			{1, 2, 6, 5}, // +X
		},
	}
}

// Tetrahedron returns a regular tetrahedron inscribed in the cube [-1,1]^3.
func Tetrahedron() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		Faces: [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	}
}

// Octahedron returns the unit octahedron.
func Octahedron() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		Faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// Icosahedron returns a regular icosahedron with edge length 2.
func Icosahedron() *Mesh {
	phi := (1 + gomath.Sqrt(5)) / 2
	return &Mesh{
		Vertices: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		Faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}

// Grid returns a flat nx by ny grid of unit cells in the XY plane, each
// cell split along the same diagonal so interior vertices have valence 6.
func Grid(nx, ny int) *Mesh {
	if nx < 1 || ny < 1 {
		return &Mesh{}
	}
	m := &Mesh{
		Vertices: make([]r3.Vec, 0, (nx+1)*(ny+1)),
		Faces:    make([][]int, 0, 2*nx*ny),
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			m.Vertices = append(m.Vertices, r3.Vec{X: float64(i), Y: float64(j)})
		}
	}
	idx := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00, v10 := idx(i, j), idx(i+1, j)
			v01, v11 := idx(i, j+1), idx(i+1, j+1)
			m.Faces = append(m.Faces, []int{v00, v10, v11}, []int{v00, v11, v01})
		}
	}
	return m
}

// Primitive returns a reference mesh by name: triangle, quad, cube, tetra,
// octa, ico or grid (a 4x4 grid).
func Primitive(name string) (*Mesh, bool) {
	switch name {
	case "triangle":
		return Triangle(), true
	case "quad":
		return Quad(), true
	case "cube":
		return Cube(), true
	case "tetra", "tetrahedron":
		return Tetrahedron(), true
	case "octa", "octahedron":
		return Octahedron(), true
	case "ico", "icosahedron":
		return Icosahedron(), true
	case "grid":
		return Grid(4, 4), true
	default:
		return nil, false
	}
}
