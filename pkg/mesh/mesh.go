// Package mesh builds immutable, fully indexed triangle topology from
// arbitrary polygon meshes.
//
// A Mesh is the exchange form handed in and out by callers: positions plus
// faces as ordered vertex index lists. Build triangulates it and derives the
// edge and adjacency tables into a Topology snapshot, which is read-only
// after construction and safe for concurrent readers.
package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a polygon mesh in exchange form.
type Mesh struct {
	Vertices []r3.Vec // Vertex positions
	Faces    [][]int  // Ordered vertex indices, at least 3 per face
}

// NumVertices returns the number of vertex positions.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// NumFaces returns the number of faces (polygons, not triangles).
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// IsTriangulated reports whether every face has exactly three vertices.
func (m *Mesh) IsTriangulated() bool {
	for _, f := range m.Faces {
		if len(f) != 3 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]r3.Vec, len(m.Vertices)),
		Faces:    make([][]int, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	for i, f := range m.Faces {
		out.Faces[i] = append([]int(nil), f...)
	}
	return out
}
