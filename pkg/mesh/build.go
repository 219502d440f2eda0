package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/math"
)

// Triangulate splits every polygon into a fan from its first vertex:
// (v0,v1,v2), (v0,v2,v3), ... Triangles pass through unchanged and faces
// with fewer than three indices produce nothing.
func Triangulate(faces [][]int) [][3]int {
	n := 0
	for _, f := range faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	out := make([][3]int, 0, n)
	for _, f := range faces {
		for i := 1; i+1 < len(f); i++ {
			out = append(out, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return out
}

// Build validates m, triangulates it and derives the full topology.
// The input mesh is not retained.
func Build(m *Mesh) (*Topology, error) {
	verts := make([]Vertex, len(m.Vertices))
	for i, p := range m.Vertices {
		if !math.IsFinite(p) {
			return nil, vertexError(i, "non-finite position %v", p)
		}
		verts[i] = Vertex{Pos: p}
	}

	var faces []Face
	var scratch []int
	for fi, f := range m.Faces {
		poly, err := cleanPolygon(fi, f, len(verts), scratch[:0])
		if err != nil {
			return nil, err
		}
		scratch = poly
		for i := 1; i+1 < len(poly); i++ {
			faces = append(faces, Face{V: [3]VertexID{
				VertexID(poly[0]), VertexID(poly[i]), VertexID(poly[i+1]),
			}})
		}
	}

	return build(verts, faces), nil
}

// FromTriangles builds a topology from positions and triangles. Both slices
// are owned by the returned snapshot; callers must not modify them afterwards.
func FromTriangles(positions []r3.Vec, tris []Face) (*Topology, error) {
	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		if !math.IsFinite(p) {
			return nil, vertexError(i, "non-finite position %v", p)
		}
		verts[i] = Vertex{Pos: p}
	}
	for fi, f := range tris {
		for _, v := range f.V {
			if v < 0 || int(v) >= len(verts) {
				return nil, faceError(fi, "vertex index %d out of range [0,%d)", v, len(verts))
			}
		}
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[2] == f.V[0] {
			return nil, faceError(fi, "fewer than 3 distinct vertices %v", f.V)
		}
	}
	return build(verts, tris), nil
}

// cleanPolygon range checks face fi, drops consecutive repeats of the same
// index and rejects faces that do not reduce to a simple polygon.
func cleanPolygon(fi int, face []int, numVerts int, dst []int) ([]int, error) {
	for _, v := range face {
		if v < 0 || v >= numVerts {
			return nil, faceError(fi, "vertex index %d out of range [0,%d)", v, numVerts)
		}
		if len(dst) > 0 && dst[len(dst)-1] == v {
			continue
		}
		dst = append(dst, v)
	}
	for len(dst) > 1 && dst[0] == dst[len(dst)-1] {
		dst = dst[:len(dst)-1]
	}
	if len(dst) < 3 {
		return nil, faceError(fi, "fewer than 3 distinct vertices %v", face)
	}
	// A repeat that is not consecutive would make the fan emit degenerate
	// or folded triangles.
	for i := 0; i < len(dst); i++ {
		for j := i + 1; j < len(dst); j++ {
			if dst[i] == dst[j] {
				return nil, faceError(fi, "vertex %d repeated in %v", dst[i], face)
			}
		}
	}
	return dst, nil
}

// build derives edges and adjacency. verts and faces must already be valid.
func build(verts []Vertex, faces []Face) *Topology {
	t := &Topology{
		vertices:  verts,
		faces:     faces,
		faceEdges: make([][3]EdgeID, len(faces)),
		edgeIndex: make(map[edgeKey]EdgeID, len(faces)*3/2+1),
	}

	// Pass 1: assign edge ids in order of first appearance and count
	// incident faces per edge.
	var faceCount []int32
	for fi, f := range faces {
		for i := 0; i < 3; i++ {
			key := makeEdgeKey(f.V[i], f.V[(i+1)%3])
			id, ok := t.edgeIndex[key]
			if !ok {
				id = EdgeID(len(t.edges))
				t.edgeIndex[key] = id
				t.edges = append(t.edges, Edge{V: [2]VertexID{key.a, key.b}})
				faceCount = append(faceCount, 0)
			}
			t.faceEdges[fi][i] = id
			faceCount[id]++
		}
	}

	// Pass 2: carve each edge's face list out of one shared arena.
	arena := make([]FaceID, 3*len(faces))
	off := int32(0)
	for id := range t.edges {
		n := faceCount[id]
		t.edges[id].Faces = arena[off : off : off+n]
		off += n
	}
	for fi := range faces {
		for _, id := range t.faceEdges[fi] {
			t.edges[id].Faces = append(t.edges[id].Faces, FaceID(fi))
		}
	}
	for id := range t.edges {
		if t.edges[id].IsNonManifold() {
			t.nonManifold = append(t.nonManifold, EdgeID(id))
		}
	}

	// Vertex -> edge index.
	t.vertEdgeStart = make([]int32, len(verts)+1)
	for _, e := range t.edges {
		t.vertEdgeStart[e.V[0]+1]++
		t.vertEdgeStart[e.V[1]+1]++
	}
	for v := 1; v < len(t.vertEdgeStart); v++ {
		t.vertEdgeStart[v] += t.vertEdgeStart[v-1]
	}
	t.vertEdges = make([]EdgeID, 2*len(t.edges))
	fill := make([]int32, len(verts))
	copy(fill, t.vertEdgeStart[:len(verts)])
	for id, e := range t.edges {
		for _, v := range e.V {
			t.vertEdges[fill[v]] = EdgeID(id)
			fill[v]++
		}
	}

	return t
}
