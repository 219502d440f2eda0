package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexID indexes a vertex within one Topology.
type VertexID int32

// EdgeID indexes an edge within one Topology.
type EdgeID int32

// FaceID indexes a face within one Topology.
type FaceID int32

// Vertex is a position owned by a Topology.
type Vertex struct {
	Pos r3.Vec
}

// Edge is an unordered vertex pair with its incident faces in the order the
// faces were added. V[0] < V[1] always holds.
type Edge struct {
	V     [2]VertexID
	Faces []FaceID
}

// IsBoundary reports whether the edge has exactly one incident face.
func (e *Edge) IsBoundary() bool { return len(e.Faces) == 1 }

// IsInterior reports whether the edge has exactly two incident faces.
func (e *Edge) IsInterior() bool { return len(e.Faces) == 2 }

// IsNonManifold reports whether more than two faces share the edge.
func (e *Edge) IsNonManifold() bool { return len(e.Faces) > 2 }

// Face is an ordered triangle. The order defines the winding.
type Face struct {
	V [3]VertexID
}

type edgeKey struct {
	a, b VertexID
}

func makeEdgeKey(a, b VertexID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Topology is an immutable triangle mesh snapshot with derived edges and
// adjacency. All slices returned by its methods are shared with the
// snapshot and must not be modified.
type Topology struct {
	vertices  []Vertex
	edges     []Edge
	faces     []Face
	faceEdges [][3]EdgeID // side i runs from V[i] to V[(i+1)%3]

	// vertex -> incident edges, compressed: edges of v are
	// vertEdges[vertEdgeStart[v]:vertEdgeStart[v+1]]
	vertEdgeStart []int32
	vertEdges     []EdgeID

	edgeIndex   map[edgeKey]EdgeID
	nonManifold []EdgeID
}

// NumVertices returns the vertex count.
func (t *Topology) NumVertices() int { return len(t.vertices) }

// NumEdges returns the edge count.
func (t *Topology) NumEdges() int { return len(t.edges) }

// NumFaces returns the triangle count.
func (t *Topology) NumFaces() int { return len(t.faces) }

// Vertex returns the vertex with the given id.
func (t *Topology) Vertex(id VertexID) Vertex { return t.vertices[id] }

// Position returns the position of vertex id.
func (t *Topology) Position(id VertexID) r3.Vec { return t.vertices[id].Pos }

// Edge returns the edge with the given id.
func (t *Topology) Edge(id EdgeID) *Edge { return &t.edges[id] }

// Face returns the face with the given id.
func (t *Topology) Face(id FaceID) Face { return t.faces[id] }

// FaceVertices returns the ordered vertices of face f.
func (t *Topology) FaceVertices(f FaceID) [3]VertexID { return t.faces[f].V }

// FaceEdges returns the edges of face f: V0-V1, V1-V2, V2-V0.
func (t *Topology) FaceEdges(f FaceID) [3]EdgeID { return t.faceEdges[f] }

// EdgeVertices returns the endpoints of edge e, lowest id first.
func (t *Topology) EdgeVertices(e EdgeID) (VertexID, VertexID) {
	v := t.edges[e].V
	return v[0], v[1]
}

// EdgeFaces returns the faces incident to edge e.
func (t *Topology) EdgeFaces(e EdgeID) []FaceID { return t.edges[e].Faces }

// VertexEdges returns the edges incident to vertex v.
func (t *Topology) VertexEdges(v VertexID) []EdgeID {
	return t.vertEdges[t.vertEdgeStart[v]:t.vertEdgeStart[v+1]]
}

// Valence returns the number of edges incident to v.
func (t *Topology) Valence(v VertexID) int {
	return int(t.vertEdgeStart[v+1] - t.vertEdgeStart[v])
}

// FindEdge returns the edge joining a and b, if any.
func (t *Topology) FindEdge(a, b VertexID) (EdgeID, bool) {
	id, ok := t.edgeIndex[makeEdgeKey(a, b)]
	return id, ok
}

// Other returns the endpoint of e that is not v.
func (t *Topology) Other(e EdgeID, v VertexID) VertexID {
	ev := t.edges[e].V
	if ev[0] == v {
		return ev[1]
	}
	return ev[0]
}

// Opposite returns the vertex of face f that is not an endpoint of e.
// ok is false if e is not a side of f.
func (t *Topology) Opposite(f FaceID, e EdgeID) (VertexID, bool) {
	for i, side := range t.faceEdges[f] {
		if side == e {
			return t.faces[f].V[(i+2)%3], true
		}
	}
	return 0, false
}

// IsBoundaryEdge reports whether e has exactly one incident face.
func (t *Topology) IsBoundaryEdge(e EdgeID) bool { return t.edges[e].IsBoundary() }

// IsInteriorEdge reports whether e has exactly two incident faces.
func (t *Topology) IsInteriorEdge(e EdgeID) bool { return t.edges[e].IsInterior() }

// IsNonManifoldEdge reports whether e has more than two incident faces.
func (t *Topology) IsNonManifoldEdge(e EdgeID) bool { return t.edges[e].IsNonManifold() }

// IsBoundaryVertex reports whether any edge incident to v is a boundary edge.
func (t *Topology) IsBoundaryVertex(v VertexID) bool {
	for _, e := range t.VertexEdges(v) {
		if t.edges[e].IsBoundary() {
			return true
		}
	}
	return false
}

// BoundaryNeighbors returns the far endpoints of the boundary edges at v.
func (t *Topology) BoundaryNeighbors(v VertexID) []VertexID {
	var out []VertexID
	for _, e := range t.VertexEdges(v) {
		if t.edges[e].IsBoundary() {
			out = append(out, t.Other(e, v))
		}
	}
	return out
}

// NonManifoldEdges returns the edges with more than two incident faces.
func (t *Topology) NonManifoldEdges() []EdgeID { return t.nonManifold }

// Positions returns a copy of all vertex positions in id order.
func (t *Topology) Positions() []r3.Vec {
	out := make([]r3.Vec, len(t.vertices))
	for i, v := range t.vertices {
		out[i] = v.Pos
	}
	return out
}

// Mesh exports the snapshot in exchange form.
func (t *Topology) Mesh() *Mesh {
	m := &Mesh{
		Vertices: t.Positions(),
		Faces:    make([][]int, len(t.faces)),
	}
	idx := make([]int, 3*len(t.faces))
	for i, f := range t.faces {
		tri := idx[3*i : 3*i+3 : 3*i+3]
		tri[0], tri[1], tri[2] = int(f.V[0]), int(f.V[1]), int(f.V[2])
		m.Faces[i] = tri
	}
	return m
}

// Stats summarizes a snapshot.
type Stats struct {
	Vertices         int
	Edges            int
	Faces            int
	BoundaryEdges    int
	NonManifoldEdges int
	BoundaryVertices int
	IsolatedVertices int
}

// EulerCharacteristic returns V - E + F.
func (s Stats) EulerCharacteristic() int {
	return s.Vertices - s.Edges + s.Faces
}

// IsClosed reports whether the surface has no boundary and no non-manifold edges.
func (s Stats) IsClosed() bool {
	return s.BoundaryEdges == 0 && s.NonManifoldEdges == 0
}

// Stats computes summary counts for the snapshot.
func (t *Topology) Stats() Stats {
	s := Stats{
		Vertices:         len(t.vertices),
		Edges:            len(t.edges),
		Faces:            len(t.faces),
		NonManifoldEdges: len(t.nonManifold),
	}
	for i := range t.edges {
		if t.edges[i].IsBoundary() {
			s.BoundaryEdges++
		}
	}
	for v := range t.vertices {
		id := VertexID(v)
		if t.Valence(id) == 0 {
			s.IsolatedVertices++
		} else if t.IsBoundaryVertex(id) {
			s.BoundaryVertices++
		}
	}
	return s
}
