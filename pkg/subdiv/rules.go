package subdiv

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/math"
	"github.com/Faultbox/loopsub/pkg/mesh"
)

// Boundary and edge weights of the Loop scheme.
const (
	boundarySelfWeight     = 0.75
	boundaryNeighborWeight = 0.125
	edgeEndpointWeight     = 0.375
	edgeOppositeWeight     = 0.125
)

// EvenRule tells which rule produced an even (updated) vertex.
type EvenRule uint8

const (
	EvenInterior EvenRule = iota // Valence weighted 1-ring average
	EvenBoundary                 // 3/4 self + 1/8 each boundary neighbor
	EvenHeld                     // Position kept as is
)

// String returns a human-readable rule name.
func (r EvenRule) String() string {
	switch r {
	case EvenInterior:
		return "Interior"
	case EvenBoundary:
		return "Boundary"
	case EvenHeld:
		return "Held"
	default:
		return "Unknown"
	}
}

// OddRule tells which rule produced an odd (edge) vertex.
type OddRule uint8

const (
	OddInterior    OddRule = iota // 3/8 endpoints + 1/8 opposite vertices
	OddBoundary                   // Midpoint
	OddNonManifold                // Midpoint, edge shared by more than two faces
)

// String returns a human-readable rule name.
func (r OddRule) String() string {
	switch r {
	case OddInterior:
		return "Interior"
	case OddBoundary:
		return "Boundary"
	case OddNonManifold:
		return "NonManifold"
	default:
		return "Unknown"
	}
}

// Beta returns Loop's original vertex weight for valence n:
//
//	β(n) = (1/n) · (5/8 − (3/8 + 1/4·cos(2π/n))²)
//
// β(6) = 1/16. n must be positive.
func Beta(n int) float64 {
	fn := float64(n)
	c := 3.0/8.0 + 0.25*gomath.Cos(2*gomath.Pi/fn)
	return (5.0/8.0 - c*c) / fn
}

// EvenPosition returns the updated position of vertex v.
//
// A vertex touching a boundary edge is a boundary vertex. With exactly two
// boundary edges it moves to 3/4·P + 1/8·(N1+N2); with any other count
// (corners, bow-ties) it is held in place. Every other vertex is interior
// and moves to (1 − nβ)·P + β·ΣN over all n incident edges, non-manifold
// edges included. Isolated vertices are held.
func EvenPosition(t *mesh.Topology, v mesh.VertexID) (r3.Vec, EvenRule) {
	p := t.Position(v)
	edges := t.VertexEdges(v)
	if len(edges) == 0 {
		return p, EvenHeld
	}

	var neighbors [2]mesh.VertexID
	boundary := 0
	for _, e := range edges {
		if !t.IsBoundaryEdge(e) {
			continue
		}
		if boundary < 2 {
			neighbors[boundary] = t.Other(e, v)
		}
		boundary++
	}
	if boundary > 0 {
		if boundary != 2 {
			return p, EvenHeld
		}
		sum := r3.Add(t.Position(neighbors[0]), t.Position(neighbors[1]))
		return r3.Add(r3.Scale(boundarySelfWeight, p), r3.Scale(boundaryNeighborWeight, sum)), EvenBoundary
	}

	n := len(edges)
	beta := Beta(n)
	var sum r3.Vec
	for _, e := range edges {
		sum = r3.Add(sum, t.Position(t.Other(e, v)))
	}
	return r3.Add(r3.Scale(1-float64(n)*beta, p), r3.Scale(beta, sum)), EvenInterior
}

// OddPosition returns the position of the vertex inserted on edge e.
//
// Interior edges use 3/8·(V1+V2) + 1/8·(O1+O2) where O1 and O2 are the
// vertices opposite e in its two faces. Boundary and non-manifold edges use
// the plain midpoint.
func OddPosition(t *mesh.Topology, e mesh.EdgeID) (r3.Vec, OddRule) {
	a, b := t.EdgeVertices(e)
	pa, pb := t.Position(a), t.Position(b)

	faces := t.EdgeFaces(e)
	switch {
	case len(faces) == 2:
		o1, ok1 := t.Opposite(faces[0], e)
		o2, ok2 := t.Opposite(faces[1], e)
		if !ok1 || !ok2 {
			// Unreachable for a snapshot produced by mesh.Build.
			return math.Midpoint(pa, pb), OddBoundary
		}
		ends := r3.Add(pa, pb)
		opp := r3.Add(t.Position(o1), t.Position(o2))
		return r3.Add(r3.Scale(edgeEndpointWeight, ends), r3.Scale(edgeOppositeWeight, opp)), OddInterior
	case len(faces) > 2:
		return math.Midpoint(pa, pb), OddNonManifold
	default:
		return math.Midpoint(pa, pb), OddBoundary
	}
}
