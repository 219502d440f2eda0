// Package subdiv implements Loop subdivision of triangle meshes.
//
// Each step reads one immutable mesh.Topology and produces the next:
//
//  1. even vertices: every input vertex gets an updated position,
//  2. odd vertices: every input edge gets a new vertex,
//  3. every input triangle is split into four.
//
// Phases 1 and 2 only read the input snapshot and run concurrently.
// Phase 3 starts after both are complete. Output vertex ids are stable:
// even vertex v keeps id v and the odd vertex of edge e gets id V+e.
package subdiv

import (
	"errors"
	"fmt"
	gomath "math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/mesh"
)

// Subdivision errors.
var (
	ErrInvalidIterations = errors.New("invalid iteration count")
	ErrMeshTooLarge      = errors.New("subdivided mesh exceeds index range")
)

// Step applies one Loop subdivision step to t. The input is not modified
// and may be released by the caller once Step returns.
func Step(t *mesh.Topology, opts ...Option) (*mesh.Topology, IterationReport, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return step(t, &o)
}

func step(t *mesh.Topology, o *options) (*mesh.Topology, IterationReport, error) {
	start := time.Now()
	nv, ne, nf := t.NumVertices(), t.NumEdges(), t.NumFaces()
	if nv+ne > gomath.MaxInt32 || 4*nf > gomath.MaxInt32 {
		return nil, IterationReport{}, fmt.Errorf("%w: %d vertices, %d faces", ErrMeshTooLarge, nv+ne, 4*nf)
	}

	positions := make([]r3.Vec, nv+ne)
	evenRules := make([]EvenRule, nv)
	oddRules := make([]OddRule, ne)

	parallel(o.workers, o.minChunk,
		task{n: nv, fn: func(lo, hi int) {
			for v := lo; v < hi; v++ {
				positions[v], evenRules[v] = EvenPosition(t, mesh.VertexID(v))
			}
		}},
		task{n: ne, fn: func(lo, hi int) {
			for e := lo; e < hi; e++ {
				positions[nv+e], oddRules[e] = OddPosition(t, mesh.EdgeID(e))
			}
		}},
	)

	faces := make([]mesh.Face, 4*nf)
	parallel(o.workers, o.minChunk, task{n: nf, fn: func(lo, hi int) {
		for f := lo; f < hi; f++ {
			splitFace(t, mesh.FaceID(f), mesh.VertexID(nv), faces[4*f:4*f+4])
		}
	}})

	next, err := mesh.FromTriangles(positions, faces)
	if err != nil {
		return nil, IterationReport{}, fmt.Errorf("rebuilding topology: %w", err)
	}

	r := IterationReport{
		Vertices:    nv,
		Edges:       ne,
		Faces:       nf,
		OutVertices: next.NumVertices(),
		OutFaces:    next.NumFaces(),
	}
	for _, rule := range evenRules {
		switch rule {
		case EvenInterior:
			r.InteriorVertices++
		case EvenBoundary:
			r.BoundaryVertices++
		case EvenHeld:
			r.HeldVertices++
		}
	}
	for _, rule := range oddRules {
		switch rule {
		case OddBoundary:
			r.BoundaryEdges++
		case OddNonManifold:
			r.NonManifoldEdges++
		}
	}
	r.Duration = time.Since(start)
	return next, r, nil
}

// splitFace writes the four children of face f into out, keeping the
// parent's winding: three corner triangles, then the center one.
func splitFace(t *mesh.Topology, f mesh.FaceID, oddBase mesh.VertexID, out []mesh.Face) {
	v := t.FaceVertices(f)
	fe := t.FaceEdges(f)
	a, b, c := v[0], v[1], v[2]
	ab := oddBase + mesh.VertexID(fe[0])
	bc := oddBase + mesh.VertexID(fe[1])
	ca := oddBase + mesh.VertexID(fe[2])

	out[0] = mesh.Face{V: [3]mesh.VertexID{a, ab, ca}}
	out[1] = mesh.Face{V: [3]mesh.VertexID{ab, b, bc}}
	out[2] = mesh.Face{V: [3]mesh.VertexID{bc, c, ca}}
	out[3] = mesh.Face{V: [3]mesh.VertexID{ab, bc, ca}}
}

// SubdivideTopology applies exactly iterations steps to t. Zero iterations
// returns t itself. Only the current and the next snapshot are kept alive.
func SubdivideTopology(t *mesh.Topology, iterations int, opts ...Option) (*mesh.Topology, *Report, error) {
	if iterations < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	report := &Report{Iterations: make([]IterationReport, 0, iterations)}
	for i := 0; i < iterations; i++ {
		next, r, err := step(t, &o)
		if err != nil {
			return nil, nil, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		r.Iteration = i + 1
		r.log(o.logger)
		report.Iterations = append(report.Iterations, r)
		t = next
	}
	return t, report, nil
}

// Subdivide triangulates m and applies exactly iterations Loop steps.
// The result is always a triangle mesh; with zero iterations it is the
// triangulated input with positions unchanged. m is not modified.
func Subdivide(m *mesh.Mesh, iterations int, opts ...Option) (*mesh.Mesh, *Report, error) {
	if iterations < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	t, err := mesh.Build(m)
	if err != nil {
		return nil, nil, fmt.Errorf("building topology: %w", err)
	}
	t, report, err := SubdivideTopology(t, iterations, opts...)
	if err != nil {
		return nil, nil, err
	}
	return t.Mesh(), report, nil
}
