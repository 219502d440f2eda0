package subdiv

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// IterationReport describes one subdivision step. Input counts refer to
// the snapshot the step consumed.
type IterationReport struct {
	Iteration int

	Vertices int // Input vertices
	Edges    int // Input edges
	Faces    int // Input triangles

	OutVertices int // Vertices + Edges
	OutFaces    int // 4 * Faces

	InteriorVertices int // Even vertices from the valence rule
	BoundaryVertices int // Even vertices from the boundary rule
	HeldVertices     int // Even vertices kept in place
	BoundaryEdges    int // Odd vertices from the midpoint rule
	NonManifoldEdges int // Odd vertices from the non-manifold fallback

	Duration time.Duration
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r IterationReport) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("iteration", r.Iteration)
	enc.AddInt("vertices", r.Vertices)
	enc.AddInt("edges", r.Edges)
	enc.AddInt("faces", r.Faces)
	enc.AddInt("out_vertices", r.OutVertices)
	enc.AddInt("out_faces", r.OutFaces)
	enc.AddInt("held_vertices", r.HeldVertices)
	enc.AddInt("non_manifold_edges", r.NonManifoldEdges)
	enc.AddDuration("duration", r.Duration)
	return nil
}

// Report collects the per-iteration reports of a Subdivide call.
type Report struct {
	Iterations []IterationReport
}

// Duration returns the total time spent in subdivision steps.
func (r *Report) Duration() time.Duration {
	var d time.Duration
	for _, it := range r.Iterations {
		d += it.Duration
	}
	return d
}

// HeldVertices returns the held even vertices summed over all iterations.
func (r *Report) HeldVertices() int {
	n := 0
	for _, it := range r.Iterations {
		n += it.HeldVertices
	}
	return n
}

// NonManifoldEdges returns the non-manifold edges summed over all iterations.
func (r *Report) NonManifoldEdges() int {
	n := 0
	for _, it := range r.Iterations {
		n += it.NonManifoldEdges
	}
	return n
}

func (r IterationReport) log(l *zap.Logger) {
	if r.NonManifoldEdges > 0 {
		l.Warn("non-manifold edges placed at midpoints",
			zap.Int("iteration", r.Iteration),
			zap.Int("edges", r.NonManifoldEdges))
	}
	if r.HeldVertices > 0 {
		l.Warn("vertices held in place",
			zap.Int("iteration", r.Iteration),
			zap.Int("vertices", r.HeldVertices))
	}
	l.Debug("subdivision step", zap.Object("step", r))
}
