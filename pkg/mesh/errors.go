package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalidTopology is returned when the input cannot form a triangle
// topology. It is fatal for the whole build: no partial snapshot is returned.
var ErrInvalidTopology = errors.New("invalid topology")

// TopologyError describes which face or vertex made a build fail.
// It unwraps to ErrInvalidTopology.
type TopologyError struct {
	Face   int // Face index in the input, -1 if not face related
	Vertex int // Vertex index in the input, -1 if not vertex related
	Reason string
}

func (e *TopologyError) Error() string {
	switch {
	case e.Face >= 0 && e.Vertex >= 0:
		return fmt.Sprintf("%v: face %d, vertex %d: %s", ErrInvalidTopology, e.Face, e.Vertex, e.Reason)
	case e.Face >= 0:
		return fmt.Sprintf("%v: face %d: %s", ErrInvalidTopology, e.Face, e.Reason)
	case e.Vertex >= 0:
		return fmt.Sprintf("%v: vertex %d: %s", ErrInvalidTopology, e.Vertex, e.Reason)
	default:
		return fmt.Sprintf("%v: %s", ErrInvalidTopology, e.Reason)
	}
}

func (e *TopologyError) Unwrap() error {
	return ErrInvalidTopology
}

func faceError(face int, format string, args ...any) error {
	return &TopologyError{Face: face, Vertex: -1, Reason: fmt.Sprintf(format, args...)}
}

func vertexError(vertex int, format string, args ...any) error {
	return &TopologyError{Face: -1, Vertex: vertex, Reason: fmt.Sprintf(format, args...)}
}
