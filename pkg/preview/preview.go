// Package preview renders wireframe images of meshes for quick inspection.
package preview

import (
	"errors"
	"fmt"
	"image"
	gomath "math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/math"
	"github.com/Faultbox/loopsub/pkg/mesh"
)

// ErrEmptyMesh is returned when there is nothing to draw.
var ErrEmptyMesh = errors.New("mesh has no faces")

// Options controls the camera and styling of a preview.
type Options struct {
	Width  int
	Height int

	Yaw   float64 // Rotation around the vertical axis, degrees
	Pitch float64 // Rotation around the horizontal axis, degrees

	Margin    float64 // Border kept free around the mesh, pixels
	LineWidth float64

	Background string // Hex colors
	Front      string
	Back       string
	Boundary   string
}

// DefaultOptions returns a three-quarter view on a dark background.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Yaw:        30,
		Pitch:      20,
		Margin:     24,
		LineWidth:  1,
		Background: "#1e1e24",
		Front:      "#e8e8e8",
		Back:       "#505060",
		Boundary:   "#ff8c2a",
	}
}

// edgeClass decides the draw pass of an edge.
type edgeClass uint8

const (
	edgeBack edgeClass = iota
	edgeFront
	edgeBoundary
)

// projection holds a mesh mapped to view space.
type projection struct {
	points []r3.Vec // view space: +X right, +Y up, +Z towards the viewer
	bounds math.Bounds
}

func project(positions []r3.Vec, yaw, pitch float64) projection {
	ry := r3.NewRotation(yaw*gomath.Pi/180, r3.Vec{Y: 1})
	rx := r3.NewRotation(pitch*gomath.Pi/180, r3.Vec{X: 1})

	center := math.BoundsOf(positions).Center()
	p := projection{points: make([]r3.Vec, len(positions)), bounds: math.EmptyBounds()}
	for i, pos := range positions {
		v := rx.Rotate(ry.Rotate(r3.Sub(pos, center)))
		p.points[i] = v
		p.bounds = p.bounds.Extend(v)
	}
	return p
}

// classify sorts every edge into its draw pass. An edge is drawn as front
// when at least one incident face points towards the viewer.
func classify(t *mesh.Topology, view []r3.Vec) []edgeClass {
	facing := make([]bool, t.NumFaces())
	for f := range facing {
		v := t.FaceVertices(mesh.FaceID(f))
		n := r3.Cross(r3.Sub(view[v[1]], view[v[0]]), r3.Sub(view[v[2]], view[v[0]]))
		facing[f] = n.Z >= 0
	}

	classes := make([]edgeClass, t.NumEdges())
	for e := range classes {
		id := mesh.EdgeID(e)
		if !t.IsInteriorEdge(id) {
			classes[e] = edgeBoundary
			continue
		}
		classes[e] = edgeBack
		for _, f := range t.EdgeFaces(id) {
			if facing[f] {
				classes[e] = edgeFront
				break
			}
		}
	}
	return classes
}

// Render draws m as a wireframe. Boundary and non-manifold edges use the
// boundary color, edges hidden behind the surface use the back color.
func Render(m *mesh.Mesh, opts Options) (image.Image, error) {
	dc, err := draw(m, opts)
	if err != nil {
		return nil, err
	}
	img := dc.Image()
	return img, dc.Close()
}

// SavePNG renders m and writes the image to path.
func SavePNG(path string, m *mesh.Mesh, opts Options) error {
	dc, err := draw(m, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(path)
}

func draw(m *mesh.Mesh, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}
	t, err := mesh.Build(m)
	if err != nil {
		return nil, err
	}
	if t.NumFaces() == 0 {
		return nil, ErrEmptyMesh
	}

	proj := project(t.Positions(), opts.Yaw, opts.Pitch)
	classes := classify(t, proj.points)

	// Fit the projected XY extent into the canvas.
	size := proj.bounds.Size()
	availW := float64(opts.Width) - 2*opts.Margin
	availH := float64(opts.Height) - 2*opts.Margin
	scale := 1.0
	if size.X > 0 || size.Y > 0 {
		scale = gomath.Min(availW/gomath.Max(size.X, 1e-12), availH/gomath.Max(size.Y, 1e-12))
	}
	mid := proj.bounds.Center()
	cx, cy := float64(opts.Width)/2, float64(opts.Height)/2
	toScreen := func(v r3.Vec) (float64, float64) {
		return cx + (v.X-mid.X)*scale, cy - (v.Y-mid.Y)*scale
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(opts.Background))
	dc.SetLineWidth(opts.LineWidth)

	passes := []struct {
		class edgeClass
		color string
	}{
		{edgeBack, opts.Back},
		{edgeFront, opts.Front},
		{edgeBoundary, opts.Boundary},
	}
	for _, pass := range passes {
		n := 0
		for e, c := range classes {
			if c != pass.class {
				continue
			}
			a, b := t.EdgeVertices(mesh.EdgeID(e))
			x0, y0 := toScreen(proj.points[a])
			x1, y1 := toScreen(proj.points[b])
			dc.MoveTo(x0, y0)
			dc.LineTo(x1, y1)
			n++
		}
		if n == 0 {
			continue
		}
		dc.SetHexColor(pass.color)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroking edges: %w", err)
		}
	}
	return dc, nil
}
