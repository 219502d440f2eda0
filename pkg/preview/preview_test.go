package preview

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/mesh"
)

func TestRender_Size(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 160, 120

	img, err := Render(mesh.Icosahedron(), opts)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRender_DrawsEdges(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 100, 100
	opts.Yaw, opts.Pitch = 0, 0
	opts.Background = "#000000"
	opts.Boundary = "#ffffff"
	opts.LineWidth = 2

	img, err := Render(mesh.Quad(), opts)
	require.NoError(t, err)

	// The square fills the canvas minus the margin, so its left edge runs
	// through x = margin at mid height.
	lit := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r > 0x8000 && g > 0x8000 && b > 0x8000
	}
	assert.True(t, lit(int(opts.Margin), 50), "left boundary edge not drawn")
	assert.False(t, lit(5, 5), "corner outside the mesh should stay background")

	bg := color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA)
	assert.Equal(t, uint8(0), bg.R)
}

func TestProject_CentersMesh(t *testing.T) {
	p := project([]r3.Vec{{X: 10, Y: 10, Z: 10}, {X: 12, Y: 14, Z: 10}}, 0, 0)
	assert.Equal(t, r3.Vec{X: -1, Y: -2}, p.points[0])
	assert.Equal(t, r3.Vec{X: 1, Y: 2}, p.points[1])
}

func TestClassify_CubeFrontAndBack(t *testing.T) {
	topo, err := mesh.Build(mesh.Cube())
	require.NoError(t, err)

	p := project(topo.Positions(), 30, 20)
	classes := classify(topo, p.points)

	var front, back, boundary int
	for _, c := range classes {
		switch c {
		case edgeFront:
			front++
		case edgeBack:
			back++
		case edgeBoundary:
			boundary++
		}
	}
	assert.Zero(t, boundary)
	assert.NotZero(t, front)
	assert.NotZero(t, back)
	assert.Equal(t, 18, front+back)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.png")
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	require.NoError(t, SavePNG(path, mesh.Cube(), opts))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRender_Errors(t *testing.T) {
	opts := DefaultOptions()
	_, err := Render(&mesh.Mesh{}, opts)
	assert.True(t, errors.Is(err, ErrEmptyMesh), "got %v", err)

	opts.Width = 0
	_, err = Render(mesh.Cube(), opts)
	assert.Error(t, err)

	bad := &mesh.Mesh{Vertices: make([]r3.Vec, 1), Faces: [][]int{{0, 1, 2}}}
	_, err = Render(bad, DefaultOptions())
	assert.True(t, errors.Is(err, mesh.ErrInvalidTopology), "got %v", err)
}
