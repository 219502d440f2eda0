// STL reader and writer. Binary and ASCII files are read; binary is written.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/encoding"
	"github.com/Faultbox/loopsub/pkg/math"
	"github.com/Faultbox/loopsub/pkg/mesh"
)

// STL format errors.
var (
	ErrTruncatedSTL = errors.New("truncated STL data")
	ErrInvalidSTL   = errors.New("invalid STL data")
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // normal + 3 vertices as float32, uint16 attribute
)

// STL is a parsed STL file. Triangle soup is welded into shared vertices
// by exact position.
type STL struct {
	Name   string
	Binary bool
	Mesh   *mesh.Mesh
}

// LoadSTL reads and parses an STL file from disk.
func LoadSTL(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return ParseSTL(data)
}

// ParseSTL parses binary or ASCII STL data. A file is binary when its size
// matches the triangle count in its header, since binary headers may also
// start with "solid".
func ParseSTL(data []byte) (*STL, error) {
	if len(data) >= stlHeaderSize+4 {
		count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
		if uint64(len(data)) == stlHeaderSize+4+uint64(count)*stlTriangleSize {
			return parseBinarySTL(data, int(count))
		}
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCIISTL(data)
	}
	return nil, ErrTruncatedSTL
}

// welder assigns one index per distinct position.
type welder struct {
	m     *mesh.Mesh
	index map[r3.Vec]int
}

func newWelder() *welder {
	return &welder{m: &mesh.Mesh{}, index: make(map[r3.Vec]int)}
}

func (w *welder) vertex(p r3.Vec) int {
	if p.X == 0 {
		p.X = 0 // fold -0 into +0
	}
	if p.Y == 0 {
		p.Y = 0
	}
	if p.Z == 0 {
		p.Z = 0
	}
	if i, ok := w.index[p]; ok {
		return i
	}
	i := len(w.m.Vertices)
	w.index[p] = i
	w.m.Vertices = append(w.m.Vertices, p)
	return i
}

func (w *welder) triangle(a, b, c r3.Vec) {
	ia, ib, ic := w.vertex(a), w.vertex(b), w.vertex(c)
	// Zero-area slivers whose corners weld together are common in STL
	// exports and carry no surface.
	if ia == ib || ib == ic || ic == ia {
		return
	}
	w.m.Faces = append(w.m.Faces, []int{ia, ib, ic})
}

func parseBinarySTL(data []byte, count int) (*STL, error) {
	stl := &STL{
		Name:   encoding.DecodeFixed(data[:stlHeaderSize]),
		Binary: true,
	}
	w := newWelder()
	r := bytes.NewReader(data[stlHeaderSize+4:])

	var tri struct {
		Normal [3]float32
		V      [3][3]float32
		Attr   uint16
	}
	for i := 0; i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &tri); err != nil {
			return nil, fmt.Errorf("%w: triangle %d: %v", ErrTruncatedSTL, i, err)
		}
		var p [3]r3.Vec
		for j, v := range tri.V {
			p[j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
		w.triangle(p[0], p[1], p[2])
	}
	stl.Mesh = w.m
	return stl, nil
}

func parseASCIISTL(data []byte) (*STL, error) {
	stl := &STL{}
	w := newWelder()

	sc := bufio.NewScanner(bytes.NewReader(data))
	var corners []r3.Vec
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				stl.Name = encoding.DecodeName([]byte(strings.Join(fields[1:], " ")))
			}
		case "outer":
			corners = corners[:0]
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrInvalidSTL, line)
			}
			var c [3]float64
			for i := range c {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSTL, line, err)
				}
				c[i] = f
			}
			corners = append(corners, r3.Vec{X: c[0], Y: c[1], Z: c[2]})
		case "endloop":
			if len(corners) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrInvalidSTL, line, len(corners))
			}
			w.triangle(corners[0], corners[1], corners[2])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSTL, err)
	}
	if len(w.m.Faces) == 0 {
		return nil, fmt.Errorf("%w: no facets", ErrInvalidSTL)
	}
	stl.Mesh = w.m
	return stl, nil
}

// WriteSTL writes m as binary STL. Polygons are fan triangulated and
// positions are narrowed to float32 as the format requires.
func WriteSTL(w io.Writer, m *mesh.Mesh, name string) error {
	tris := mesh.Triangulate(m.Faces)
	if uint64(len(tris)) > gomath.MaxUint32 {
		return fmt.Errorf("%w: %d triangles exceed the format limit", ErrInvalidSTL, len(tris))
	}

	bw := bufio.NewWriter(w)
	bw.Write(encoding.EncodeFixed(name, stlHeaderSize))
	binary.Write(bw, binary.LittleEndian, uint32(len(tris)))

	var rec [stlTriangleSize]byte
	for _, t := range tris {
		for _, idx := range t {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: vertex index %d out of range", ErrInvalidSTL, idx)
			}
		}
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		vals := [12]float64{}
		n := math.TriangleNormal(a, b, c)
		for i, v := range [4]r3.Vec{n, a, b, c} {
			vals[3*i], vals[3*i+1], vals[3*i+2] = v.X, v.Y, v.Z
		}
		for i, v := range vals {
			binary.LittleEndian.PutUint32(rec[4*i:], gomath.Float32bits(float32(v)))
		}
		// rec[48:50] is the attribute byte count, always zero.
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
