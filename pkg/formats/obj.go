// Wavefront OBJ reader and writer for polygon meshes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/loopsub/pkg/encoding"
	"github.com/Faultbox/loopsub/pkg/mesh"
)

// OBJ format errors.
var (
	ErrInvalidOBJ = errors.New("invalid OBJ data")
	ErrEmptyOBJ   = errors.New("OBJ contains no faces")
)

// OBJ is a parsed Wavefront OBJ file. Only geometry is kept: texture
// coordinates, normals, groups and materials are skipped.
type OBJ struct {
	Name string // First object or group name
	Mesh *mesh.Mesh
}

// ParseOBJ parses OBJ data from a byte slice.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ReadOBJ(bytes.NewReader(data))
}

// LoadOBJ reads and parses an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// ReadOBJ parses OBJ data from r.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{Mesh: &mesh.Mesh{}}
	m := obj.Mesh

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Bytes()
		if i := bytes.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(string(text))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidOBJ, line, err)
			}
			m.Vertices = append(m.Vertices, p)
		case "f":
			face, err := parseOBJFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidOBJ, line, err)
			}
			m.Faces = append(m.Faces, face)
		case "o", "g":
			if obj.Name == "" && len(fields) > 1 {
				raw := bytes.TrimSpace(text)
				obj.Name = encoding.DecodeName(raw[len(fields[0]):])
			}
		default:
			// vt, vn, vp, s, l, usemtl, mtllib and friends carry nothing
			// the subdivision needs.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOBJ, err)
	}
	if len(m.Faces) == 0 {
		return nil, ErrEmptyOBJ
	}
	return obj, nil
}

func parseOBJVertex(fields []string) (r3.Vec, error) {
	if len(fields) < 3 {
		return r3.Vec{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("vertex coordinate %q: %v", fields[i], err)
		}
		c[i] = f
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseOBJFace resolves face references ("7", "7/1", "7//3", "7/1/3" or
// negative relative forms) to zero-based vertex indices.
func parseOBJFace(fields []string, numVerts int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	face := make([]int, len(fields))
	for i, ref := range fields {
		if j := strings.IndexByte(ref, '/'); j >= 0 {
			ref = ref[:j]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %v", fields[i], err)
		}
		switch {
		case idx > 0:
			face[i] = idx - 1
		case idx < 0:
			face[i] = numVerts + idx
			if face[i] < 0 {
				return nil, fmt.Errorf("relative face index %d before first vertex", idx)
			}
		default:
			return nil, fmt.Errorf("face index 0 is not valid")
		}
	}
	return face, nil
}

// WriteOBJ writes m as an OBJ object. Positions are written with the
// shortest representation that parses back to the same float64.
func WriteOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# loopsub: %d vertices, %d faces\n", len(m.Vertices), len(m.Faces))
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	buf := make([]byte, 0, 96)
	for _, p := range m.Vertices {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	for _, f := range m.Faces {
		buf = append(buf[:0], 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}
