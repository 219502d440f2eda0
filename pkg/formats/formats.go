// Package formats reads and writes mesh exchange files.
//
// OBJ keeps polygons and full float64 precision. STL stores float32
// triangle soup, which is welded back into shared vertices on load.
package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/loopsub/pkg/mesh"
)

// ErrUnsupportedFormat is returned for file types other than OBJ and STL.
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Format identifies a mesh file type.
type Format string

// Supported formats.
const (
	FormatOBJ Format = "obj"
	FormatSTL Format = "stl"
)

// ParseFormat returns the format with the given name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(name, "."))) {
	case FormatOBJ:
		return FormatOBJ, nil
	case FormatSTL:
		return FormatSTL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load reads a mesh file, choosing the parser by extension.
// It returns the mesh and the object name stored in the file, if any.
func Load(path string) (*mesh.Mesh, string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, "", err
	}
	switch format {
	case FormatSTL:
		stl, err := LoadSTL(path)
		if err != nil {
			return nil, "", err
		}
		return stl.Mesh, stl.Name, nil
	default:
		obj, err := LoadOBJ(path)
		if err != nil {
			return nil, "", err
		}
		return obj.Mesh, obj.Name, nil
	}
}

// Save writes m to path in the given format, creating parent directories.
func Save(path string, format Format, m *mesh.Mesh, name string) error {
	if format != FormatOBJ && format != FormatSTL {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatOBJ:
		err = WriteOBJ(f, m, name)
	case FormatSTL:
		err = WriteSTL(f, m, name)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
