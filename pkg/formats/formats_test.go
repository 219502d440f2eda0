package formats

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/loopsub/pkg/mesh"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"obj", FormatOBJ, false},
		{".OBJ", FormatOBJ, false},
		{"stl", FormatSTL, false},
		{".Stl", FormatSTL, false},
		{"ply", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	if f, err := FormatOf(filepath.Join("models", "bunny.STL")); err != nil || f != FormatSTL {
		t.Errorf("FormatOf(bunny.STL) = %q, %v", f, err)
	}
	if _, err := FormatOf("noext"); err == nil {
		t.Error("expected error for path without extension")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []Format{FormatOBJ, FormatSTL} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "out", "cube."+string(format))
			if err := Save(path, format, mesh.Cube(), "cube"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			m, name, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if name != "cube" {
				t.Errorf("expected name 'cube', got %q", name)
			}
			if m.NumVertices() != 8 {
				t.Errorf("expected 8 vertices, got %d", m.NumVertices())
			}

			topo, err := mesh.Build(m)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if topo.NumFaces() != 12 {
				t.Errorf("expected 12 triangles, got %d", topo.NumFaces())
			}
			if !topo.Stats().IsClosed() {
				t.Error("expected closed mesh after round trip")
			}
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.ply")
	err := Save(path, Format("ply"), mesh.Cube(), "cube")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat from Load, got %v", err)
	}
}
