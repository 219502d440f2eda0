package main

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/Faultbox/loopsub/internal/config"
	"github.com/Faultbox/loopsub/pkg/formats"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in     string
		suffix string
		format formats.Format
		want   string
	}{
		{"cube.obj", "_loop", formats.FormatOBJ, "cube_loop.obj"},
		{filepath.Join("models", "bunny.stl"), "_loop", formats.FormatOBJ, filepath.Join("models", "bunny_loop.obj")},
		{"mesh", "_x", formats.FormatSTL, "mesh_x.stl"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.in, tt.suffix, tt.format); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputFormat(t *testing.T) {
	cfg := config.Default()

	f, err := outputFormat(cfg, "a.stl", "")
	if err != nil || f != formats.FormatSTL {
		t.Errorf("input extension: got %q, %v", f, err)
	}

	f, err = outputFormat(cfg, "a.stl", "b.obj")
	if err != nil || f != formats.FormatOBJ {
		t.Errorf("output extension: got %q, %v", f, err)
	}

	cfg.Output.Format = "stl"
	f, err = outputFormat(cfg, "a.obj", "b.obj")
	if err != nil || f != formats.FormatSTL {
		t.Errorf("configured format: got %q, %v", f, err)
	}

	cfg.Output.Format = ""
	if _, err := outputFormat(cfg, "a.ply", ""); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestIterationsFlag(t *testing.T) {
	var flags config.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(fs)
	if err := fs.Parse([]string{"cube.obj"}); err != nil {
		t.Fatal(err)
	}
	if n := iterationsFlag(fs); n != 0 {
		t.Errorf("unset -n: got %d, want 0", n)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(fs)
	if err := fs.Parse([]string{"-n", "3", "cube.obj"}); err != nil {
		t.Fatal(err)
	}
	if n := iterationsFlag(fs); n != 3 {
		t.Errorf("-n 3: got %d, want 3", n)
	}
}
