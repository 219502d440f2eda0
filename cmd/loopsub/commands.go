package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/loopsub/internal/config"
	"github.com/Faultbox/loopsub/internal/logger"
	"github.com/Faultbox/loopsub/pkg/formats"
	"github.com/Faultbox/loopsub/pkg/math"
	"github.com/Faultbox/loopsub/pkg/mesh"
	"github.com/Faultbox/loopsub/pkg/preview"
	"github.com/Faultbox/loopsub/pkg/subdiv"
)

// setup parses a subcommand's flags, loads the config and starts logging.
func setup(name string, args []string, extra func(*flag.FlagSet)) (*flag.FlagSet, *config.Config, error) {
	var flags config.Flags
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags.Register(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load(&flags)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, err
	}
	return fs, cfg, nil
}

func cmdSubdivide(args []string) error {
	var out string
	fs, cfg, err := setup("subdivide", args, func(fs *flag.FlagSet) {
		fs.StringVar(&out, "o", "", "Output path (default: input name + suffix)")
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: loopsub subdivide [-n N] [-o out] <mesh>")
	}
	in := fs.Arg(0)

	m, name, err := formats.Load(in)
	if err != nil {
		return err
	}

	format, err := outputFormat(cfg, in, out)
	if err != nil {
		return err
	}
	if out == "" {
		out = outputPath(in, cfg.Output.Suffix, format)
	}
	if filepath.Clean(out) == filepath.Clean(in) {
		return fmt.Errorf("output would overwrite input %s", in)
	}

	logger.Info("subdividing",
		zap.String("input", in),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("faces", m.NumFaces()),
		zap.Int("iterations", cfg.Subdivision.Iterations))

	result, report, err := subdiv.Subdivide(m, cfg.Subdivision.Iterations,
		subdiv.WithWorkers(cfg.Subdivision.Workers),
		subdiv.WithLogger(logger.Log.Named("subdiv")))
	if err != nil {
		return err
	}

	if err := formats.Save(out, format, result, name); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	logger.Info("subdivision complete",
		zap.String("output", out),
		zap.Int("vertices", result.NumVertices()),
		zap.Int("faces", result.NumFaces()),
		zap.Duration("duration", report.Duration()))
	return nil
}

func cmdInfo(args []string) error {
	fs, _, err := setup("info", args, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: loopsub info <mesh>")
	}

	m, name, err := formats.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	t, err := mesh.Build(m)
	if err != nil {
		return err
	}

	s := t.Stats()
	b := math.BoundsOf(t.Positions())

	fmt.Printf("Mesh:      %s\n", fs.Arg(0))
	if name != "" {
		fmt.Printf("Name:      %s\n", name)
	}
	fmt.Printf("Polygons:  %d (triangulated: %v)\n", m.NumFaces(), m.IsTriangulated())
	fmt.Printf("Vertices:  %d\n", s.Vertices)
	fmt.Printf("Edges:     %d\n", s.Edges)
	fmt.Printf("Triangles: %d\n", s.Faces)
	fmt.Printf("Euler:     %d\n", s.EulerCharacteristic())
	fmt.Printf("Closed:    %v\n", s.IsClosed())
	fmt.Println()
	fmt.Printf("Boundary edges:     %d\n", s.BoundaryEdges)
	fmt.Printf("Boundary vertices:  %d\n", s.BoundaryVertices)
	fmt.Printf("Non-manifold edges: %d\n", s.NonManifoldEdges)
	fmt.Printf("Isolated vertices:  %d\n", s.IsolatedVertices)
	if !b.Empty() {
		size := b.Size()
		fmt.Println()
		fmt.Printf("Bounds:    (%.4g, %.4g, %.4g) - (%.4g, %.4g, %.4g)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
		fmt.Printf("Size:      %.4g x %.4g x %.4g\n", size.X, size.Y, size.Z)
	}
	return nil
}

func cmdPreview(args []string) error {
	var out string
	fs, cfg, err := setup("preview", args, func(fs *flag.FlagSet) {
		fs.StringVar(&out, "o", "", "Output PNG (default: input name + .png)")
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: loopsub preview [-o out.png] <mesh>")
	}
	in := fs.Arg(0)
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}

	m, _, err := formats.Load(in)
	if err != nil {
		return err
	}

	// Preview renders the input as is unless -n was given.
	if iterations := iterationsFlag(fs); iterations > 0 {
		m, _, err = subdiv.Subdivide(m, iterations,
			subdiv.WithWorkers(cfg.Subdivision.Workers),
			subdiv.WithLogger(logger.Log.Named("subdiv")))
		if err != nil {
			return err
		}
	}

	opts := preview.DefaultOptions()
	opts.Width = cfg.Preview.Width
	opts.Height = cfg.Preview.Height
	opts.Yaw = cfg.Preview.Yaw
	opts.Pitch = cfg.Preview.Pitch
	opts.LineWidth = cfg.Preview.LineWidth
	if cfg.Preview.Background != "" {
		opts.Background = cfg.Preview.Background
	}

	if err := preview.SavePNG(out, m, opts); err != nil {
		return err
	}
	logger.Info("preview written", zap.String("output", out),
		zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	return nil
}

func cmdGen(args []string) error {
	fs, cfg, err := setup("gen", args, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: loopsub gen <shape> <out>")
	}
	shape, out := fs.Arg(0), fs.Arg(1)

	m, ok := mesh.Primitive(shape)
	if !ok {
		return fmt.Errorf("unknown shape %q", shape)
	}

	format, err := outputFormat(cfg, out, out)
	if err != nil {
		return err
	}
	if err := formats.Save(out, format, m, shape); err != nil {
		return err
	}
	logger.Info("primitive written", zap.String("shape", shape), zap.String("output", out))
	return nil
}

// outputFormat picks the format from, in order: the configured format,
// the output extension, the input extension.
func outputFormat(cfg *config.Config, in, out string) (formats.Format, error) {
	if cfg.Output.Format != "" {
		return formats.ParseFormat(cfg.Output.Format)
	}
	if out != "" {
		if f, err := formats.FormatOf(out); err == nil {
			return f, nil
		}
	}
	return formats.FormatOf(in)
}

// outputPath derives "dir/name<suffix>.<format>" from the input path.
func outputPath(in, suffix string, format formats.Format) string {
	base := strings.TrimSuffix(in, filepath.Ext(in))
	return base + suffix + "." + string(format)
}

// iterationsFlag reports the -n value only when it was set explicitly.
func iterationsFlag(fs *flag.FlagSet) int {
	n := 0
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			fmt.Sscan(f.Value.String(), &n)
		}
	})
	return n
}
