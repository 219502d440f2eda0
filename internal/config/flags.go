package config

import "flag"

// Flags holds command-line overrides for a subcommand.
type Flags struct {
	Config     string
	Debug      bool
	Iterations int
	Workers    int
	Format     string
	Width      int
	Height     int
}

// Register adds the shared flags to fs. Zero values, and -1 for -n, mean "not set".
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Iterations, "n", -1, "Subdivision iterations")
	fs.IntVar(&f.Workers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	fs.StringVar(&f.Format, "format", "", "Output format: obj or stl")
	fs.IntVar(&f.Width, "width", 0, "Preview width")
	fs.IntVar(&f.Height, "height", 0, "Preview height")
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Iterations >= 0 {
		cfg.Subdivision.Iterations = f.Iterations
	}
	if f.Workers > 0 {
		cfg.Subdivision.Workers = f.Workers
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Width > 0 {
		cfg.Preview.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Preview.Height = f.Height
	}
}
