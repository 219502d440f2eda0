package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Subdivision.Iterations != 1 {
		t.Errorf("expected 1 iteration, got %d", cfg.Subdivision.Iterations)
	}
	if cfg.Subdivision.Workers != 0 {
		t.Errorf("expected 0 workers (auto), got %d", cfg.Subdivision.Workers)
	}
	if cfg.Output.Format != "" {
		t.Errorf("expected empty output format, got %s", cfg.Output.Format)
	}
	if cfg.Output.Suffix != "_loop" {
		t.Errorf("expected suffix '_loop', got %s", cfg.Output.Suffix)
	}
	if cfg.Preview.Width != 800 || cfg.Preview.Height != 600 {
		t.Errorf("expected preview 800x600, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
subdivision:
  iterations: 4
  workers: 2

output:
  format: "stl"
  suffix: "_smooth"

preview:
  width: 1024
  height: 768
  yaw: 45
  line_width: 1.5

logging:
  level: "debug"
  log_file: "loopsub.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Subdivision.Iterations != 4 {
		t.Errorf("expected 4 iterations, got %d", cfg.Subdivision.Iterations)
	}
	if cfg.Subdivision.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Subdivision.Workers)
	}
	if cfg.Output.Format != "stl" {
		t.Errorf("expected format stl, got %s", cfg.Output.Format)
	}
	if cfg.Output.Suffix != "_smooth" {
		t.Errorf("expected suffix _smooth, got %s", cfg.Output.Suffix)
	}
	if cfg.Preview.Width != 1024 || cfg.Preview.Height != 768 {
		t.Errorf("expected preview 1024x768, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.Yaw != 45 {
		t.Errorf("expected yaw 45, got %f", cfg.Preview.Yaw)
	}
	// Not in the file, so the default must survive the merge.
	if cfg.Preview.Pitch != 20 {
		t.Errorf("expected default pitch 20, got %f", cfg.Preview.Pitch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "loopsub.log" {
		t.Errorf("expected log file 'loopsub.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
subdivision:
  iterations: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "loopsub.yaml")
	if err := os.WriteFile(configPath, []byte("subdivision:\n  iterations: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find loopsub.yaml in current directory")
	}
}

func TestFlagsApply(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "iterations flag",
			args: []string{"-n", "3"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Subdivision.Iterations != 3 {
					t.Errorf("expected 3 iterations, got %d", cfg.Subdivision.Iterations)
				}
			},
		},
		{
			name: "zero iterations is an explicit value",
			args: []string{"-n", "0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Subdivision.Iterations != 0 {
					t.Errorf("expected 0 iterations, got %d", cfg.Subdivision.Iterations)
				}
			},
		},
		{
			name: "workers and format",
			args: []string{"-workers", "6", "-format", "obj"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Subdivision.Workers != 6 {
					t.Errorf("expected 6 workers, got %d", cfg.Subdivision.Workers)
				}
				if cfg.Output.Format != "obj" {
					t.Errorf("expected format obj, got %s", cfg.Output.Format)
				}
			},
		},
		{
			name: "preview size",
			args: []string{"-width", "320", "-height", "240"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Preview.Width != 320 || cfg.Preview.Height != 240 {
					t.Errorf("expected 320x240, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
				}
			},
		},
		{
			name: "no flags keeps defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Subdivision.Iterations != 1 {
					t.Errorf("expected default iterations, got %d", cfg.Subdivision.Iterations)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flags
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			f.Register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
subdivision:
  iterations: 5
  workers: 3
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	flags := &Flags{Config: configPath, Iterations: 2}
	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Iterations from flag (2), not file (5)
	if cfg.Subdivision.Iterations != 2 {
		t.Errorf("expected 2 iterations from flag, got %d", cfg.Subdivision.Iterations)
	}
	// Workers from file (3) since no flag override
	if cfg.Subdivision.Workers != 3 {
		t.Errorf("expected 3 workers from file, got %d", cfg.Subdivision.Workers)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: ply\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(&Flags{Config: configPath, Iterations: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Subdivision.Iterations = -1
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Error("expected negative iterations to be rejected")
	}

	cfg = Default()
	cfg.Subdivision.Workers = -4
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Error("expected negative workers to be rejected")
	}

	cfg = Default()
	cfg.Preview.Width = 0
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Error("expected zero preview width to be rejected")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Subdivision.Iterations = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Subdivision.Iterations != 7 {
		t.Errorf("expected 7 iterations after reload, got %d", loaded.Subdivision.Iterations)
	}
}
