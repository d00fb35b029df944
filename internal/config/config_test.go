package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/terrain"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.WidthQuads != 64 || cfg.Terrain.HeightQuads != 64 {
		t.Errorf("expected 64x64 quads, got %dx%d", cfg.Terrain.WidthQuads, cfg.Terrain.HeightQuads)
	}
	if cfg.Terrain.QuadSize != 1 {
		t.Errorf("expected quad size 1, got %v", cfg.Terrain.QuadSize)
	}
	if cfg.Noise.Octaves != 3 {
		t.Errorf("expected 3 octaves, got %d", cfg.Noise.Octaves)
	}
	if cfg.Noise.Multiplier != 6 {
		t.Errorf("expected multiplier 6, got %v", cfg.Noise.Multiplier)
	}
	if cfg.Noise.Basis != "value" {
		t.Errorf("expected value basis, got %s", cfg.Noise.Basis)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "terrain.yaml")

	yamlContent := `
terrain:
  origin_x: -16
  origin_z: 8.5
  width_quads: 32
  height_quads: 24
  quad_size: 0.5
  segments_x: 2
  segments_z: 3

noise:
  basis: simplex
  seed: 1234
  octaves: 5
  frequency: 0.05

window:
  width: 1920
  height: 1080
  fullscreen: true

render:
  wireframe: true
  fog: false
  fog_color: [0.1, 0.2, 0.3]
  sun_latitude: 30

logging:
  level: "debug"
  log_file: "terrain.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.OriginX != -16 || cfg.Terrain.OriginZ != 8.5 {
		t.Errorf("origin = (%v, %v), want (-16, 8.5)", cfg.Terrain.OriginX, cfg.Terrain.OriginZ)
	}
	if cfg.Terrain.WidthQuads != 32 || cfg.Terrain.HeightQuads != 24 {
		t.Errorf("quads = %dx%d, want 32x24", cfg.Terrain.WidthQuads, cfg.Terrain.HeightQuads)
	}
	if cfg.Terrain.SegmentsX != 2 || cfg.Terrain.SegmentsZ != 3 {
		t.Errorf("segments = %dx%d, want 2x3", cfg.Terrain.SegmentsX, cfg.Terrain.SegmentsZ)
	}
	if cfg.Noise.Basis != "simplex" || cfg.Noise.Seed != 1234 || cfg.Noise.Octaves != 5 {
		t.Errorf("noise = %+v", cfg.Noise)
	}
	// Untouched keys keep their defaults.
	if cfg.Noise.Multiplier != 6 {
		t.Errorf("expected default multiplier to survive merge, got %v", cfg.Noise.Multiplier)
	}
	if !cfg.Render.Wireframe || cfg.Render.Fog {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Render.FogColor != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("fog color = %v, want [0.1 0.2 0.3]", cfg.Render.FogColor)
	}
	if cfg.Render.SunLatitude != 30 || cfg.Render.SunLongitude != 53 {
		t.Errorf("sun = (%v, %v), want (53, 30)", cfg.Render.SunLongitude, cfg.Render.SunLatitude)
	}
	if cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("expected log file 'terrain.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
terrain:
  width_quads: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/terrain.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero width", func(c *Config) { c.Terrain.WidthQuads = 0 }, terrain.ErrInvalidParams},
		{"negative quad size", func(c *Config) { c.Terrain.QuadSize = -2 }, terrain.ErrInvalidParams},
		{"no segments", func(c *Config) { c.Terrain.SegmentsZ = 0 }, terrain.ErrInvalidParams},
		{"unknown basis", func(c *Config) { c.Noise.Basis = "cellular" }, noise.ErrUnknownBasis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.Noise.Octaves = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero octaves")
	}
}

func TestGenerator(t *testing.T) {
	cfg := Default()
	cfg.Noise.Octaves = 4
	cfg.Noise.Multiplier = 2

	gen, err := cfg.Noise.Generator()
	if err != nil {
		t.Fatalf("Generator() error: %v", err)
	}
	if gen.Octaves != 4 || gen.Multiplier != 2 {
		t.Errorf("generator = %+v", gen)
	}
	if _, ok := gen.Source.(noise.ValueNoise); !ok {
		t.Errorf("expected value noise source, got %T", gen.Source)
	}
	if gen.Height(1.5, 2.5) != gen.Height(1.5, 2.5) {
		t.Error("generator not deterministic")
	}
}

func TestFieldParams(t *testing.T) {
	cfg := Default()
	cfg.Terrain.OriginX = 3
	cfg.Terrain.SegmentsX = 2

	fp := cfg.Terrain.FieldParams()
	if fp.Segment.OriginX != 3 || fp.SegmentsX != 2 || fp.Segment.WidthQuads != 64 {
		t.Errorf("FieldParams() = %+v", fp)
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
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "terrain.yaml"), []byte("terrain:\n  width_quads: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find terrain.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "seed and basis",
			setup: func() { *flagSeed = "-77"; *flagBasis = "perlin" },
			verify: func(cfg *Config) {
				if cfg.Noise.Seed != -77 || cfg.Noise.Basis != "perlin" {
					t.Errorf("noise = %+v", cfg.Noise)
				}
			},
			teardown: func() { *flagSeed = ""; *flagBasis = "" },
		},
		{
			name:  "segments",
			setup: func() { *flagSegments = 3 },
			verify: func(cfg *Config) {
				if cfg.Terrain.SegmentsX != 3 || cfg.Terrain.SegmentsZ != 3 {
					t.Errorf("segments = %dx%d, want 3x3", cfg.Terrain.SegmentsX, cfg.Terrain.SegmentsZ)
				}
			},
			teardown: func() { *flagSegments = 0 },
		},
		{
			name:  "quad dimensions",
			setup: func() { *flagWidthQuads = 10; *flagHeightQuads = 12; *flagQuadSize = 0.25 },
			verify: func(cfg *Config) {
				if cfg.Terrain.WidthQuads != 10 || cfg.Terrain.HeightQuads != 12 || cfg.Terrain.QuadSize != 0.25 {
					t.Errorf("terrain = %+v", cfg.Terrain)
				}
			},
			teardown: func() { *flagWidthQuads = 0; *flagHeightQuads = 0; *flagQuadSize = 0 },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error: %v", err)
			}
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsBadSeed(t *testing.T) {
	*flagSeed = "twelve"
	defer func() { *flagSeed = "" }()

	if err := applyFlags(Default()); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "terrain.yaml")

	yamlContent := `
terrain:
  width_quads: 20
  height_quads: 30
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidthQuads = 40
	defer func() {
		*flagConfig = ""
		*flagWidthQuads = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.WidthQuads != 40 {
		t.Errorf("expected width 40 from flag, got %d", cfg.Terrain.WidthQuads)
	}
	if cfg.Terrain.HeightQuads != 30 {
		t.Errorf("expected height 30 from file, got %d", cfg.Terrain.HeightQuads)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "terrain.yaml")

	cfg := Default()
	cfg.Noise.Seed = 99
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if loaded.Noise.Seed != 99 {
		t.Errorf("seed = %d, want 99", loaded.Noise.Seed)
	}
}
