package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSeed        = flag.String("seed", "", "Noise seed")
	flagBasis       = flag.String("basis", "", "Noise basis: value, perlin or simplex")
	flagOctaves     = flag.Int("octaves", 0, "Number of noise octaves")
	flagWidthQuads  = flag.Int("width-quads", 0, "Quads per segment along X")
	flagHeightQuads = flag.Int("height-quads", 0, "Quads per segment along Z")
	flagQuadSize    = flag.Float64("quad-size", 0, "World units per quad edge")
	flagSegments    = flag.Int("segments", 0, "Segments per side of the field")
	flagWireframe   = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != "" {
		seed, err := strconv.ParseInt(*flagSeed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid -seed %q: %w", *flagSeed, err)
		}
		cfg.Noise.Seed = seed
	}
	if *flagBasis != "" {
		cfg.Noise.Basis = *flagBasis
	}
	if *flagOctaves > 0 {
		cfg.Noise.Octaves = *flagOctaves
	}
	if *flagWidthQuads > 0 {
		cfg.Terrain.WidthQuads = *flagWidthQuads
	}
	if *flagHeightQuads > 0 {
		cfg.Terrain.HeightQuads = *flagHeightQuads
	}
	if *flagQuadSize > 0 {
		cfg.Terrain.QuadSize = float32(*flagQuadSize)
	}
	if *flagSegments > 0 {
		cfg.Terrain.SegmentsX = *flagSegments
		cfg.Terrain.SegmentsZ = *flagSegments
	}
	if *flagWireframe {
		cfg.Render.Wireframe = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	return nil
}
