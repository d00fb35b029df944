// Package config handles terrain and viewer configuration.
package config

import (
	"fmt"

	"github.com/Faultbox/midgard-terrain/internal/terrain"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

// Config holds all settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig describes the generated field of segments.
type TerrainConfig struct {
	OriginX     float32 `yaml:"origin_x"`
	OriginZ     float32 `yaml:"origin_z"`
	WidthQuads  int     `yaml:"width_quads"`
	HeightQuads int     `yaml:"height_quads"`
	QuadSize    float32 `yaml:"quad_size"`
	SegmentsX   int     `yaml:"segments_x"`
	SegmentsZ   int     `yaml:"segments_z"`
}

// NoiseConfig holds height generator settings.
type NoiseConfig struct {
	Basis       string  `yaml:"basis"` // value, perlin or simplex
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Frequency   float64 `yaml:"frequency"`
	Multiplier  float64 `yaml:"multiplier"`
}

// WindowConfig holds viewer window settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds viewer render toggles.
type RenderConfig struct {
	Wireframe bool       `yaml:"wireframe"`
	Fog       bool       `yaml:"fog"`
	FogNear   float32    `yaml:"fog_near"`
	FogFar    float32    `yaml:"fog_far"`
	FogColor  [3]float32 `yaml:"fog_color"`

	// Sun position in degrees: longitude around +Y, latitude above the horizon.
	SunLongitude float32 `yaml:"sun_longitude"`
	SunLatitude  float32 `yaml:"sun_latitude"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			OriginX:     0,
			OriginZ:     0,
			WidthQuads:  64,
			HeightQuads: 64,
			QuadSize:    1,
			SegmentsX:   1,
			SegmentsZ:   1,
		},
		Noise: NoiseConfig{
			Basis:       noise.BasisValue,
			Seed:        0,
			Octaves:     noise.DefaultOctaves,
			Persistence: noise.DefaultPersistence,
			Lacunarity:  noise.DefaultLacunarity,
			Frequency:   noise.DefaultFrequency,
			Multiplier:  noise.DefaultMultiplier,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			Fog:      true,
			FogNear:  30,
			FogFar:   120,
			FogColor: [3]float32{0.6, 0.7, 0.85},

			SunLongitude: 53,
			SunLatitude:  63,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FieldParams converts the terrain section to builder params.
func (t TerrainConfig) FieldParams() terrain.FieldParams {
	return terrain.FieldParams{
		Segment: terrain.Params{
			OriginX:     t.OriginX,
			OriginZ:     t.OriginZ,
			WidthQuads:  t.WidthQuads,
			HeightQuads: t.HeightQuads,
			QuadSize:    t.QuadSize,
		},
		SegmentsX: t.SegmentsX,
		SegmentsZ: t.SegmentsZ,
	}
}

// Generator builds the fractal height generator described by n.
func (n NoiseConfig) Generator() (*noise.Brownian, error) {
	src, err := noise.NewBasis(n.Basis, n.Seed)
	if err != nil {
		return nil, err
	}
	return &noise.Brownian{
		Source:      src,
		Octaves:     n.Octaves,
		Persistence: n.Persistence,
		Lacunarity:  n.Lacunarity,
		Frequency:   n.Frequency,
		Multiplier:  n.Multiplier,
	}, nil
}

// Validate checks the settings that would otherwise fail at build time.
func (c *Config) Validate() error {
	fp := c.Terrain.FieldParams()
	if err := fp.Segment.Validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if fp.SegmentsX <= 0 || fp.SegmentsZ <= 0 {
		return fmt.Errorf("terrain: %w: segment counts %dx%d must be positive", terrain.ErrInvalidParams, fp.SegmentsX, fp.SegmentsZ)
	}
	if c.Noise.Octaves <= 0 {
		return fmt.Errorf("noise: octaves %d must be positive", c.Noise.Octaves)
	}
	if _, err := noise.NewBasis(c.Noise.Basis, c.Noise.Seed); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	return nil
}
