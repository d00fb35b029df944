// Package main prints statistics for a generated terrain field.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gen, err := cfg.Noise.Generator()
	if err != nil {
		logger.Error("invalid noise config", zap.Error(err))
		os.Exit(1)
	}

	start := time.Now()
	field, err := terrain.NewField(cfg.Terrain.FieldParams(), gen)
	if err != nil {
		logger.Error("failed to build terrain", zap.Error(err))
		os.Exit(1)
	}
	mesh := field.Mesh()
	elapsed := time.Since(start)

	st := terrain.Summarize(field.Geometry())
	b := mesh.Bounds

	fmt.Printf("Basis:     %s (seed %d, %d octaves)\n", cfg.Noise.Basis, cfg.Noise.Seed, cfg.Noise.Octaves)
	fmt.Printf("Segments:  %d x %d\n", cfg.Terrain.SegmentsX, cfg.Terrain.SegmentsZ)
	fmt.Printf("Quads:     %d\n", st.Quads)
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles: %d\n", len(mesh.Indices)/3)
	fmt.Printf("Height:    %.3f .. %.3f\n", st.MinHeight, st.MaxHeight)
	fmt.Printf("Bounds:    (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Printf("Generated: %v\n", elapsed)
	fmt.Println()
	fmt.Println("Material bands:")
	printBand("sand", st.Sand, st.Vertices)
	printBand("blend", st.Blend, st.Vertices)
	printBand("grass", st.Grass, st.Vertices)
}

func printBand(name string, n, total int) {
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(n) / float64(total)
	}
	fmt.Printf("  %-6s %8d  %5.1f%%  %s\n", name, n, pct, strings.Repeat("#", int(pct/2)))
}
