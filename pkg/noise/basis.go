package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownBasis is returned by NewBasis for an unrecognized basis name.
var ErrUnknownBasis = errors.New("unknown noise basis")

// Basis names accepted by NewBasis.
const (
	BasisValue   = "value"
	BasisPerlin  = "perlin"
	BasisSimplex = "simplex"
)

// Perlin adapts gradient noise from go-perlin to Source. It is configured
// for a single octave; fractal layering is left to Brownian.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a single-octave Perlin source.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise2D implements Source.
func (p *Perlin) Noise2D(x, z float64) float64 {
	return p.p.Noise2D(x, z)
}

// Simplex adapts OpenSimplex noise to Source.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an OpenSimplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Noise2D implements Source.
func (s *Simplex) Noise2D(x, z float64) float64 {
	return s.n.Eval2(x, z)
}

// foldSeed narrows a seed for ValueNoise. Seeds in the int32 range are kept
// as is; wider seeds fold their high half in so they do not alias the low one.
func foldSeed(seed int64) int32 {
	if seed == int64(int32(seed)) {
		return int32(seed)
	}
	return int32(seed) ^ int32(seed>>32)
}

// NewBasis builds a Source by name. An empty name selects value noise.
func NewBasis(name string, seed int64) (Source, error) {
	switch strings.ToLower(name) {
	case "", BasisValue:
		return NewValueNoise(foldSeed(seed)), nil
	case BasisPerlin:
		return NewPerlin(seed), nil
	case BasisSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBasis, name)
	}
}
