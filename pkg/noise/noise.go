// Package noise provides deterministic 2D noise fields and a fractal
// Brownian height generator built on top of them.
package noise

import "math"

// Source is a deterministic, continuous scalar field over the XZ plane.
// Implementations return values roughly in [-1, 1].
type Source interface {
	Noise2D(x, z float64) float64
}

// ValueNoise is lattice value noise: every integer lattice point carries a
// pseudo-random value derived from its coordinates and Seed, and points in
// between are blended with cosine interpolation.
//
// Lattice coordinates are hashed as int32 with wrapping arithmetic, so
// coordinates beyond the int32 range alias onto other lattice points.
type ValueNoise struct {
	Seed int32
}

// NewValueNoise returns value noise for the given seed.
func NewValueNoise(seed int32) ValueNoise {
	return ValueNoise{Seed: seed}
}

// Noise2D implements Source.
func (n ValueNoise) Noise2D(x, z float64) float64 {
	// Floor, not truncation, so negative coordinates land in the right cell.
	fx := math.Floor(x)
	fz := math.Floor(z)
	ix := int32(fx)
	iz := int32(fz)
	tx := x - fx
	tz := z - fz

	v00 := n.lattice(ix, iz)
	v10 := n.lattice(ix+1, iz)
	v01 := n.lattice(ix, iz+1)
	v11 := n.lattice(ix+1, iz+1)

	near := Interpolate(v00, v10, tx)
	far := Interpolate(v01, v11, tx)
	return Interpolate(near, far, tz)
}

// lattice returns the pseudo-random value in (-1, 1] stored at (x, z).
func (n ValueNoise) lattice(x, z int32) float64 {
	h := x + z*57 + n.Seed*131
	h = (h << 13) ^ h
	return 1.0 - float64((h*(h*h*15731+789221)+1376312589)&0x7fffffff)/1073741824.0
}

// Interpolate blends a and b with a cosine curve. t is the fractional
// offset in [0, 1]; the curve has zero slope at both ends so adjacent
// lattice cells join smoothly.
func Interpolate(a, b, t float64) float64 {
	f := (1 - math.Cos(t*math.Pi)) * 0.5
	return a*(1-f) + b*f
}
