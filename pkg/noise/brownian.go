package noise

// Defaults for Brownian.
const (
	DefaultOctaves     = 3
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
	DefaultFrequency   = 1.0
	DefaultMultiplier  = 6.0
)

// Brownian sums octaves of a Source into a fractal height field. Each
// octave multiplies frequency by Lacunarity and amplitude by Persistence.
type Brownian struct {
	Source      Source
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Frequency   float64 // frequency of the first octave
	Multiplier  float64 // scales the summed value into world units
}

// NewBrownian returns a generator over src with the default octave
// settings.
func NewBrownian(src Source) *Brownian {
	return &Brownian{
		Source:      src,
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
		Frequency:   DefaultFrequency,
		Multiplier:  DefaultMultiplier,
	}
}

// Value returns the unscaled octave sum at (x, z).
func (b *Brownian) Value(x, z float64) float64 {
	total := 0.0
	freq := b.Frequency
	amp := 1.0
	for range b.Octaves {
		total += b.Source.Noise2D(x*freq, z*freq) * amp
		freq *= b.Lacunarity
		amp *= b.Persistence
	}
	return total
}

// Height returns the terrain height in world units at (x, z).
func (b *Brownian) Height(x, z float32) float32 {
	return float32(b.Value(float64(x), float64(z)) * b.Multiplier)
}

// Amplitude returns the largest absolute height Height can produce for a
// source bounded by [-1, 1].
func (b *Brownian) Amplitude() float64 {
	sum := 0.0
	amp := 1.0
	for range b.Octaves {
		sum += amp
		amp *= b.Persistence
	}
	return sum * b.Multiplier
}
