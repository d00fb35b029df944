// Package terrain builds fractal terrain segments: a padded grid of quads
// carrying face normals and smoothed per-vertex normals, flattened into
// vertex records for a renderer.
package terrain

// Vertex is one rendered terrain vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Color    [4]float32
}

// QuadGeometry holds the four vertices of one quad in corner order
// (NW, SW, SE, NE).
type QuadGeometry [4]Vertex

// Mesh holds indexed terrain geometry ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// HeightSampler returns the terrain height at a world XZ position.
type HeightSampler interface {
	Height(x, z float32) float32
}

// HeightFunc adapts an ordinary function to HeightSampler.
type HeightFunc func(x, z float32) float32

// Height implements HeightSampler.
func (f HeightFunc) Height(x, z float32) float32 {
	return f(x, z)
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := range 3 {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
