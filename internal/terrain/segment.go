package terrain

import (
	"iter"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Segment is one finished terrain tile. It is immutable once built.
type Segment struct {
	grid *Grid
}

// NewSegment builds the padded grid for p and smooths the vertex normals of
// its interior. Invalid params are rejected before any sampling happens.
func NewSegment(p Params, heights HeightSampler) (*Segment, error) {
	g, err := BuildGrid(p, heights)
	if err != nil {
		return nil, err
	}
	s := &Segment{grid: WithVertexNormals(g)}

	x, z := p.Origin()
	logger.Debug("terrain segment built",
		zap.Float32("origin_x", x),
		zap.Float32("origin_z", z),
		zap.Int("width_quads", p.WidthQuads),
		zap.Int("height_quads", p.HeightQuads),
		zap.Float32("quad_size", p.QuadSize),
	)
	return s, nil
}

// Params returns the parameters the segment was built from.
func (s *Segment) Params() Params {
	return s.grid.Params()
}

// Grid returns the underlying padded grid.
func (s *Segment) Grid() *Grid {
	return s.grid
}

// QuadCount returns the number of renderable quads.
func (s *Segment) QuadCount() int {
	p := s.grid.Params()
	return p.WidthQuads * p.HeightQuads
}

// Quads yields the renderable quads, padding excluded.
func (s *Segment) Quads() iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		for _, q := range s.grid.Interior() {
			if !yield(q) {
				return
			}
		}
	}
}

// Geometry yields the vertex records of every renderable quad. Each quad
// maps the full texture.
func (s *Segment) Geometry() iter.Seq[QuadGeometry] {
	return func(yield func(QuadGeometry) bool) {
		for q := range s.Quads() {
			if !yield(q.Geometry(0, 0, 1)) {
				return
			}
		}
	}
}

// Mesh flattens the segment into an indexed triangle mesh, two triangles
// per quad.
func (s *Segment) Mesh() *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, s.QuadCount()*4),
		Indices:  make([]uint32, 0, s.QuadCount()*6),
		Bounds:   emptyBounds(),
	}
	m.appendGeometry(s.Geometry())
	return m
}

func (m *Mesh) appendGeometry(quads iter.Seq[QuadGeometry]) {
	for g := range quads {
		base := uint32(len(m.Vertices))
		for _, v := range g {
			updateBounds(&m.Bounds, v.Position)
		}
		m.Vertices = append(m.Vertices, g[:]...)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
}
