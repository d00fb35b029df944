package terrain

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// FieldParams describes a rectangle of equally sized, adjacent segments.
// Segment holds the origin of the first segment and the size shared by
// all of them.
type FieldParams struct {
	Segment   Params
	SegmentsX int
	SegmentsZ int
}

// Field is a set of adjacent segments. Neighboring segments join without
// seams because they sample the same height function, padding included.
type Field struct {
	params   FieldParams
	segments []*Segment
}

// NewField builds every segment of the field, x outer and z inner.
func NewField(p FieldParams, heights HeightSampler) (*Field, error) {
	if p.SegmentsX <= 0 || p.SegmentsZ <= 0 {
		return nil, fmt.Errorf("%w: segment counts %dx%d must be positive", ErrInvalidParams, p.SegmentsX, p.SegmentsZ)
	}
	if err := p.Segment.Validate(); err != nil {
		return nil, err
	}

	f := &Field{params: p, segments: make([]*Segment, 0, p.SegmentsX*p.SegmentsZ)}
	for sx := range p.SegmentsX {
		for sz := range p.SegmentsZ {
			sp := p.Segment
			sp.cellX += sx * p.Segment.WidthQuads
			sp.cellZ += sz * p.Segment.HeightQuads
			seg, err := NewSegment(sp, heights)
			if err != nil {
				return nil, fmt.Errorf("segment (%d, %d): %w", sx, sz, err)
			}
			f.segments = append(f.segments, seg)
		}
	}

	logger.Info("terrain field built",
		zap.Int("segments", len(f.segments)),
		zap.Int("quads", f.QuadCount()),
	)
	return f, nil
}

// Segments returns the field's segments, x outer and z inner.
func (f *Field) Segments() []*Segment {
	return f.segments
}

// QuadCount returns the number of renderable quads across all segments.
func (f *Field) QuadCount() int {
	n := 0
	for _, s := range f.segments {
		n += s.QuadCount()
	}
	return n
}

// Geometry yields the quads of every segment in order.
func (f *Field) Geometry() iter.Seq[QuadGeometry] {
	return func(yield func(QuadGeometry) bool) {
		for _, s := range f.segments {
			for g := range s.Geometry() {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// Mesh merges all segments into one indexed mesh.
func (f *Field) Mesh() *Mesh {
	n := f.QuadCount()
	m := &Mesh{
		Vertices: make([]Vertex, 0, n*4),
		Indices:  make([]uint32, 0, n*6),
		Bounds:   emptyBounds(),
	}
	m.appendGeometry(f.Geometry())
	return m
}
