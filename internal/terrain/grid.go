package terrain

import (
	"errors"
	"fmt"
	"iter"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// padding is the number of extra cells added on each axis: one ghost ring
// around the visible tile so edge quads have a full 3×3 neighborhood.
const padding = 2

// ErrInvalidParams is returned when segment dimensions or quad size are not
// positive.
var ErrInvalidParams = errors.New("invalid terrain params")

// Params describes one rectangular terrain tile.
type Params struct {
	OriginX     float32
	OriginZ     float32
	WidthQuads  int // visible quads along X
	HeightQuads int // visible quads along Z
	QuadSize    float32

	// Lattice offset in quads from OriginX/OriginZ. Segments of a field
	// share the field origin and differ only here, so every lattice point
	// is computed from the same integer index and seams line up exactly.
	cellX, cellZ int
}

// Origin returns the world position of the padding cell (0, 0).
func (p Params) Origin() (x, z float32) {
	return p.latticeX(0), p.latticeZ(0)
}

func (p Params) latticeX(i int) float32 {
	return p.OriginX + float32(p.cellX+i)*p.QuadSize
}

func (p Params) latticeZ(j int) float32 {
	return p.OriginZ + float32(p.cellZ+j)*p.QuadSize
}

// Validate reports whether p describes a non-degenerate tile.
func (p Params) Validate() error {
	if p.WidthQuads <= 0 || p.HeightQuads <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidParams, p.WidthQuads, p.HeightQuads)
	}
	if !(p.QuadSize > 0) {
		return fmt.Errorf("%w: quad size %v must be positive", ErrInvalidParams, p.QuadSize)
	}
	return nil
}

// Grid is a flat (W+2)×(H+2) arena of quads indexed by (i, j), i along X
// and j along Z. Cells with 1 <= i <= W and 1 <= j <= H are the visible
// interior; the rest form the padding ring.
type Grid struct {
	params Params
	cols   int // W+2
	rows   int // H+2
	quads  []Quad
}

// BuildGrid samples heights for every lattice point of the padded grid and
// builds its quads with face normals. Vertex normals are not computed.
func BuildGrid(p Params, heights HeightSampler) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		params: p,
		cols:   p.WidthQuads + padding,
		rows:   p.HeightQuads + padding,
	}

	// Each lattice point is shared by up to four quads, so sample it once.
	lattice := make([]math.Vec3, (g.cols+1)*(g.rows+1))
	for i := 0; i <= g.cols; i++ {
		for j := 0; j <= g.rows; j++ {
			x := p.latticeX(i)
			z := p.latticeZ(j)
			lattice[i*(g.rows+1)+j] = math.Vec3{X: x, Y: heights.Height(x, z), Z: z}
		}
	}
	point := func(i, j int) math.Vec3 {
		return lattice[i*(g.rows+1)+j]
	}

	g.quads = make([]Quad, g.cols*g.rows)
	for i := range g.cols {
		for j := range g.rows {
			g.quads[g.index(i, j)] = NewQuad(
				point(i, j),
				point(i, j+1),
				point(i+1, j+1),
				point(i+1, j),
			)
		}
	}
	return g, nil
}

// WithVertexNormals returns a copy of g whose interior quads carry vertex
// normals averaged from their 3×3 neighborhood. Padding quads are copied
// unchanged. The result depends only on the face normals in g.
func WithVertexNormals(g *Grid) *Grid {
	out := &Grid{
		params: g.params,
		cols:   g.cols,
		rows:   g.rows,
		quads:  make([]Quad, len(g.quads)),
	}
	copy(out.quads, g.quads)

	for i := 1; i < g.cols-1; i++ {
		for j := 1; j < g.rows-1; j++ {
			var n Neighbors
			for d, off := range offsets {
				n[d] = g.cell(i+off[0], j+off[1])
			}
			out.cell(i, j).ComputeVertexNormals(n)
		}
	}
	return out
}

// Params returns the parameters the grid was built from.
func (g *Grid) Params() Params {
	return g.params
}

// Size returns the padded grid dimensions.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// At returns a copy of the quad at (i, j), including padding cells.
func (g *Grid) At(i, j int) Quad {
	return *g.cell(i, j)
}

// IsInterior reports whether (i, j) is a visible cell.
func (g *Grid) IsInterior(i, j int) bool {
	return i >= 1 && i < g.cols-1 && j >= 1 && j < g.rows-1
}

// Interior yields the visible quads with their grid indices, i outer and
// j inner.
func (g *Grid) Interior() iter.Seq2[[2]int, Quad] {
	return func(yield func([2]int, Quad) bool) {
		for i := 1; i < g.cols-1; i++ {
			for j := 1; j < g.rows-1; j++ {
				if !yield([2]int{i, j}, *g.cell(i, j)) {
					return
				}
			}
		}
	}
}

func (g *Grid) index(i, j int) int {
	return i*g.rows + j
}

func (g *Grid) cell(i, j int) *Quad {
	return &g.quads[g.index(i, j)]
}
