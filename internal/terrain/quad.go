package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Corner indexes a quad corner. Corners run counter-clockwise seen from
// above: NW at (x, z), SW at (x, z+size), SE at (x+size, z+size), NE at
// (x+size, z).
type Corner int

const (
	CornerNW Corner = iota
	CornerSW
	CornerSE
	CornerNE
)

// Direction indexes the eight grid neighbors of a quad. North is -Z,
// west is -X.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// offsets maps a Direction to its (di, dj) grid step.
var offsets = [8][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// cornerNeighbors lists, per corner, the diagonal neighbor followed by the
// two edge neighbors that share that corner.
var cornerNeighbors = [4][3]Direction{
	CornerNW: {NorthWest, North, West},
	CornerSW: {SouthWest, South, West},
	CornerSE: {SouthEast, East, South},
	CornerNE: {NorthEast, North, East},
}

// Neighbors holds the eight quads surrounding a quad, indexed by Direction.
type Neighbors [8]*Quad

// Quad is one terrain cell: four corner points, a unit face normal, and
// optionally four smoothed vertex normals.
type Quad struct {
	Corners       [4]math.Vec3
	FaceNormal    math.Vec3
	VertexNormals [4]math.Vec3

	// HasVertexNormals is false until ComputeVertexNormals runs; Geometry
	// falls back to the face normal while it is false.
	HasVertexNormals bool
}

// NewQuad builds a quad from corners given in NW, SW, SE, NE order and
// computes its face normal.
func NewQuad(nw, sw, se, ne math.Vec3) Quad {
	q := Quad{Corners: [4]math.Vec3{nw, sw, se, ne}}
	edge1 := sw.Sub(nw)
	edge2 := se.Sub(nw)
	q.FaceNormal = edge1.Cross(edge2).Normalize()
	return q
}

// ComputeVertexNormal averages this quad's face normal with those of the
// three neighbors touching corner c, stores the result and returns it.
func (q *Quad) ComputeVertexNormal(c Corner, diagonal, adjacent1, adjacent2 *Quad) math.Vec3 {
	n := q.FaceNormal.
		Add(diagonal.FaceNormal).
		Add(adjacent1.FaceNormal).
		Add(adjacent2.FaceNormal).
		Div(4)
	q.VertexNormals[c] = n
	return n
}

// ComputeVertexNormals fills all four vertex normals from the eight
// surrounding quads.
func (q *Quad) ComputeVertexNormals(n Neighbors) {
	for c, dirs := range cornerNeighbors {
		q.ComputeVertexNormal(Corner(c), n[dirs[0]], n[dirs[1]], n[dirs[2]])
	}
	q.HasVertexNormals = true
}

// Geometry returns the four vertex records for this quad. Texture
// coordinates span [texX, texX+texSize] × [texY, texY+texSize].
func (q *Quad) Geometry(texX, texY, texSize float32) QuadGeometry {
	texCoords := [4][2]float32{
		{texX, texY},
		{texX + texSize, texY},
		{texX + texSize, texY + texSize},
		{texX, texY + texSize},
	}

	var g QuadGeometry
	for c := range q.Corners {
		normal := q.FaceNormal
		if q.HasVertexNormals {
			normal = q.VertexNormals[c]
		}
		g[c] = Vertex{
			Position: q.Corners[c].Array(),
			Normal:   normal.Array(),
			TexCoord: texCoords[c],
			Color:    MaterialColor(q.Corners[c].Y),
		}
	}
	return g
}
