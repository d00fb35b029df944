package terrain

import "iter"

// Stats summarizes emitted terrain geometry.
type Stats struct {
	Quads     int
	Vertices  int
	MinHeight float32
	MaxHeight float32

	// Vertex counts per material band.
	Sand  int // below SandMax
	Blend int // SandMax to SandMin
	Grass int // SandMin and above
}

// Summarize walks quads and tallies heights and material bands.
func Summarize(quads iter.Seq[QuadGeometry]) Stats {
	s := Stats{MinHeight: 1e10, MaxHeight: -1e10}
	for g := range quads {
		s.Quads++
		for _, v := range g {
			s.Vertices++
			y := v.Position[1]
			s.MinHeight = min(s.MinHeight, y)
			s.MaxHeight = max(s.MaxHeight, y)
			switch {
			case y < SandMax:
				s.Sand++
			case y < SandMin:
				s.Blend++
			default:
				s.Grass++
			}
		}
	}
	if s.Quads == 0 {
		s.MinHeight, s.MaxHeight = 0, 0
	}
	return s
}
