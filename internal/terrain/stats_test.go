package terrain

import "testing"

func TestSummarize(t *testing.T) {
	// Height rises one unit per quad along X: 0..8 across 8 quads.
	s, err := NewSegment(Params{OriginX: -1, WidthQuads: 8, HeightQuads: 2, QuadSize: 1}, HeightFunc(func(x, _ float32) float32 { return x }))
	if err != nil {
		t.Fatalf("NewSegment() error: %v", err)
	}

	st := Summarize(s.Geometry())
	if st.Quads != 16 || st.Vertices != 64 {
		t.Errorf("quads/vertices = %d/%d, want 16/64", st.Quads, st.Vertices)
	}
	if st.MinHeight != 0 || st.MaxHeight != 8 {
		t.Errorf("height range = [%v, %v], want [0, 8]", st.MinHeight, st.MaxHeight)
	}
	if st.Sand+st.Blend+st.Grass != st.Vertices {
		t.Errorf("band counts %d+%d+%d do not add up to %d", st.Sand, st.Blend, st.Grass, st.Vertices)
	}
	// Vertices at x = 0..3 are sand, 4..5 blend, 6..8 grass.
	if st.Sand == 0 || st.Blend == 0 || st.Grass == 0 {
		t.Errorf("expected every band to be populated, got %+v", st)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	st := Summarize(func(func(QuadGeometry) bool) {})
	if st != (Stats{}) {
		t.Errorf("Summarize(empty) = %+v, want zero", st)
	}
}
