package lighting

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b [3]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > 1e-5 {
			return false
		}
	}
	return true
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want [3]float32
	}{
		{"zenith", Sun{Longitude: 0, Latitude: 90}, [3]float32{0, 1, 0}},
		{"horizon +Z", Sun{Longitude: 0, Latitude: 0}, [3]float32{0, 0, 1}},
		{"horizon +X", Sun{Longitude: 90, Latitude: 0}, [3]float32{1, 0, 0}},
		{"45 up toward -Z", Sun{Longitude: 180, Latitude: 45}, [3]float32{0, 0.70710677, -0.70710677}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sun.Direction()
			if !approx(got, tt.want) {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
			l := tt.sun.LightDir()
			if !approx(l, [3]float32{-tt.want[0], -tt.want[1], -tt.want[2]}) {
				t.Errorf("LightDir() = %v, want negated %v", l, tt.want)
			}
		})
	}
}

func TestSunRotate(t *testing.T) {
	s := Sun{Longitude: 350, Latitude: 80}
	s.Rotate(20, 20)
	if math32.Abs(s.Longitude-10) > 1e-4 {
		t.Errorf("Longitude = %v, want 10", s.Longitude)
	}
	if s.Latitude != 90 {
		t.Errorf("Latitude = %v, want clamped to 90", s.Latitude)
	}

	s.Rotate(-30, -100)
	if math32.Abs(s.Longitude-340) > 1e-4 {
		t.Errorf("Longitude = %v, want 340", s.Longitude)
	}
	if s.Latitude != 0 {
		t.Errorf("Latitude = %v, want clamped to 0", s.Latitude)
	}
}
