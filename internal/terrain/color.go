package terrain

import "github.com/Faultbox/midgard-terrain/pkg/noise"

// Height thresholds for the sand tint. Below SandMax a vertex is fully
// sand-tinted; from SandMin up it is plain grass.
const (
	SandMax = 4.0
	SandMin = 6.0
)

const sandRed = 0.7

// MaterialColor returns the RGBA material color for a vertex at height y.
// Only the red channel varies with height.
func MaterialColor(y float32) [4]float32 {
	color := [4]float32{0.0, 0.8, 0.2, 1.0}
	switch {
	case y < SandMax:
		color[0] = sandRed
	case y < SandMin:
		t := (float64(y) - SandMax) / (SandMin - SandMax)
		color[0] = float32(noise.Interpolate(sandRed, 0, t))
	}
	return color
}
