// Package lighting provides the directional sun used to shade terrain.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light placed by angles in degrees.
// Longitude is rotation around the Y axis, latitude is elevation from the horizon.
type Sun struct {
	Longitude float32
	Latitude  float32
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() [3]float32 {
	lon := mgl32.DegToRad(s.Longitude)
	lat := mgl32.DegToRad(s.Latitude)

	cosLat := math32.Cos(lat)
	return [3]float32{
		cosLat * math32.Sin(lon),
		math32.Sin(lat),
		cosLat * math32.Cos(lon),
	}
}

// LightDir returns the direction the light travels, from the sun into the scene.
func (s Sun) LightDir() [3]float32 {
	d := s.Direction()
	return [3]float32{-d[0], -d[1], -d[2]}
}

// Rotate moves the sun by the given angles. Latitude is clamped to [0, 90].
func (s *Sun) Rotate(dLongitude, dLatitude float32) {
	s.Longitude = math32.Mod(s.Longitude+dLongitude+360, 360)
	s.Latitude = mgl32.Clamp(s.Latitude+dLatitude, 0, 90)
}
