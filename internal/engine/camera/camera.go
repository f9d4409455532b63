// Package camera provides the view and projection for the demos.
package camera

import (
	gomath "math"

	"github.com/Faultbox/fixedfunc/pkg/math"
)

// Camera looks from Eye at Target through a left-handed perspective.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FovY   float32 // radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// New returns a camera at eye looking at the origin with a quarter-pi field
// of view and a 4:3 aspect.
func New(eye math.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Up:     math.V3(0, 1, 0),
		FovY:   gomath.Pi / 4,
		Aspect: 4.0 / 3.0,
		Near:   1,
		Far:    100,
	}
}

// ViewMatrix returns the world to view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAtLH(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the view to clip transform.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.PerspectiveLH(c.FovY, c.Aspect, c.Near, c.Far)
}

// Resize updates the aspect ratio for a new viewport. Zero heights are
// ignored.
func (c *Camera) Resize(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Orbit moves a camera around a vertical axis through Center.
type Orbit struct {
	Center math.Vec3
	Radius float32
	Height float32 // eye height above Center
}

// Position returns the eye position at angle radians. Angle zero is on +X
// and positive angles turn towards +Z.
func (o Orbit) Position(angle float32) math.Vec3 {
	s, c := gomath.Sincos(float64(angle))
	return math.Vec3{
		X: o.Center.X + o.Radius*float32(c),
		Y: o.Center.Y + o.Height,
		Z: o.Center.Z + o.Radius*float32(s),
	}
}

// Apply places cam on the orbit at angle, looking at the centre.
func (o Orbit) Apply(cam *Camera, angle float32) {
	cam.Eye = o.Position(angle)
	cam.Target = o.Center
}
