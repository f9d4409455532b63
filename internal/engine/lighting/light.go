// Package lighting models fixed-function vertex lights and materials.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/fixedfunc/pkg/math"
)

// Type selects how a light is evaluated.
type Type int32

// Light types. The values are shared with the vertex shader.
const (
	Point       Type = 1
	Spot        Type = 2
	Directional Type = 3
)

func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Spot:
		return "spot"
	case Directional:
		return "directional"
	default:
		return "invalid"
	}
}

// Light is one vertex light.
type Light struct {
	Type      Type
	Diffuse   [3]float32
	Specular  [3]float32
	Ambient   [3]float32
	Position  math.Vec3
	Direction math.Vec3 // unit length, spot and directional only
	Range     float32

	// Attenuation is 1 / (Atten[0] + Atten[1]*d + Atten[2]*d*d).
	Atten [3]float32

	// Theta is the inner cone angle and Phi the outer one, both full angles
	// in radians. Falloff shapes the transition between them.
	Theta   float32
	Phi     float32
	Falloff float32

	Enabled bool
}

// New returns an enabled white light of type t. Types outside the known
// set become point lights.
func New(t Type) Light {
	if t != Point && t != Spot && t != Directional {
		t = Point
	}
	return Light{
		Type:    t,
		Diffuse: [3]float32{1, 1, 1},
		Ambient: [3]float32{0.25, 0.25, 0.25},
		Range:   1000,
		Enabled: true,
	}
}

// SetDirection points the light along d.
func (l *Light) SetDirection(d math.Vec3) {
	l.Direction = d.Normalize()
}

// AimAt points the light from its position towards target.
func (l *Light) AimAt(target math.Vec3) {
	l.Direction = target.Sub(l.Position).Normalize()
}

// SetSpotProps sets the cone angles and falloff.
func (l *Light) SetSpotProps(theta, phi, falloff float32) {
	l.Theta = theta
	l.Phi = phi
	l.Falloff = falloff
}

// SetAttenuation sets the constant, linear and quadratic terms.
func (l *Light) SetAttenuation(constant, linear, quadratic float32) {
	l.Atten = [3]float32{constant, linear, quadratic}
}

// Attenuation returns the distance factor at d. Directional lights and
// lights with all-zero terms do not attenuate. Beyond Range it is zero.
func (l *Light) Attenuation(d float32) float32 {
	if l.Type == Directional {
		return 1
	}
	if d > l.Range {
		return 0
	}
	den := l.Atten[0] + l.Atten[1]*d + l.Atten[2]*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// SpotFactor returns the cone factor for rho, the cosine of the angle between
// the light direction and the ray from the light to the vertex.
func (l *Light) SpotFactor(rho float32) float32 {
	if l.Type != Spot {
		return 1
	}
	inner := float32(stdmath.Cos(float64(l.Theta) / 2))
	outer := float32(stdmath.Cos(float64(l.Phi) / 2))
	switch {
	case rho > inner:
		return 1
	case rho <= outer:
		return 0
	}
	f := (rho - outer) / (inner - outer)
	if l.Falloff == 1 {
		return f
	}
	return float32(stdmath.Pow(float64(f), float64(l.Falloff)))
}

// Reach returns the combined attenuation and cone factor at point p, the
// scale applied to every term of the light's contribution there.
func (l *Light) Reach(p math.Vec3) float32 {
	if !l.Enabled {
		return 0
	}
	if l.Type == Directional {
		return 1
	}
	ray := p.Sub(l.Position)
	d := ray.Length()
	a := l.Attenuation(d)
	if a == 0 || l.Type != Spot {
		return a
	}
	rho := float32(1)
	if d > 0 {
		rho = ray.Scale(1 / d).Dot(l.Direction)
	}
	return a * l.SpotFactor(rho)
}
