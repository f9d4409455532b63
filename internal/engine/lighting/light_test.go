package lighting

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/fixedfunc/pkg/math"
)

func TestNewDefaults(t *testing.T) {
	l := New(Spot)
	if l.Type != Spot {
		t.Errorf("type = %s, want spot", l.Type)
	}
	if l.Diffuse != [3]float32{1, 1, 1} {
		t.Errorf("diffuse = %v", l.Diffuse)
	}
	if l.Ambient != [3]float32{0.25, 0.25, 0.25} {
		t.Errorf("ambient = %v", l.Ambient)
	}
	if l.Range != 1000 {
		t.Errorf("range = %v", l.Range)
	}
	if !l.Enabled {
		t.Error("new lights should be enabled")
	}
}

func TestNewInvalidTypeFallsBackToPoint(t *testing.T) {
	for _, typ := range []Type{0, 4, 99, -1} {
		if got := New(typ).Type; got != Point {
			t.Errorf("New(%d).Type = %s, want point", typ, got)
		}
	}
}

func TestAimAtIsRelativeToPosition(t *testing.T) {
	l := New(Spot)
	l.Position = math.V3(0, 6, 0)
	l.AimAt(math.V3(0, 0, 0))

	if !near(l.Direction, math.V3(0, -1, 0)) {
		t.Errorf("direction = %v, want (0, -1, 0)", l.Direction)
	}

	l.SetDirection(math.V3(3, 0, 4))
	if !near(l.Direction, math.V3(0.6, 0, 0.8)) {
		t.Errorf("SetDirection not normalised: %v", l.Direction)
	}
}

func TestAttenuation(t *testing.T) {
	l := New(Point)
	l.Range = 15
	l.SetAttenuation(0.5, 0.1, 0.01)

	tests := []struct {
		d    float32
		want float32
	}{
		{0, 2},
		{4, 1 / (0.5 + 0.4 + 0.16)},
		{10, 1 / (0.5 + 1 + 1)},
		{16, 0},
	}
	for _, tt := range tests {
		if got := l.Attenuation(tt.d); abs(got-tt.want) > 1e-5 {
			t.Errorf("Attenuation(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}

	zero := New(Spot)
	if got := zero.Attenuation(5); got != 1 {
		t.Errorf("all-zero terms attenuate: %v", got)
	}

	dir := New(Directional)
	dir.SetAttenuation(100, 100, 100)
	if got := dir.Attenuation(5000); got != 1 {
		t.Errorf("directional attenuates: %v", got)
	}
}

func TestSpotFactor(t *testing.T) {
	l := New(Spot)
	l.SetSpotProps(0.2, 0.6, 1)

	inner := float32(stdmath.Cos(0.1))
	outer := float32(stdmath.Cos(0.3))
	mid := (inner + outer) / 2

	if got := l.SpotFactor(1); got != 1 {
		t.Errorf("on axis = %v, want 1", got)
	}
	if got := l.SpotFactor(outer - 0.01); got != 0 {
		t.Errorf("outside cone = %v, want 0", got)
	}
	if got := l.SpotFactor(mid); abs(got-0.5) > 1e-3 {
		t.Errorf("half way = %v, want 0.5", got)
	}

	l.Falloff = 2
	if got := l.SpotFactor(mid); abs(got-0.25) > 1e-3 {
		t.Errorf("falloff 2 half way = %v, want 0.25", got)
	}

	p := New(Point)
	if got := p.SpotFactor(-1); got != 1 {
		t.Errorf("point light cone factor = %v", got)
	}
}

func TestReach(t *testing.T) {
	l := New(Spot)
	l.Position = math.V3(0, 3, 0)
	l.Range = 15
	l.SetSpotProps(0.01, 0.2, 1)
	l.AimAt(math.V3(0, 0, 0))

	if got := l.Reach(math.V3(0, 0, 0)); got != 1 {
		t.Errorf("reach on axis = %v, want 1", got)
	}
	if got := l.Reach(math.V3(3, 0, 0)); got != 0 {
		t.Errorf("reach outside cone = %v, want 0", got)
	}

	l.Enabled = false
	if got := l.Reach(math.V3(0, 0, 0)); got != 0 {
		t.Errorf("disabled light reaches: %v", got)
	}
}

func TestRGB(t *testing.T) {
	c := RGB(0x204060)
	want := [3]float32{0x20 / 255.0, 0x40 / 255.0, 0x60 / 255.0}
	if c != want {
		t.Errorf("RGB = %v, want %v", c, want)
	}
}

func near(a, b math.Vec3) bool {
	return abs(a.X-b.X) < 1e-5 && abs(a.Y-b.Y) < 1e-5 && abs(a.Z-b.Z) < 1e-5
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
