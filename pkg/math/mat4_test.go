package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3Scale(t *testing.T) {
	got := Scale(2, 3, 4).TransformVec3(V3(1, 1, 1))
	want := V3(2, 3, 4)
	if got != want {
		t.Errorf("TransformVec3 with scale: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(math.Pi / 2).TransformVec3(V3(1, 0, 0))

	// A quarter yaw turns +X into -Z
	if !near(got, V3(0, 0, -1)) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestWorldScaleThenTranslate(t *testing.T) {
	m := World(V3(2, 1, 1), 0, 0, 0, V3(5, 0, 0))

	got := m.TransformVec3(V3(1, 0, 0))
	if !near(got, V3(7, 0, 0)) {
		t.Errorf("World scale+translate: got %v, want (7, 0, 0)", got)
	}
}

func TestWorldRotatesBeforeTranslating(t *testing.T) {
	m := World(V3(2, 1, 1), math.Pi/2, 0, 0, V3(5, 0, 0))

	// (1,0,0) -> scaled (2,0,0) -> yawed (0,0,-2) -> moved (5,0,-2).
	got := m.TransformVec3(V3(1, 0, 0))
	if !near(got, V3(5, 0, -2)) {
		t.Errorf("World with yaw: got %v, want (5, 0, -2)", got)
	}

	// Translating before rotating would swing the object around the origin.
	wrong := RotateY(math.Pi / 2).Mul(Translate(5, 0, 0)).Mul(Scale(2, 1, 1)).TransformVec3(V3(1, 0, 0))
	if near(got, wrong) {
		t.Errorf("World matched the reversed order: %v", wrong)
	}
}

func TestRotateYawPitchRollOrder(t *testing.T) {
	// Roll is applied first: +X rolls to +Y, pitch then takes +Y to +Z,
	// yaw then takes +Z to +X.
	m := RotateYawPitchRoll(math.Pi/2, math.Pi/2, math.Pi/2)
	got := m.TransformVec3(V3(1, 0, 0))
	if !near(got, V3(1, 0, 0)) {
		t.Errorf("YawPitchRoll order: got %v, want (1, 0, 0)", got)
	}

	got = RotateYawPitchRoll(0, 0, math.Pi/2).TransformVec3(V3(1, 0, 0))
	if !near(got, V3(0, 1, 0)) {
		t.Errorf("roll only: got %v, want (0, 1, 0)", got)
	}
}

func TestWorldMatchesMathGL(t *testing.T) {
	tests := []struct {
		name             string
		scale, pos       Vec3
		yaw, pitch, roll float32
	}{
		{"identity", V3(1, 1, 1), V3(0, 0, 0), 0, 0, 0},
		{"cube", V3(3, 3, 3), V3(0, 0, 0), 0.7, 1.1, -0.4},
		{"offset", V3(1, 2, 0.5), V3(-2, 0, 4), 2.5, -0.3, 1.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := World(tt.scale, tt.yaw, tt.pitch, tt.roll, tt.pos)

			want := mgl32.Translate3D(tt.pos.X, tt.pos.Y, tt.pos.Z).
				Mul4(mgl32.HomogRotate3DY(tt.yaw)).
				Mul4(mgl32.HomogRotate3DX(tt.pitch)).
				Mul4(mgl32.HomogRotate3DZ(tt.roll)).
				Mul4(mgl32.Scale3D(tt.scale.X, tt.scale.Y, tt.scale.Z))

			for i := range got {
				if abs(got[i]-want[i]) > 1e-5 {
					t.Fatalf("element %d: got %f, want %f", i, got[i], want[i])
				}
			}
		})
	}
}

func TestLookAtLH(t *testing.T) {
	view := LookAtLH(V3(0, 0, -6), V3(0, 0, 0), V3(0, 1, 0))

	// The eye sits at the view origin and the target is straight ahead on +Z.
	if got := view.TransformVec3(V3(0, 0, -6)); !near(got, V3(0, 0, 0)) {
		t.Errorf("eye in view space: got %v, want origin", got)
	}
	if got := view.TransformVec3(V3(0, 0, 0)); !near(got, V3(0, 0, 6)) {
		t.Errorf("target in view space: got %v, want (0, 0, 6)", got)
	}
	// Left-handed: world +X stays on the right.
	if got := view.TransformVec3(V3(1, 0, 0)); !near(got, V3(1, 0, 6)) {
		t.Errorf("+X in view space: got %v, want (1, 0, 6)", got)
	}
}

func TestPerspectiveLHDepthRange(t *testing.T) {
	p := PerspectiveLH(math.Pi/4, 4.0/3.0, 1, 100)

	if got := p.TransformVec3(V3(0, 0, 1)); abs(got.Z+1) > 1e-4 {
		t.Errorf("near plane depth: got %f, want -1", got.Z)
	}
	if got := p.TransformVec3(V3(0, 0, 100)); abs(got.Z-1) > 1e-4 {
		t.Errorf("far plane depth: got %f, want 1", got.Z)
	}
	if p[11] != 1 {
		t.Errorf("PerspectiveLH [11] should be 1, got %f", p[11])
	}
}

func TestNormalMatrixUndoesNonUniformScale(t *testing.T) {
	n := Scale(2, 1, 1).NormalMatrix()

	got := n.TransformDirection(V3(1, 0, 0))
	if !near(got, V3(0.5, 0, 0)) {
		t.Errorf("NormalMatrix: got %v, want (0.5, 0, 0)", got)
	}
}

func TestInverse(t *testing.T) {
	m := World(V3(2, 3, 4), 0.3, 0.2, 0.1, V3(1, -2, 3))
	got := m.Mul(m.Inverse())
	id := Identity()
	for i := range got {
		if abs(got[i]-id[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d: got %f, want %f", i, got[i], id[i])
		}
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 1e-4 && abs(a.Y-b.Y) < 1e-4 && abs(a.Z-b.Z) < 1e-4
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
