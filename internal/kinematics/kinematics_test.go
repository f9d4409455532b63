package kinematics

import (
	"math"
	"testing"
	"time"
)

func TestFirstAdvanceAppliesNoMotion(t *testing.T) {
	r := Rotation{}
	r.Yaw.Set(0.3, 5, 7)
	r.Pitch.Set(-1, 2, -3)

	if got := r.Advance(12 * time.Second); got != 0 {
		t.Errorf("first Advance elapsed = %v, want 0", got)
	}
	if r.Yaw.Angle != 0.3 || r.Pitch.Angle != -1 {
		t.Errorf("first Advance moved angles: yaw %v pitch %v", r.Yaw.Angle, r.Pitch.Angle)
	}
	if r.Yaw.Velocity != 5 {
		t.Errorf("first Advance changed velocity: %v", r.Yaw.Velocity)
	}
	if !r.Started() {
		t.Error("baseline not recorded")
	}

	// Baseline is 12s, so the next step is 1s long.
	r.Yaw.Set(0, 1, 0)
	if got := r.Advance(13 * time.Second); got != time.Second {
		t.Errorf("second Advance elapsed = %v, want 1s", got)
	}
	if math.Abs(float64(r.Yaw.Angle-1)) > 1e-6 {
		t.Errorf("yaw after 1s = %v, want 1", r.Yaw.Angle)
	}
}

func TestZeroTimestampIsAValidBaseline(t *testing.T) {
	r := Rotation{}
	r.Roll.Set(0, 1, 0)

	r.Advance(0)
	r.Advance(2 * time.Second)

	if math.Abs(float64(r.Roll.Angle-2)) > 1e-6 {
		t.Errorf("roll = %v, want 2", r.Roll.Angle)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name      string
		in        Axis
		t         float32
		wantAngle float32
		wantVel   float32
	}{
		{"constant velocity", Axis{Angle: 0.5, Velocity: 1}, 2, 2.5, 1},
		{"constant acceleration", Axis{Angle: 0.5, Acceleration: 2}, 1, 1.5, 2},
		{"deceleration", Axis{Velocity: 4, Acceleration: -2}, 2, 4, 0},
		{"zero time", Axis{Angle: 1, Velocity: 3, Acceleration: 9}, 0, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(tt.in, tt.t)
			if math.Abs(float64(got.Angle-tt.wantAngle)) > 1e-6 {
				t.Errorf("angle = %v, want %v", got.Angle, tt.wantAngle)
			}
			if math.Abs(float64(got.Velocity-tt.wantVel)) > 1e-6 {
				t.Errorf("velocity = %v, want %v", got.Velocity, tt.wantVel)
			}
			if got.Acceleration != tt.in.Acceleration {
				t.Errorf("acceleration changed to %v", got.Acceleration)
			}
		})
	}
}

func TestAdvanceUsesMilliseconds(t *testing.T) {
	r := Rotation{}
	r.Pitch.Set(0, 1, 0)

	r.Advance(1000 * time.Millisecond)
	r.Advance(1250 * time.Millisecond)

	if math.Abs(float64(r.Pitch.Angle-0.25)) > 1e-6 {
		t.Errorf("pitch after 250ms = %v, want 0.25", r.Pitch.Angle)
	}
}

func TestAnglesGrowWithoutBound(t *testing.T) {
	const accel = 0.01
	r := Rotation{}
	r.Yaw.Set(0, 0, accel)

	r.Advance(0)
	for i := 1; i <= 1000; i++ {
		r.Advance(time.Duration(i) * 10 * time.Second)
	}

	want := 0.5 * accel * 10000.0 * 10000.0
	got := float64(r.Yaw.Angle)
	if math.Abs(got-want)/want > 1e-3 {
		t.Errorf("yaw after 10000s = %v, want about %v", got, want)
	}
	if got < 2*math.Pi {
		t.Errorf("yaw %v was wrapped", got)
	}
}

func TestReset(t *testing.T) {
	r := Rotation{}
	r.Yaw.Set(1, 1, 0)
	r.Advance(time.Second)
	r.Advance(2 * time.Second)

	r.Reset()
	r.Advance(100 * time.Second)

	yaw, _, _ := r.Angles()
	if math.Abs(float64(yaw-2)) > 1e-6 {
		t.Errorf("yaw after Reset = %v, want 2", yaw)
	}
}
