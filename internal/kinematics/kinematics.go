// Package kinematics integrates yaw, pitch and roll under constant angular
// acceleration.
//
// Angles are radians and are never wrapped: under a non-zero acceleration
// they grow without bound.
package kinematics

import "time"

// Axis is the state of one rotational axis.
type Axis struct {
	Angle        float32 // radians
	Velocity     float32 // radians per second
	Acceleration float32 // radians per second squared
}

// Set replaces all three values at once.
func (a *Axis) Set(angle, velocity, acceleration float32) {
	a.Angle = angle
	a.Velocity = velocity
	a.Acceleration = acceleration
}

// Step advances a by t seconds.
func Step(a Axis, t float32) Axis {
	a.Angle += a.Velocity*t + 0.5*a.Acceleration*t*t
	a.Velocity += a.Acceleration * t
	return a
}

// Rotation holds the three axes of an object and the clock reading of its
// previous update.
type Rotation struct {
	Yaw   Axis
	Pitch Axis
	Roll  Axis

	last    time.Duration
	started bool
}

// Advance integrates every axis from the previous call to now and returns the
// elapsed time. The first call only records now as the baseline and moves
// nothing. now must come from a monotonic clock.
func (r *Rotation) Advance(now time.Duration) time.Duration {
	if !r.started {
		r.started = true
		r.last = now
		return 0
	}

	elapsed := now - r.last
	r.last = now

	t := float32(elapsed.Seconds())
	r.Yaw = Step(r.Yaw, t)
	r.Pitch = Step(r.Pitch, t)
	r.Roll = Step(r.Roll, t)
	return elapsed
}

// Started reports whether Advance has recorded a baseline.
func (r *Rotation) Started() bool {
	return r.started
}

// Reset forgets the baseline so the next Advance applies no motion.
// The axes are left as they are.
func (r *Rotation) Reset() {
	r.started = false
	r.last = 0
}

// Angles returns yaw, pitch and roll.
func (r *Rotation) Angles() (yaw, pitch, roll float32) {
	return r.Yaw.Angle, r.Pitch.Angle, r.Roll.Angle
}
