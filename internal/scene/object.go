package scene

import (
	"time"

	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/internal/kinematics"
	"github.com/Faultbox/fixedfunc/pkg/math"
)

// Drawable is anything a scene updates and draws each frame.
type Drawable interface {
	Update(now time.Duration) error
	Draw(b Backend) error
	Release()
}

// Pose is a position, a scale and a spinning orientation.
type Pose struct {
	Position math.Vec3
	Scale    math.Vec3
	Rotation kinematics.Rotation
}

// NewPose returns a unit-scale pose at p.
func NewPose(p math.Vec3) Pose {
	return Pose{Position: p, Scale: math.V3(1, 1, 1)}
}

// World composes the pose into a world matrix.
func (p *Pose) World() math.Mat4 {
	yaw, pitch, roll := p.Rotation.Angles()
	return math.World(p.Scale, yaw, pitch, roll, p.Position)
}

// Object is one instance of a shared shape.
type Object struct {
	Pose     Pose
	Stages   [2]texture.Stage
	Material lighting.Material

	handle *geometry.Handle
}

// NewObject acquires shape from the registry.
func NewObject(reg *geometry.Registry, shape geometry.ShapeID, pose Pose) (*Object, error) {
	h, err := reg.Acquire(shape)
	if err != nil {
		return nil, err
	}
	return &Object{
		Pose:     pose,
		Material: lighting.DefaultMaterial(),
		handle:   h,
	}, nil
}

// Update advances the object's rotation.
func (o *Object) Update(now time.Duration) error {
	o.Pose.Rotation.Advance(now)
	return nil
}

// Draw issues the object's draw call.
func (o *Object) Draw(b Backend) error {
	res := o.handle.Resource()
	set := -1
	if len(res.Mesh.IndexSets) > 0 {
		set = 0
	}
	return b.Draw(&DrawCall{
		World:    o.Pose.World(),
		Resource: res,
		IndexSet: set,
		Stages:   o.Stages,
		Material: o.Material,
	})
}

// Release gives the shape back to the registry.
func (o *Object) Release() {
	o.handle.Release()
}
