package scene

import (
	"fmt"
	"time"

	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/pkg/math"
)

const lightMapStep = 0.01

// LightMap places a light map over the wall in wall texture space. X and Y
// are the centre, Size the side length; 1 covers the whole wall.
type LightMap struct {
	X, Y float32
	Size float32
	Op   texture.Op
}

// Wall is a textured quad with a movable light map on the second stage.
type Wall struct {
	Pose     Pose
	Texture  texture.ID
	LightTex texture.ID

	light LightMap
	dirty bool
	res   *geometry.Resource
}

// NewWall uploads a wall of the given height and width. The quad is flat,
// so the scale along Z is zero.
func NewWall(alloc geometry.Allocator, height, width float32, tex, lightTex texture.ID) (*Wall, error) {
	res, err := geometry.Upload(alloc, geometry.Wall(), geometry.Dynamic)
	if err != nil {
		return nil, fmt.Errorf("wall: %w", err)
	}
	pose := NewPose(math.Vec3{})
	pose.Scale = math.V3(width, height, 0)
	return &Wall{
		Pose:     pose,
		Texture:  tex,
		LightTex: lightTex,
		light:    LightMap{X: 0.5, Y: 0.5, Size: 1, Op: texture.OpModulate},
		dirty:    true,
		res:      res,
	}, nil
}

// LightMap returns the current placement.
func (w *Wall) LightMap() LightMap {
	return w.light
}

// Dirty reports whether texture coordinates are pending an update.
func (w *Wall) Dirty() bool {
	return w.dirty
}

// Grow enlarges the light map, wrapping to zero past 2.
func (w *Wall) Grow() {
	w.light.Size += lightMapStep
	if w.light.Size > 2 {
		w.light.Size = 0
	}
	w.dirty = true
}

// Shrink reduces the light map, wrapping to 2 below zero.
func (w *Wall) Shrink() {
	w.light.Size -= lightMapStep
	if w.light.Size < 0 {
		w.light.Size = 2
	}
	w.dirty = true
}

// MoveUp moves the light map up. Once it has left the top edge it comes
// back in from the bottom.
func (w *Wall) MoveUp() {
	l := &w.light
	l.Y += lightMapStep
	if l.Y-l.Size/2 > 1 {
		l.Y = -(l.Size / 2)
	}
	w.dirty = true
}

// MoveDown moves the light map down, wrapping to the top.
func (w *Wall) MoveDown() {
	l := &w.light
	l.Y -= lightMapStep
	if l.Y+l.Size/2 < 0 {
		l.Y = 1 + l.Size/2
	}
	w.dirty = true
}

// MoveLeft moves the light map left, wrapping to the right.
func (w *Wall) MoveLeft() {
	l := &w.light
	l.X -= lightMapStep
	if l.X+l.Size/2 < 0 {
		l.X = 1 + l.Size/2
	}
	w.dirty = true
}

// MoveRight moves the light map right, wrapping to the left.
func (w *Wall) MoveRight() {
	l := &w.light
	l.X += lightMapStep
	if l.X-l.Size/2 > 1 {
		l.X = -(l.Size / 2)
	}
	w.dirty = true
}

// SetOp selects how the light map combines with the wall texture.
func (w *Wall) SetOp(op texture.Op) {
	w.light.Op = op
}

// lightMapCoords returns the second texture coordinate set for the four
// wall corners. With clamped addressing only the light map square shows.
// A size of zero is drawn at the smallest step.
func lightMapCoords(l LightMap) [4][2]float32 {
	half := max(l.Size, lightMapStep) / 2
	right := (1 - l.X) / half
	left := 1 - l.X/half
	top := (1 - l.Y) / half
	bottom := 1 - l.Y/half
	return [4][2]float32{
		{right, top},
		{right, bottom},
		{left, bottom},
		{left, top},
	}
}

// Update rewrites the light map coordinates if the placement changed.
func (w *Wall) Update(time.Duration) error {
	if !w.dirty {
		return nil
	}
	uv := lightMapCoords(w.light)
	verts := w.res.Mesh.Vertices
	for i := range verts {
		verts[i].TexCoords[1] = uv[i]
	}
	if err := w.res.Sync(); err != nil {
		return fmt.Errorf("wall: %w", err)
	}
	w.dirty = false
	return nil
}

// Draw draws the wall with the light map on stage 1.
func (w *Wall) Draw(b Backend) error {
	return b.Draw(&DrawCall{
		World:    w.Pose.World(),
		Resource: w.res,
		IndexSet: -1,
		Stages: [2]texture.Stage{
			{Texture: w.Texture, Op: texture.OpModulate},
			{Texture: w.LightTex, Op: w.light.Op, Address: texture.Clamp},
		},
	})
}

// Release frees the wall's buffers.
func (w *Wall) Release() {
	w.res.Release()
}
