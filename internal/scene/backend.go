// Package scene holds the demo scenes: what is drawn, with which render
// states, and how each scene reacts to keys and time.
package scene

import (
	"image"

	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/pkg/math"
)

// Backend renders frames. The OpenGL renderer implements it.
type Backend interface {
	geometry.Allocator

	CreateTexture(img *image.RGBA) (texture.ID, error)
	DeleteTexture(id texture.ID)

	// BeginFrame clears the target and applies the frame's states.
	BeginFrame(f *Frame) error
	Draw(dc *DrawCall) error
}

// States are the render states of a frame.
type States struct {
	Lighting  bool
	Specular  bool
	Blend     bool // source alpha for both source and destination factors
	DepthTest bool
	Cull      bool // cull counter-clockwise faces
	Filter    texture.Filter

	// Ambient is the global ambient light added to lit vertices.
	Ambient    [3]float32
	ClearColor [4]float32
}

// DefaultStates are depth tested, back-face culled and unlit.
func DefaultStates() States {
	return States{
		DepthTest: true,
		Cull:      true,
		Filter:    texture.FilterLinear,
	}
}

// Frame is everything a backend needs before the first draw.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	States     States
	Lights     *lighting.Buffer
}

// DrawCall draws one resource.
type DrawCall struct {
	World    math.Mat4
	Resource *geometry.Resource

	// IndexSet selects one of the mesh's index sets. -1 draws the mesh's
	// primitive over all vertices.
	IndexSet int

	Stages   [2]texture.Stage
	Material lighting.Material
}

// Topology returns the primitive type the call draws.
func (dc *DrawCall) Topology() geometry.Topology {
	m := dc.Resource.Mesh
	if dc.IndexSet < 0 || dc.IndexSet >= len(m.IndexSets) {
		return m.Primitive
	}
	return m.IndexSets[dc.IndexSet].Topology
}
