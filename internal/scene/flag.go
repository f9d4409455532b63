package scene

import (
	"fmt"
	"time"

	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/pkg/math"
)

// FlagSize is the number of grid vertices along each side of the flag.
const FlagSize = 32

// Flag is a waving grid with two added textures.
type Flag struct {
	Stages   [2]texture.Stage
	Material lighting.Material

	grid      *geometry.Grid
	res       *geometry.Resource
	primitive geometry.Topology
}

// NewFlag builds and uploads a length x width flag.
func NewFlag(alloc geometry.Allocator, length, width int, tex, overlay texture.ID) (*Flag, error) {
	grid, err := geometry.NewGrid(length, width)
	if err != nil {
		return nil, fmt.Errorf("flag: %w", err)
	}
	res, err := geometry.Upload(alloc, grid.Mesh, geometry.Dynamic)
	if err != nil {
		return nil, fmt.Errorf("flag: %w", err)
	}

	mat := lighting.DefaultMaterial()
	mat.Specular = [4]float32{0.25, 0.25, 0.25, 0}

	return &Flag{
		Stages: [2]texture.Stage{
			{Texture: tex, Op: texture.OpModulate, Address: texture.Mirror},
			{Texture: overlay, Op: texture.OpAdd, Address: texture.Mirror},
		},
		Material:  mat,
		grid:      grid,
		res:       res,
		primitive: geometry.Triangles,
	}, nil
}

// Grid returns the flag's grid.
func (f *Flag) Grid() *geometry.Grid {
	return f.grid
}

// Primitive returns the topology the flag is drawn with.
func (f *Flag) Primitive() geometry.Topology {
	return f.primitive
}

// TogglePrimitive cycles triangles, lines and points.
func (f *Flag) TogglePrimitive() {
	f.primitive = f.primitive.Next()
}

// Update bends the flag for the current time and re-uploads it.
func (f *Flag) Update(now time.Duration) error {
	f.grid.RegenerateHeights(now)
	if err := f.res.Sync(); err != nil {
		return fmt.Errorf("flag: %w", err)
	}
	return nil
}

// Draw draws the flag with the current primitive.
func (f *Flag) Draw(b Backend) error {
	set := geometry.GridTriangles
	switch f.primitive {
	case geometry.Lines:
		set = geometry.GridLines
	case geometry.Points:
		set = geometry.GridPoints
	}
	return b.Draw(&DrawCall{
		World:    math.Identity(),
		Resource: f.res,
		IndexSet: set,
		Stages:   f.Stages,
		Material: f.Material,
	})
}

// Release frees the flag's buffers.
func (f *Flag) Release() {
	f.res.Release()
}
