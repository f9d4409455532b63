package geometry

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/logger"
)

// ShapeID identifies a shape in a Catalog.
type ShapeID string

// Catalog maps shapes to the functions that build their meshes.
type Catalog map[ShapeID]func() *Mesh

// ErrUnknownShape is returned by Acquire for shapes missing from the catalog.
var ErrUnknownShape = errors.New("geometry: unknown shape")

// Registry shares one uploaded resource between every user of a shape. The
// first Acquire uploads, the last Release frees. It is not safe for
// concurrent use.
type Registry struct {
	alloc   Allocator
	catalog Catalog
	entries map[ShapeID]*entry
}

type entry struct {
	res  *Resource
	refs int
}

// Handle is one reference to a shared resource.
type Handle struct {
	reg      *Registry
	shape    ShapeID
	res      *Resource
	released bool
}

// NewRegistry creates an empty registry.
func NewRegistry(alloc Allocator, catalog Catalog) *Registry {
	return &Registry{
		alloc:   alloc,
		catalog: catalog,
		entries: make(map[ShapeID]*entry),
	}
}

// Acquire returns a handle to the shape's resource, uploading it if no other
// handle holds it.
func (r *Registry) Acquire(shape ShapeID) (*Handle, error) {
	if e, ok := r.entries[shape]; ok {
		e.refs++
		return &Handle{reg: r, shape: shape, res: e.res}, nil
	}

	build, ok := r.catalog[shape]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	res, err := Upload(r.alloc, build(), Static)
	if err != nil {
		return nil, fmt.Errorf("shape %s: %w", shape, err)
	}

	r.entries[shape] = &entry{res: res, refs: 1}
	logger.Debug("shared geometry allocated",
		zap.String("shape", string(shape)),
		zap.Int("vertices", len(res.Mesh.Vertices)))

	return &Handle{reg: r, shape: shape, res: res}, nil
}

// Refs returns the number of live handles for shape.
func (r *Registry) Refs(shape ShapeID) int {
	if e, ok := r.entries[shape]; ok {
		return e.refs
	}
	return 0
}

// Shapes returns the shapes that currently hold a resource, sorted.
func (r *Registry) Shapes() []ShapeID {
	out := make([]ShapeID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Close frees every resource regardless of outstanding handles. Handles
// released afterwards do nothing.
func (r *Registry) Close() {
	for id, e := range r.entries {
		logger.Debug("shared geometry dropped on close",
			zap.String("shape", string(id)),
			zap.Int("refs", e.refs))
		e.res.Release()
	}
	r.entries = make(map[ShapeID]*entry)
}

func (r *Registry) release(h *Handle) {
	e, ok := r.entries[h.shape]
	if !ok || e.res != h.res {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	e.res.Release()
	delete(r.entries, h.shape)
	logger.Debug("shared geometry freed", zap.String("shape", string(h.shape)))
}

// Resource returns the shared resource.
func (h *Handle) Resource() *Resource {
	return h.res
}

// Shape returns the shape the handle refers to.
func (h *Handle) Shape() ShapeID {
	return h.shape
}

// Release drops this reference. Calling it twice has no further effect.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.reg.release(h)
}
