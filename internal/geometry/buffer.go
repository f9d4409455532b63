package geometry

import (
	"errors"
	"fmt"
)

// BufferID names a buffer owned by an Allocator. Zero is never a valid ID.
type BufferID uint32

// Allocator creates and destroys GPU buffers.
type Allocator interface {
	CreateVertexBuffer(layout Layout, data []float32, usage Usage) (BufferID, error)
	UpdateVertexBuffer(id BufferID, data []float32) error
	CreateIndexBuffer(indices []uint16) (BufferID, error)
	DeleteBuffer(id BufferID)
}

// ErrReleased is returned when a released resource is used.
var ErrReleased = errors.New("geometry: resource released")

// Resource is a mesh uploaded to an Allocator. Indices holds one buffer per
// mesh index set.
type Resource struct {
	Mesh    *Mesh
	Vertex  BufferID
	Indices []BufferID

	alloc    Allocator
	released bool
}

// Upload creates the vertex buffer and one index buffer per index set. On
// failure every buffer created so far is deleted.
func Upload(alloc Allocator, mesh *Mesh, usage Usage) (*Resource, error) {
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("upload: mesh has no vertices")
	}

	vb, err := alloc.CreateVertexBuffer(mesh.Layout, mesh.Layout.Pack(mesh.Vertices), usage)
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	r := &Resource{
		Mesh:   mesh,
		Vertex: vb,
		alloc:  alloc,
	}

	for i, set := range mesh.IndexSets {
		ib, err := alloc.CreateIndexBuffer(set.Indices)
		if err != nil {
			r.Release()
			return nil, fmt.Errorf("index buffer %d (%s): %w", i, set.Topology, err)
		}
		r.Indices = append(r.Indices, ib)
	}

	return r, nil
}

// Sync re-uploads the mesh vertices after they were mutated in place.
func (r *Resource) Sync() error {
	if r.released {
		return ErrReleased
	}
	return r.alloc.UpdateVertexBuffer(r.Vertex, r.Mesh.Layout.Pack(r.Mesh.Vertices))
}

// Release deletes all buffers. It is safe to call more than once.
func (r *Resource) Release() {
	if r.released {
		return
	}
	r.released = true
	for _, ib := range r.Indices {
		r.alloc.DeleteBuffer(ib)
	}
	r.alloc.DeleteBuffer(r.Vertex)
	r.Indices = nil
}

// Released reports whether Release was called.
func (r *Resource) Released() bool {
	return r.released
}
