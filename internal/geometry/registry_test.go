package geometry

import (
	"errors"
	"testing"
)

func TestRegistrySharesOneBuffer(t *testing.T) {
	alloc := newFakeAllocator()
	reg := NewRegistry(alloc, DefaultCatalog())

	var handles []*Handle
	for range 5 {
		h, err := reg.Acquire(ShapeTexturedCube)
		if err != nil {
			t.Fatalf("Acquire: %v", err)
		}
		handles = append(handles, h)
	}

	if alloc.creates != 1 {
		t.Fatalf("5 acquires created %d buffers, want 1", alloc.creates)
	}
	if got := reg.Refs(ShapeTexturedCube); got != 5 {
		t.Errorf("Refs = %d, want 5", got)
	}
	for _, h := range handles[1:] {
		if h.Resource() != handles[0].Resource() {
			t.Fatal("handles do not share a resource")
		}
	}

	for _, h := range handles[:4] {
		h.Release()
	}
	if alloc.deletes != 0 {
		t.Errorf("buffer deleted with one handle left")
	}
	if handles[4].Resource().Released() {
		t.Error("resource released with one handle left")
	}

	handles[4].Release()
	if alloc.deletes != 1 || alloc.liveCount() != 0 {
		t.Errorf("last release: deletes=%d live=%d", alloc.deletes, alloc.liveCount())
	}
	if got := reg.Refs(ShapeTexturedCube); got != 0 {
		t.Errorf("Refs after last release = %d", got)
	}

	h, err := reg.Acquire(ShapeTexturedCube)
	if err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	if alloc.creates != 2 {
		t.Errorf("re-acquire did not allocate again: creates=%d", alloc.creates)
	}
	if h.Resource() == handles[0].Resource() {
		t.Error("re-acquire reused a freed resource")
	}
}

func TestHandleReleaseIsIdempotent(t *testing.T) {
	alloc := newFakeAllocator()
	reg := NewRegistry(alloc, DefaultCatalog())

	a, _ := reg.Acquire(ShapePyramid)
	b, _ := reg.Acquire(ShapePyramid)

	a.Release()
	a.Release()

	if got := reg.Refs(ShapePyramid); got != 1 {
		t.Fatalf("double release dropped two refs: %d", got)
	}
	b.Release()
	if alloc.liveCount() != 0 {
		t.Errorf("buffer still live")
	}
}

func TestRegistryShapesAreIndependent(t *testing.T) {
	alloc := newFakeAllocator()
	reg := NewRegistry(alloc, DefaultCatalog())

	cube, _ := reg.Acquire(ShapeColoredCube)
	wall, _ := reg.Acquire(ShapeWall)

	// Colored cube has a vertex and an index buffer.
	if alloc.liveCount() != 3 {
		t.Fatalf("live buffers = %d, want 3", alloc.liveCount())
	}

	cube.Release()
	if reg.Refs(ShapeWall) != 1 || alloc.liveCount() != 1 {
		t.Errorf("releasing cube affected wall")
	}
	wall.Release()

	if len(reg.Shapes()) != 0 {
		t.Errorf("Shapes() = %v, want empty", reg.Shapes())
	}
}

func TestRegistryUnknownShape(t *testing.T) {
	reg := NewRegistry(newFakeAllocator(), DefaultCatalog())

	_, err := reg.Acquire("teapot")
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}

func TestRegistryPropagatesAllocationFailure(t *testing.T) {
	alloc := newFakeAllocator()
	alloc.failAfter = 2 // vertex buffer succeeds, index buffer fails
	reg := NewRegistry(alloc, DefaultCatalog())

	_, err := reg.Acquire(ShapeColoredCube)
	if !errors.Is(err, errOutOfMemory) {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if alloc.liveCount() != 0 {
		t.Errorf("partial upload leaked %d buffers", alloc.liveCount())
	}
	if reg.Refs(ShapeColoredCube) != 0 {
		t.Error("failed acquire left an entry")
	}

	alloc.failAfter = 0
	if _, err := reg.Acquire(ShapeColoredCube); err != nil {
		t.Errorf("acquire after failure: %v", err)
	}
}

func TestRegistryClose(t *testing.T) {
	alloc := newFakeAllocator()
	reg := NewRegistry(alloc, DefaultCatalog())

	h, _ := reg.Acquire(ShapeLitCube)
	reg.Acquire(ShapeTintedCube)

	reg.Close()
	if alloc.liveCount() != 0 {
		t.Errorf("Close left %d buffers", alloc.liveCount())
	}

	deletes := alloc.deletes
	h.Release()
	if alloc.deletes != deletes {
		t.Error("release after Close deleted again")
	}
}

func TestResourceSync(t *testing.T) {
	alloc := newFakeAllocator()
	res, err := Upload(alloc, Wall(), Dynamic)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	res.Mesh.Vertices[0].TexCoords[1] = [2]float32{3, 4}
	if err := res.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	data := alloc.live[res.Vertex]
	// Second uv set of vertex 0 sits after position and first uv.
	if data[5] != 3 || data[6] != 4 {
		t.Errorf("synced data = %v", data[:7])
	}

	res.Release()
	if err := res.Sync(); !errors.Is(err, ErrReleased) {
		t.Errorf("Sync after Release: %v", err)
	}
}
