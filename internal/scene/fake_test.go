package scene

import (
	"errors"
	"fmt"
	"image"

	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
)

var errDeviceLost = errors.New("device lost")

// fakeBackend records what a scene asks of the renderer.
type fakeBackend struct {
	nextID   uint32
	buffers  map[geometry.BufferID][]float32
	indices  map[geometry.BufferID][]uint16
	textures map[texture.ID]image.Rectangle
	updates  int

	frames []Frame
	draws  []DrawCall

	failDrawAt  int // 1-based draw number that fails, 0 never
	failBuffers bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		buffers:  make(map[geometry.BufferID][]float32),
		indices:  make(map[geometry.BufferID][]uint16),
		textures: make(map[texture.ID]image.Rectangle),
	}
}

func (f *fakeBackend) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) CreateVertexBuffer(_ geometry.Layout, data []float32, _ geometry.Usage) (geometry.BufferID, error) {
	if f.failBuffers {
		return 0, errDeviceLost
	}
	id := geometry.BufferID(f.id())
	f.buffers[id] = append([]float32(nil), data...)
	return id, nil
}

func (f *fakeBackend) UpdateVertexBuffer(id geometry.BufferID, data []float32) error {
	if _, ok := f.buffers[id]; !ok {
		return fmt.Errorf("buffer %d: not found", id)
	}
	f.buffers[id] = append([]float32(nil), data...)
	f.updates++
	return nil
}

func (f *fakeBackend) CreateIndexBuffer(indices []uint16) (geometry.BufferID, error) {
	if f.failBuffers {
		return 0, errDeviceLost
	}
	id := geometry.BufferID(f.id())
	f.indices[id] = append([]uint16(nil), indices...)
	return id, nil
}

func (f *fakeBackend) DeleteBuffer(id geometry.BufferID) {
	delete(f.buffers, id)
	delete(f.indices, id)
}

func (f *fakeBackend) CreateTexture(img *image.RGBA) (texture.ID, error) {
	id := texture.ID(f.id())
	f.textures[id] = img.Bounds()
	return id, nil
}

func (f *fakeBackend) DeleteTexture(id texture.ID) {
	delete(f.textures, id)
}

func (f *fakeBackend) BeginFrame(fr *Frame) error {
	f.frames = append(f.frames, *fr)
	return nil
}

func (f *fakeBackend) Draw(dc *DrawCall) error {
	if f.failDrawAt > 0 && len(f.draws)+1 == f.failDrawAt {
		f.failDrawAt = 0
		return errDeviceLost
	}
	f.draws = append(f.draws, *dc)
	return nil
}

// live returns how many buffers and textures are still allocated.
func (f *fakeBackend) live() int {
	return len(f.buffers) + len(f.indices) + len(f.textures)
}
