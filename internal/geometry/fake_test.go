package geometry

import "errors"

var errOutOfMemory = errors.New("out of video memory")

// fakeAllocator records buffers in memory. failAfter, when positive, makes
// the n-th create call fail.
type fakeAllocator struct {
	next      BufferID
	live      map[BufferID][]float32
	index     map[BufferID][]uint16
	creates   int
	updates   int
	deletes   int
	failAfter int
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{
		live:  make(map[BufferID][]float32),
		index: make(map[BufferID][]uint16),
	}
}

func (f *fakeAllocator) fail() bool {
	f.creates++
	return f.failAfter > 0 && f.creates >= f.failAfter
}

func (f *fakeAllocator) CreateVertexBuffer(_ Layout, data []float32, _ Usage) (BufferID, error) {
	if f.fail() {
		return 0, errOutOfMemory
	}
	f.next++
	f.live[f.next] = append([]float32(nil), data...)
	return f.next, nil
}

func (f *fakeAllocator) UpdateVertexBuffer(id BufferID, data []float32) error {
	if _, ok := f.live[id]; !ok {
		return errors.New("no such buffer")
	}
	f.updates++
	f.live[id] = append([]float32(nil), data...)
	return nil
}

func (f *fakeAllocator) CreateIndexBuffer(indices []uint16) (BufferID, error) {
	if f.fail() {
		return 0, errOutOfMemory
	}
	f.next++
	f.index[f.next] = append([]uint16(nil), indices...)
	return f.next, nil
}

func (f *fakeAllocator) DeleteBuffer(id BufferID) {
	f.deletes++
	delete(f.live, id)
	delete(f.index, id)
}

func (f *fakeAllocator) liveCount() int {
	return len(f.live) + len(f.index)
}
