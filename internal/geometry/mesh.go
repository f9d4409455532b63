package geometry

// IndexSet is one way of drawing a mesh's vertices.
type IndexSet struct {
	Topology Topology
	Indices  []uint16
}

// Mesh is CPU-side geometry. Meshes without index sets are drawn as
// Primitive over all vertices.
type Mesh struct {
	Layout    Layout
	Vertices  []Vertex
	Primitive Topology
	IndexSets []IndexSet
}

// Usage hints how often a buffer is rewritten.
type Usage int

const (
	// Static buffers are written once.
	Static Usage = iota
	// Dynamic buffers are rewritten every frame.
	Dynamic
)
