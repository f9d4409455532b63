// Package geometry builds vertex data for the demo shapes and manages the GPU
// buffers that hold it.
package geometry

// Topology is the primitive type used to interpret vertices or indices.
type Topology int

// Supported topologies.
const (
	Triangles Topology = iota
	Lines
	Points
	TriangleFan
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	case TriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// Next cycles triangles, lines and points.
func (t Topology) Next() Topology {
	switch t {
	case Triangles:
		return Lines
	case Lines:
		return Points
	default:
		return Triangles
	}
}

// Primitives returns how many primitives n vertices or indices form.
func (t Topology) Primitives(n int) int {
	switch t {
	case Triangles:
		return n / 3
	case Lines:
		return n / 2
	case TriangleFan:
		if n < 3 {
			return 0
		}
		return n - 2
	default:
		return n
	}
}

// MaxTexCoords is the number of texture coordinate sets a vertex can carry.
const MaxTexCoords = 2

// Layout describes which attributes a vertex buffer interleaves. Position is
// always present and comes first, followed by normal, colour and texture
// coordinate sets in that order.
type Layout struct {
	Normal    bool
	Color     bool
	TexCoords int // 0 to MaxTexCoords
}

// Attribute sizes in floats.
const (
	PositionSize = 3
	NormalSize   = 3
	ColorSize    = 4
	TexCoordSize = 2
)

// Stride returns the size of one vertex in floats.
func (l Layout) Stride() int {
	n := PositionSize
	if l.Normal {
		n += NormalSize
	}
	if l.Color {
		n += ColorSize
	}
	return n + l.TexCoords*TexCoordSize
}

// Offsets returns the float offset of each optional attribute, or -1 when
// the layout does not carry it.
func (l Layout) Offsets() (normal, color int, tex [MaxTexCoords]int) {
	off := PositionSize
	normal, color = -1, -1
	tex = [MaxTexCoords]int{-1, -1}
	if l.Normal {
		normal = off
		off += NormalSize
	}
	if l.Color {
		color = off
		off += ColorSize
	}
	for i := 0; i < l.TexCoords && i < MaxTexCoords; i++ {
		tex[i] = off
		off += TexCoordSize
	}
	return normal, color, tex
}

// Vertex is the superset of every attribute the demos use. Layout decides
// which fields are packed.
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	Color     uint32 // 0xAARRGGBB
	TexCoords [MaxTexCoords][2]float32
}

// Pack interleaves vertices according to the layout.
func (l Layout) Pack(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*l.Stride())
	for i := range vertices {
		v := &vertices[i]
		out = append(out, v.Position[:]...)
		if l.Normal {
			out = append(out, v.Normal[:]...)
		}
		if l.Color {
			c := ColorFloats(v.Color)
			out = append(out, c[:]...)
		}
		for t := 0; t < l.TexCoords && t < MaxTexCoords; t++ {
			out = append(out, v.TexCoords[t][:]...)
		}
	}
	return out
}

// ColorFloats converts a 0xAARRGGBB colour to RGBA floats in [0, 1].
func ColorFloats(argb uint32) [4]float32 {
	return [4]float32{
		float32((argb>>16)&0xff) / 255.0,
		float32((argb>>8)&0xff) / 255.0,
		float32(argb&0xff) / 255.0,
		float32((argb>>24)&0xff) / 255.0,
	}
}
