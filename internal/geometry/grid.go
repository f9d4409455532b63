package geometry

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrOddDimensions is returned by NewGrid when a dimension is not even.
var ErrOddDimensions = errors.New("geometry: grid dimensions must be even")

// MaxGridVertices keeps every index addressable by uint16.
const MaxGridVertices = math.MaxUint16 + 1

// Grid index sets, in the order they appear in Mesh.IndexSets.
const (
	GridTriangles = iota
	GridLines
	GridPoints
)

// Grid is a Length x Width sheet of vertices in the XZ plane. Rows run along
// X and columns along Z; vertex (row, col) sits at row*Width+col.
type Grid struct {
	Length int
	Width  int
	Mesh   *Mesh
}

// NewGrid builds the flat sheet and its triangle, line and point index sets.
// Both dimensions must be even and at least 2.
func NewGrid(length, width int) (*Grid, error) {
	if length < 2 || width < 2 {
		return nil, fmt.Errorf("grid %dx%d: too small", length, width)
	}
	if length%2 != 0 || width%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddDimensions, length, width)
	}
	if length*width > MaxGridVertices {
		return nil, fmt.Errorf("grid %dx%d: more than %d vertices", length, width, MaxGridVertices)
	}

	verts := make([]Vertex, length*width)
	for i := range length {
		x := float32(i-length/2) / float32(length)
		for j := range width {
			z := float32(j-width/2) / float32(width)
			uv := [2]float32{x - 0.5, z - 0.5}
			verts[i*width+j] = Vertex{
				Position:  [3]float32{x, 0, z},
				TexCoords: [MaxTexCoords][2]float32{uv, uv},
			}
		}
	}

	g := &Grid{
		Length: length,
		Width:  width,
		Mesh: &Mesh{
			Layout:    Layout{Normal: true, TexCoords: 2},
			Vertices:  verts,
			Primitive: Points,
			IndexSets: []IndexSet{
				{Topology: Triangles, Indices: gridTriangles(length, width)},
				{Topology: Lines, Indices: gridLines(length, width)},
				{Topology: Points, Indices: gridPoints(length, width)},
			},
		},
	}
	return g, nil
}

func gridTriangles(length, width int) []uint16 {
	idx := make([]uint16, 0, (length-1)*(width-1)*6)
	for i := range length - 1 {
		for j := range width - 1 {
			a := uint16(i*width + j)
			b := uint16(i*width + j + 1)
			c := uint16((i+1)*width + j)
			d := uint16((i+1)*width + j + 1)
			idx = append(idx, d, c, a, a, b, d)
		}
	}
	return idx
}

func gridLines(length, width int) []uint16 {
	idx := make([]uint16, 0, 2*((length-1)*width+length*(width-1)))
	for i := range length - 1 {
		for j := range width {
			idx = append(idx, uint16(i*width+j), uint16((i+1)*width+j))
		}
	}
	for i := range length {
		for j := range width - 1 {
			idx = append(idx, uint16(i*width+j), uint16(i*width+j+1))
		}
	}
	return idx
}

func gridPoints(length, width int) []uint16 {
	idx := make([]uint16, length*width)
	for i := range idx {
		idx[i] = uint16(i)
	}
	return idx
}

// WavePhase returns the wave phase in radians for a clock reading. It steps
// one degree every 10ms and wraps every 3.6s.
func WavePhase(now time.Duration) float64 {
	ms := now.Milliseconds()
	return float64((ms/10)%360) * (math.Pi / 180)
}

// RegenerateHeights bends the sheet into a wave travelling along Z. Only
// heights and normals change; every vertex of a column gets the same values.
func (g *Grid) RegenerateHeights(now time.Duration) {
	rads := WavePhase(now)
	verts := g.Mesh.Vertices

	for c := range g.Width {
		a := rads + float64(c*5)/float64(g.Width)
		height := float32(math.Sin(a) / 10)
		w := -math.Cos(a)
		d := math.Sqrt(w*w + 1)
		normal := [3]float32{0, float32(1 / d), float32(w / d)}

		for r := range g.Length {
			v := &verts[r*g.Width+c]
			v.Position[1] = height
			v.Normal = normal
		}
	}
}
