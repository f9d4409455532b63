package geometry

// Shapes in DefaultCatalog.
const (
	ShapePyramid      ShapeID = "pyramid"
	ShapeColoredCube  ShapeID = "cube.colored"
	ShapeTexturedCube ShapeID = "cube.textured"
	ShapeLitCube      ShapeID = "cube.lit"
	ShapeTintedCube   ShapeID = "cube.tinted"
	ShapeWall         ShapeID = "wall"
)

// DefaultCatalog returns every built-in shared shape.
func DefaultCatalog() Catalog {
	return Catalog{
		ShapePyramid:      Pyramid,
		ShapeColoredCube:  ColoredCube,
		ShapeTexturedCube: TexturedCube,
		ShapeLitCube:      LitCube,
		ShapeTintedCube:   TintedCube,
		ShapeWall:         Wall,
	}
}

// Pyramid is a four sided pyramid drawn as one fan with an open base.
func Pyramid() *Mesh {
	return &Mesh{
		Layout:    Layout{Color: true},
		Primitive: TriangleFan,
		Vertices: []Vertex{
			{Position: [3]float32{0, 0.75, 0}, Color: 0x00cccccc},
			{Position: [3]float32{-1, -0.5, -1}, Color: 0xff004400},
			{Position: [3]float32{-1, -0.5, 1}, Color: 0xff006600},
			{Position: [3]float32{1, -0.5, 1}, Color: 0xff004400},
			{Position: [3]float32{1, -0.5, -1}, Color: 0xff006600},
			{Position: [3]float32{-1, -0.5, -1}, Color: 0xff004400},
		},
	}
}

// ColoredCube is a unit cube with one colour per corner, drawn from eight
// shared vertices through an index list.
func ColoredCube() *Mesh {
	return &Mesh{
		Layout:    Layout{Color: true},
		Primitive: Triangles,
		Vertices: []Vertex{
			{Position: [3]float32{0.5, 0.5, 0.5}, Color: 0xffffffff},
			{Position: [3]float32{0.5, 0.5, -0.5}, Color: 0xff00ff00},
			{Position: [3]float32{0.5, -0.5, 0.5}, Color: 0xffff0000},
			{Position: [3]float32{0.5, -0.5, -0.5}, Color: 0xff0000ff},
			{Position: [3]float32{-0.5, 0.5, 0.5}, Color: 0xff0000ff},
			{Position: [3]float32{-0.5, 0.5, -0.5}, Color: 0xffff0000},
			{Position: [3]float32{-0.5, -0.5, 0.5}, Color: 0xff00ff00},
			{Position: [3]float32{-0.5, -0.5, -0.5}, Color: 0xffffffff},
		},
		IndexSets: []IndexSet{{
			Topology: Triangles,
			Indices: []uint16{
				3, 1, 0, 0, 2, 3,
				4, 5, 7, 7, 6, 4,
				1, 3, 5, 3, 7, 5,
				4, 2, 0, 4, 6, 2,
				0, 1, 5, 0, 5, 4,
				7, 2, 6, 7, 3, 2,
			},
		}},
	}
}

// cubeVertex is one row of the per-face cube table.
type cubeVertex struct {
	pos    [3]float32
	normal [3]float32
	color  uint32
	uv     [2]float32
}

// cubeFaces lists the 36 vertices of a unit cube, six per face, wound
// clockwise when seen from outside.
var cubeFaces = [36]cubeVertex{
	{[3]float32{-0.5, 0.5, 0.5}, [3]float32{-1, 0, 0}, 0x6000ff00, [2]float32{1, 1}},
	{[3]float32{-0.5, 0.5, -0.5}, [3]float32{-1, 0, 0}, 0x600000ff, [2]float32{1, 0}},
	{[3]float32{-0.5, -0.5, 0.5}, [3]float32{-1, 0, 0}, 0x60ffffff, [2]float32{0, 1}},
	{[3]float32{-0.5, -0.5, -0.5}, [3]float32{-1, 0, 0}, 0x60ff0000, [2]float32{0, 0}},
	{[3]float32{-0.5, -0.5, 0.5}, [3]float32{-1, 0, 0}, 0x60ffffff, [2]float32{0, 1}},
	{[3]float32{-0.5, 0.5, -0.5}, [3]float32{-1, 0, 0}, 0x600000ff, [2]float32{1, 0}},

	{[3]float32{0.5, 0.5, 0.5}, [3]float32{1, 0, 0}, 0x60ff0000, [2]float32{1, 1}},
	{[3]float32{0.5, -0.5, 0.5}, [3]float32{1, 0, 0}, 0x600000ff, [2]float32{0, 1}},
	{[3]float32{0.5, 0.5, -0.5}, [3]float32{1, 0, 0}, 0x60ffffff, [2]float32{1, 0}},
	{[3]float32{0.5, -0.5, -0.5}, [3]float32{1, 0, 0}, 0x6000ff00, [2]float32{0, 0}},
	{[3]float32{0.5, 0.5, -0.5}, [3]float32{1, 0, 0}, 0x60ffffff, [2]float32{1, 0}},
	{[3]float32{0.5, -0.5, 0.5}, [3]float32{1, 0, 0}, 0x600000ff, [2]float32{0, 1}},

	{[3]float32{0.5, 0.5, 0.5}, [3]float32{0, 1, 0}, 0x60ff0000, [2]float32{1, 1}},
	{[3]float32{0.5, 0.5, -0.5}, [3]float32{0, 1, 0}, 0x60ffffff, [2]float32{0, 1}},
	{[3]float32{-0.5, 0.5, 0.5}, [3]float32{0, 1, 0}, 0x6000ff00, [2]float32{1, 0}},
	{[3]float32{-0.5, 0.5, -0.5}, [3]float32{0, 1, 0}, 0x600000ff, [2]float32{0, 0}},
	{[3]float32{-0.5, 0.5, 0.5}, [3]float32{0, 1, 0}, 0x6000ff00, [2]float32{1, 0}},
	{[3]float32{0.5, 0.5, -0.5}, [3]float32{0, 1, 0}, 0x60ffffff, [2]float32{0, 1}},

	{[3]float32{0.5, -0.5, 0.5}, [3]float32{0, -1, 0}, 0x600000ff, [2]float32{1, 1}},
	{[3]float32{-0.5, -0.5, 0.5}, [3]float32{0, -1, 0}, 0x60ffffff, [2]float32{1, 0}},
	{[3]float32{0.5, -0.5, -0.5}, [3]float32{0, -1, 0}, 0x6000ff00, [2]float32{0, 1}},
	{[3]float32{-0.5, -0.5, -0.5}, [3]float32{0, -1, 0}, 0x60ff0000, [2]float32{0, 0}},
	{[3]float32{0.5, -0.5, -0.5}, [3]float32{0, -1, 0}, 0x6000ff00, [2]float32{0, 1}},
	{[3]float32{-0.5, -0.5, 0.5}, [3]float32{0, -1, 0}, 0x60ffffff, [2]float32{1, 0}},

	{[3]float32{0.5, 0.5, -0.5}, [3]float32{0, 0, -1}, 0x60ffffff, [2]float32{1, 1}},
	{[3]float32{0.5, -0.5, -0.5}, [3]float32{0, 0, -1}, 0x6000ff00, [2]float32{0, 1}},
	{[3]float32{-0.5, 0.5, -0.5}, [3]float32{0, 0, -1}, 0x600000ff, [2]float32{1, 0}},
	{[3]float32{-0.5, -0.5, -0.5}, [3]float32{0, 0, -1}, 0x60ff0000, [2]float32{0, 0}},
	{[3]float32{-0.5, 0.5, -0.5}, [3]float32{0, 0, -1}, 0x600000ff, [2]float32{1, 0}},
	{[3]float32{0.5, -0.5, -0.5}, [3]float32{0, 0, -1}, 0x6000ff00, [2]float32{0, 1}},

	{[3]float32{0.5, 0.5, 0.5}, [3]float32{0, 0, 1}, 0x60ff0000, [2]float32{1, 1}},
	{[3]float32{-0.5, 0.5, 0.5}, [3]float32{0, 0, 1}, 0x6000ff00, [2]float32{1, 0}},
	{[3]float32{0.5, -0.5, 0.5}, [3]float32{0, 0, 1}, 0x600000ff, [2]float32{0, 1}},
	{[3]float32{-0.5, -0.5, 0.5}, [3]float32{0, 0, 1}, 0x60ffffff, [2]float32{0, 0}},
	{[3]float32{0.5, -0.5, 0.5}, [3]float32{0, 0, 1}, 0x600000ff, [2]float32{0, 1}},
	{[3]float32{-0.5, 0.5, 0.5}, [3]float32{0, 0, 1}, 0x6000ff00, [2]float32{1, 0}},
}

func faceCube(layout Layout) *Mesh {
	verts := make([]Vertex, len(cubeFaces))
	for i, c := range cubeFaces {
		verts[i] = Vertex{
			Position:  c.pos,
			Normal:    c.normal,
			Color:     c.color,
			TexCoords: [MaxTexCoords][2]float32{c.uv},
		}
	}
	return &Mesh{Layout: layout, Vertices: verts, Primitive: Triangles}
}

// TexturedCube carries positions and one texture coordinate set.
func TexturedCube() *Mesh {
	return faceCube(Layout{TexCoords: 1})
}

// LitCube adds face normals to TexturedCube.
func LitCube() *Mesh {
	return faceCube(Layout{Normal: true, TexCoords: 1})
}

// TintedCube adds translucent per-vertex colours to LitCube.
func TintedCube() *Mesh {
	return faceCube(Layout{Normal: true, Color: true, TexCoords: 1})
}

// Wall is a unit quad in the XY plane with two texture coordinate sets. The
// second set is rewritten when the light map moves.
func Wall() *Mesh {
	quad := [4]struct{ x, y, u, v float32 }{
		{0.5, 0.5, 1, 1},
		{0.5, -0.5, 1, 0},
		{-0.5, -0.5, 0, 0},
		{-0.5, 0.5, 0, 1},
	}
	verts := make([]Vertex, len(quad))
	for i, q := range quad {
		uv := [2]float32{q.u, q.v}
		verts[i] = Vertex{
			Position:  [3]float32{q.x, q.y, 0},
			TexCoords: [MaxTexCoords][2]float32{uv, uv},
		}
	}
	return &Mesh{Layout: Layout{TexCoords: 2}, Vertices: verts, Primitive: TriangleFan}
}
