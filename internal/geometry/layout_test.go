package geometry

import "testing"

func TestLayoutStride(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   int
	}{
		{"position only", Layout{}, 3},
		{"colour", Layout{Color: true}, 7},
		{"one uv", Layout{TexCoords: 1}, 5},
		{"normal uv", Layout{Normal: true, TexCoords: 1}, 8},
		{"normal colour uv", Layout{Normal: true, Color: true, TexCoords: 1}, 12},
		{"two uv", Layout{TexCoords: 2}, 7},
		{"normal two uv", Layout{Normal: true, TexCoords: 2}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Stride(); got != tt.want {
				t.Errorf("Stride() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutOffsets(t *testing.T) {
	normal, color, tex := Layout{Normal: true, Color: true, TexCoords: 2}.Offsets()
	if normal != 3 || color != 6 || tex[0] != 10 || tex[1] != 12 {
		t.Errorf("Offsets() = %d %d %v", normal, color, tex)
	}

	normal, color, tex = Layout{TexCoords: 1}.Offsets()
	if normal != -1 || color != -1 || tex[0] != 3 || tex[1] != -1 {
		t.Errorf("Offsets() = %d %d %v", normal, color, tex)
	}
}

func TestPackInterleaves(t *testing.T) {
	l := Layout{Normal: true, Color: true, TexCoords: 1}
	v := Vertex{
		Position:  [3]float32{1, 2, 3},
		Normal:    [3]float32{0, 1, 0},
		Color:     0x80ff0000,
		TexCoords: [MaxTexCoords][2]float32{{0.25, 0.75}, {9, 9}},
	}

	got := l.Pack([]Vertex{v, v})
	if len(got) != 2*l.Stride() {
		t.Fatalf("len = %d, want %d", len(got), 2*l.Stride())
	}

	want := []float32{1, 2, 3, 0, 1, 0, 1, 0, 0, 128.0 / 255.0, 0.25, 0.75}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("element %d: got %v, want %v", i, got[i], w)
		}
	}
}

func TestColorFloats(t *testing.T) {
	c := ColorFloats(0x60ff8000)
	if c[0] != 1 || c[1] != 128.0/255.0 || c[2] != 0 || c[3] != 0x60/255.0 {
		t.Errorf("ColorFloats = %v", c)
	}
}

func TestTopologyNextCycles(t *testing.T) {
	p := Triangles
	seen := []Topology{p}
	for range 3 {
		p = p.Next()
		seen = append(seen, p)
	}
	want := []Topology{Triangles, Lines, Points, Triangles}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}

func TestTopologyPrimitives(t *testing.T) {
	if got := Triangles.Primitives(36); got != 12 {
		t.Errorf("Triangles.Primitives(36) = %d", got)
	}
	if got := TriangleFan.Primitives(6); got != 4 {
		t.Errorf("TriangleFan.Primitives(6) = %d", got)
	}
	if got := Lines.Primitives(10); got != 5 {
		t.Errorf("Lines.Primitives(10) = %d", got)
	}
	if got := Points.Primitives(7); got != 7 {
		t.Errorf("Points.Primitives(7) = %d", got)
	}
}
