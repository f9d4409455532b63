package lighting

import stdmath "math"

// MaxLights is the maximum number of lights supported in shaders.
const MaxLights = 8

// Buffer holds the enabled lights for GPU upload.
type Buffer struct {
	Lights []Light
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]Light, 0, MaxLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
}

// Add appends l if it is enabled. Returns false if the buffer is full.
func (b *Buffer) Add(l Light) bool {
	if !l.Enabled {
		return true
	}
	if len(b.Lights) >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, l)
	return true
}

// Set replaces the buffer's contents with the enabled lights, keeping at
// most MaxLights. It returns how many enabled lights were dropped.
func (b *Buffer) Set(lights []Light) int {
	b.Clear()
	dropped := 0
	for _, l := range lights {
		if !b.Add(l) {
			dropped++
		}
	}
	return dropped
}

// Count returns the number of lights.
func (b *Buffer) Count() int {
	return len(b.Lights)
}

// Types returns light types padded to MaxLights.
func (b *Buffer) Types() []int32 {
	out := make([]int32, MaxLights)
	for i, l := range b.Lights {
		out[i] = int32(l.Type)
	}
	return out
}

// Positions returns positions as [x0, y0, z0, x1, ...].
func (b *Buffer) Positions() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		p := l.Position.Array()
		copy(out[i*3:], p[:])
	}
	return out
}

// Directions returns directions in the same layout as Positions.
func (b *Buffer) Directions() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		d := l.Direction.Array()
		copy(out[i*3:], d[:])
	}
	return out
}

// Diffuse returns diffuse colours as [r0, g0, b0, r1, ...].
func (b *Buffer) Diffuse() []float32 {
	return b.colors(func(l *Light) [3]float32 { return l.Diffuse })
}

// Specular returns specular colours.
func (b *Buffer) Specular() []float32 {
	return b.colors(func(l *Light) [3]float32 { return l.Specular })
}

// Ambient returns ambient colours.
func (b *Buffer) Ambient() []float32 {
	return b.colors(func(l *Light) [3]float32 { return l.Ambient })
}

func (b *Buffer) colors(get func(*Light) [3]float32) []float32 {
	out := make([]float32, MaxLights*3)
	for i := range b.Lights {
		c := get(&b.Lights[i])
		copy(out[i*3:], c[:])
	}
	return out
}

// Ranges returns ranges padded to MaxLights.
func (b *Buffer) Ranges() []float32 {
	out := make([]float32, MaxLights)
	for i, l := range b.Lights {
		out[i] = l.Range
	}
	return out
}

// Attenuations returns the three terms per light.
func (b *Buffer) Attenuations() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		copy(out[i*3:], l.Atten[:])
	}
	return out
}

// Cones returns cos(theta/2), cos(phi/2) and falloff per light.
func (b *Buffer) Cones() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range b.Lights {
		out[i*3+0] = float32(stdmath.Cos(float64(l.Theta) / 2))
		out[i*3+1] = float32(stdmath.Cos(float64(l.Phi) / 2))
		out[i*3+2] = l.Falloff
	}
	return out
}
