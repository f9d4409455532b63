package lighting

// Material holds the reflectance used by lit draws. Colours are RGBA.
type Material struct {
	Diffuse  [4]float32
	Ambient  [4]float32
	Specular [4]float32
	Emissive [4]float32
	Power    float32
}

// DefaultMaterial is a white diffuse surface with no ambient response.
func DefaultMaterial() Material {
	return Material{Diffuse: [4]float32{1, 1, 1, 1}}
}

// Gray returns an opaque grey colour.
func Gray(v float32) [4]float32 {
	return [4]float32{v, v, v, 1}
}

// RGB returns the RGB part of a 0x00RRGGBB value as floats.
func RGB(rgb uint32) [3]float32 {
	return [3]float32{
		float32((rgb>>16)&0xff) / 255.0,
		float32((rgb>>8)&0xff) / 255.0,
		float32(rgb&0xff) / 255.0,
	}
}
