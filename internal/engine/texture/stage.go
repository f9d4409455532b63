package texture

import "fmt"

// ID names a texture owned by the renderer. Zero means no texture.
type ID uint32

// Op is the colour operation of a texture stage. The values are shared with
// the fragment shader.
type Op int32

// Colour operations. Each combines the stage's texture with the result of
// the previous stage (the lit diffuse colour for stage 0).
const (
	OpDisable Op = iota
	OpSelectTexture
	OpModulate
	OpModulate2x
	OpModulate4x
	OpAdd
	OpSubtract
)

func (o Op) String() string {
	switch o {
	case OpDisable:
		return "disable"
	case OpSelectTexture:
		return "select"
	case OpModulate:
		return "modulate"
	case OpModulate2x:
		return "modulate2x"
	case OpModulate4x:
		return "modulate4x"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	default:
		return fmt.Sprintf("op(%d)", int32(o))
	}
}

// Apply combines one channel of texel t with current c the way the shader
// does, saturating to [0, 1].
func (o Op) Apply(t, c float32) float32 {
	var v float32
	switch o {
	case OpSelectTexture:
		v = t
	case OpModulate:
		v = t * c
	case OpModulate2x:
		v = 2 * t * c
	case OpModulate4x:
		v = 4 * t * c
	case OpAdd:
		v = t + c
	case OpSubtract:
		v = t - c
	default:
		v = c
	}
	return min(max(v, 0), 1)
}

// AlphaOp is the alpha operation of a texture stage.
type AlphaOp int32

// Alpha operations.
const (
	// AlphaDisable passes the previous alpha through.
	AlphaDisable AlphaOp = iota
	// AlphaModulate multiplies texture and previous alpha.
	AlphaModulate
	// AlphaBlendDiffuse blends texture alpha and previous alpha, weighted
	// by the diffuse alpha.
	AlphaBlendDiffuse
)

// Apply returns the stage alpha for texel alpha t, previous alpha c and
// diffuse alpha d.
func (o AlphaOp) Apply(t, c, d float32) float32 {
	switch o {
	case AlphaModulate:
		return t * c
	case AlphaBlendDiffuse:
		return t*d + c*(1-d)
	default:
		return c
	}
}

// Address is the texture coordinate addressing mode.
type Address int32

// Addressing modes.
const (
	Wrap Address = iota
	Mirror
	Clamp
)

func (a Address) String() string {
	switch a {
	case Wrap:
		return "wrap"
	case Mirror:
		return "mirror"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("address(%d)", int32(a))
	}
}

// Filter is the texture sampling filter.
type Filter int32

// Filters.
const (
	FilterPoint Filter = iota
	FilterLinear
	FilterAnisotropic
)

func (f Filter) String() string {
	switch f {
	case FilterPoint:
		return "point"
	case FilterLinear:
		return "linear"
	case FilterAnisotropic:
		return "anisotropic"
	default:
		return fmt.Sprintf("filter(%d)", int32(f))
	}
}

// ParseFilter converts a config filter name.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "point":
		return FilterPoint, nil
	case "linear":
		return FilterLinear, nil
	case "anisotropic":
		return FilterAnisotropic, nil
	default:
		return FilterLinear, fmt.Errorf("unknown texture filter %q", name)
	}
}

// Stage is one texture stage.
type Stage struct {
	Texture ID
	Op      Op
	Alpha   AlphaOp
	Address Address
}

// Active reports whether the stage contributes to the fragment.
func (s Stage) Active() bool {
	return s.Op != OpDisable && s.Texture != 0
}
