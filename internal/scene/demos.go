package scene

import (
	gomath "math"
	"time"

	"github.com/Faultbox/fixedfunc/internal/engine/camera"
	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/pkg/math"
)

type demo struct {
	title string
	build func(s *Scene) error
}

// Demo names in catalogue order.
const (
	DemoPyramid   = "pyramid"
	DemoCubes     = "cubes"
	DemoTextured  = "textured"
	DemoLit       = "lit"
	DemoBlended   = "blended"
	DemoFiltering = "filtering"
	DemoLightMap  = "lightmap"
	DemoFlag      = "flag"
)

var order = []string{
	DemoPyramid,
	DemoCubes,
	DemoTextured,
	DemoLit,
	DemoBlended,
	DemoFiltering,
	DemoLightMap,
	DemoFlag,
}

var demos = map[string]demo{
	DemoPyramid:   {"Spinning pyramid", buildPyramid},
	DemoCubes:     {"Coloured cubes", buildCubes},
	DemoTextured:  {"Textured cubes", buildTextured},
	DemoLit:       {"Lit cubes", buildLit},
	DemoBlended:   {"Alpha blended cubes", buildBlended},
	DemoFiltering: {"Texture filtering", buildFiltering},
	DemoLightMap:  {"Light-mapped wall", buildLightMap},
	DemoFlag:      {"Waving flag", buildFlag},
}

// Demos returns the demo names in catalogue order.
func Demos() []string {
	return append([]string(nil), order...)
}

// Cycle returns the demo step places after name, wrapping around the
// catalogue. Unknown names start from the first demo.
func Cycle(name string, step int) string {
	idx := 0
	for i, n := range order {
		if n == name {
			idx = i
			break
		}
	}
	n := len(order)
	return order[((idx+step)%n+n)%n]
}

var eyeDefault = math.V3(0, 1.5, -6)

// spin places an object and gives it constant angular velocities.
type spin struct {
	pos              math.Vec3
	yaw, pitch, roll float32 // velocities in radians per second
}

// fiveCubes are the five spinning cubes shared by several demos.
var fiveCubes = []spin{
	{pos: math.V3(2, 0, 0), yaw: 1, pitch: 1},
	{pos: math.V3(-2, 0, 0), yaw: -1, pitch: 1},
	{pos: math.V3(0, 0, 0), pitch: 1},
	{pos: math.V3(0, 2, 0), pitch: 1, roll: -1},
	{pos: math.V3(0, -2, 0), pitch: 1, roll: 1},
}

func (sp spin) pose() Pose {
	p := NewPose(sp.pos)
	p.Rotation.Yaw.Set(0, sp.yaw, 0)
	p.Rotation.Pitch.Set(0, sp.pitch, 0)
	p.Rotation.Roll.Set(0, sp.roll, 0)
	return p
}

func (s *Scene) addCubes(shape geometry.ShapeID, spins []spin, stages [2]texture.Stage) error {
	for _, sp := range spins {
		o, err := s.Object(shape, sp.pose())
		if err != nil {
			return err
		}
		o.Stages = stages
	}
	return nil
}

func modulate(tex texture.ID) [2]texture.Stage {
	return [2]texture.Stage{{Texture: tex, Op: texture.OpModulate, Alpha: texture.AlphaModulate}}
}

func blendDiffuse(tex texture.ID) [2]texture.Stage {
	return [2]texture.Stage{{Texture: tex, Op: texture.OpModulate, Alpha: texture.AlphaBlendDiffuse}}
}

func buildPyramid(s *Scene) error {
	// The fan is open at the bottom, so both sides are drawn.
	s.States.Cull = false
	p := NewPose(math.Vec3{})
	p.Rotation.Yaw.Set(0, 0.6, 0)
	_, err := s.Object(geometry.ShapePyramid, p)
	return err
}

func buildCubes(s *Scene) error {
	return s.addCubes(geometry.ShapeColoredCube, fiveCubes[:2], [2]texture.Stage{})
}

func buildTextured(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	return s.addCubes(geometry.ShapeTexturedCube, fiveCubes, modulate(tex))
}

func pointLight(pos math.Vec3) lighting.Light {
	l := lighting.New(lighting.Point)
	l.Position = pos
	l.Range = 15
	l.SetAttenuation(0.5, 0.1, 0.01)
	return l
}

func buildLit(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	s.States.Lighting = true
	s.States.Ambient = lighting.RGB(0x202020)
	s.Lights = []lighting.Light{pointLight(math.V3(0, 0, -10))}
	return s.addCubes(geometry.ShapeLitCube, fiveCubes, modulate(tex))
}

func buildBlended(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	s.States.Blend = true
	s.States.DepthTest = false
	s.States.Cull = false
	return s.addCubes(geometry.ShapeTintedCube, fiveCubes, blendDiffuse(tex))
}

func buildFiltering(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	s.Camera.Far = 200
	s.States.Filter = texture.FilterAnisotropic
	s.States.Ambient = lighting.RGB(0x404040)
	s.Lights = []lighting.Light{pointLight(math.V3(0, 0, -4))}

	pose := spin{yaw: 0.2, pitch: 0.2, roll: 0.2}.pose()
	pose.Scale = math.V3(3, 3, 3)
	o, err := s.Object(geometry.ShapeTintedCube, pose)
	if err != nil {
		return err
	}
	o.Stages = blendDiffuse(tex)

	filters := []texture.Filter{texture.FilterPoint, texture.FilterLinear, texture.FilterAnisotropic}
	for i, f := range filters {
		s.Bind(string(rune('1'+i)), f.String()+" filtering", func() { s.States.Filter = f })
	}
	s.Bind("B", "toggle alpha blending", func() {
		st := &s.States
		st.Blend = !st.Blend
		st.Cull = !st.Blend
		st.DepthTest = !st.Blend
	})
	s.Bind("L", "toggle lighting", func() {
		s.States.Lighting = !s.States.Lighting
	})
	return nil
}

func buildLightMap(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	lm, err := s.LightMapTexture()
	if err != nil {
		return err
	}
	s.Camera.Eye = math.V3(0, 0, -6)
	s.Camera.Far = 200

	w, err := NewWall(s.backend, 5, 5, tex, lm)
	if err != nil {
		return err
	}
	s.Add(w)

	s.Bind("W", "move light up", w.MoveUp)
	s.Bind("S", "move light down", w.MoveDown)
	s.Bind("A", "move light left", w.MoveLeft)
	s.Bind("D", "move light right", w.MoveRight)
	s.Bind("Q", "shrink light", w.Shrink)
	s.Bind("E", "grow light", w.Grow)

	ops := []texture.Op{
		texture.OpModulate,
		texture.OpModulate2x,
		texture.OpModulate4x,
		texture.OpAdd,
		texture.OpSubtract,
		texture.OpDisable,
	}
	for i, op := range ops {
		s.Bind(string(rune('1'+i)), op.String()+" light map", func() { w.SetOp(op) })
	}
	return nil
}

// flagOrbit is the camera path around the flag.
var flagOrbit = camera.Orbit{Radius: 1.2, Height: 1}

// flagAngle turns one degree every 40ms.
func flagAngle(now time.Duration) float32 {
	ms := now.Milliseconds()
	return float32((ms/40)%360) * (gomath.Pi / 180)
}

// Phase offsets of the three coloured spots.
var spotPhases = [3]float64{0, 2 * gomath.Pi / 3, 4 * gomath.Pi / 3}

// spotTarget is where coloured spot k points at orbit angle rot.
func spotTarget(rot float32, k int) math.Vec3 {
	r := float64(rot)
	ph := spotPhases[k]
	return math.V3(
		float32(gomath.Cos(2*r+ph)/5+gomath.Cos(r)/5),
		0,
		float32(gomath.Sin(r+ph)/5+gomath.Sin(r)/5),
	)
}

func buildFlag(s *Scene) error {
	tex, err := s.PrimaryTexture()
	if err != nil {
		return err
	}
	overlay, err := s.LightMapTexture()
	if err != nil {
		return err
	}

	s.Camera.Near = 0.1
	s.Camera.Far = 200
	flagOrbit.Apply(s.Camera, 0)
	s.States.Cull = false
	s.States.Lighting = true
	s.States.Specular = true

	white := lighting.New(lighting.Spot)
	white.Position = math.V3(0, 6, 0)
	white.AimAt(math.Vec3{})
	white.Range = 8
	white.SetSpotProps(0.1, 0.2, 0.2)
	white.Diffuse = [3]float32{0.25, 0.25, 0.25}
	s.Lights = append(s.Lights, white)

	colours := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for k, c := range colours {
		l := lighting.New(lighting.Spot)
		l.Position = math.V3(0, 3, 0)
		l.AimAt(spotTarget(0, k))
		l.Range = 15
		l.SetSpotProps(0.01, 0.2, 1)
		l.Diffuse = c
		l.Specular = c
		s.Lights = append(s.Lights, l)
	}

	f, err := NewFlag(s.backend, FlagSize, FlagSize, tex, overlay)
	if err != nil {
		return err
	}
	s.Add(f)

	s.OnUpdate(func(now time.Duration) {
		rot := flagAngle(now)
		flagOrbit.Apply(s.Camera, rot)
		for k := range colours {
			s.Lights[k+1].AimAt(spotTarget(rot, k))
		}
	})

	s.Bind("F1", "toggle primitive", f.TogglePrimitive)
	s.Bind("F2", "toggle white light", func() {
		s.Lights[0].Enabled = !s.Lights[0].Enabled
	})
	return nil
}
