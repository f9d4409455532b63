// Package renderer draws scenes with OpenGL, emulating a fixed-function
// pipeline with one shader program.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/shader"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/internal/logger"
	"github.com/Faultbox/fixedfunc/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width         int
	Height        int
	MaxAnisotropy float32
}

// Attribute locations shared with the vertex shader.
const (
	attrPosition = 0
	attrNormal   = 1
	attrColor    = 2
	attrTex0     = 3
)

type vertexBuffer struct {
	vao    uint32
	vbo    uint32
	layout geometry.Layout
	count  int32
	usage  geometry.Usage
}

type indexBuffer struct {
	ebo   uint32
	count int32
}

type samplerKey struct {
	filter  texture.Filter
	address texture.Address
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	vertices map[geometry.BufferID]*vertexBuffer
	indices  map[geometry.BufferID]*indexBuffer
	textures map[texture.ID]struct{}
	samplers map[samplerKey]uint32

	states scene.States
}

var (
	_ scene.Backend      = (*Renderer)(nil)
	_ geometry.Allocator = (*Renderer)(nil)
)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
	)

	program, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		program:  program,
		vertices: make(map[geometry.BufferID]*vertexBuffer),
		indices:  make(map[geometry.BufferID]*indexBuffer),
		textures: make(map[texture.ID]struct{}),
		samplers: make(map[samplerKey]uint32),
	}

	program.Use()
	program.SetInt("uTex0", 0)
	program.SetInt("uTex1", 1)

	// Faces wound clockwise on screen are front faces.
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer",
		zap.Int("vertex_buffers", len(r.vertices)),
		zap.Int("index_buffers", len(r.indices)),
		zap.Int("textures", len(r.textures)),
	)
	for id := range r.vertices {
		r.DeleteBuffer(id)
	}
	for id := range r.indices {
		r.DeleteBuffer(id)
	}
	for id := range r.textures {
		r.DeleteTexture(id)
	}
	for key, s := range r.samplers {
		gl.DeleteSamplers(1, &s)
		delete(r.samplers, key)
	}
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// CreateVertexBuffer uploads interleaved vertex data and records its
// attribute layout in a vertex array.
func (r *Renderer) CreateVertexBuffer(layout geometry.Layout, data []float32, usage geometry.Usage) (geometry.BufferID, error) {
	stride := layout.Stride()
	if len(data) == 0 || len(data)%stride != 0 {
		return 0, fmt.Errorf("vertex data of %d floats does not fit stride %d", len(data), stride)
	}

	vb := &vertexBuffer{layout: layout, count: int32(len(data) / stride), usage: usage}
	gl.GenVertexArrays(1, &vb.vao)
	gl.BindVertexArray(vb.vao)

	gl.GenBuffers(1, &vb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), glUsage(usage))

	strideBytes := int32(stride * 4)
	attrib := func(loc uint32, size int32, offset int) {
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, strideBytes, unsafe.Pointer(uintptr(offset*4)))
		gl.EnableVertexAttribArray(loc)
	}

	attrib(attrPosition, geometry.PositionSize, 0)
	normal, color, tex := layout.Offsets()
	if normal >= 0 {
		attrib(attrNormal, geometry.NormalSize, normal)
	}
	if color >= 0 {
		attrib(attrColor, geometry.ColorSize, color)
	}
	for i, off := range tex {
		if off >= 0 {
			attrib(uint32(attrTex0+i), geometry.TexCoordSize, off)
		}
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError("create vertex buffer"); err != nil {
		gl.DeleteBuffers(1, &vb.vbo)
		gl.DeleteVertexArrays(1, &vb.vao)
		return 0, err
	}

	id := geometry.BufferID(vb.vbo)
	r.vertices[id] = vb
	logger.Debug("vertex buffer created",
		zap.Uint32("vao", vb.vao),
		zap.Uint32("vbo", vb.vbo),
		zap.Int32("vertices", vb.count),
	)
	return id, nil
}

// UpdateVertexBuffer replaces a vertex buffer's contents.
func (r *Renderer) UpdateVertexBuffer(id geometry.BufferID, data []float32) error {
	vb, ok := r.vertices[id]
	if !ok {
		return fmt.Errorf("vertex buffer %d: not found", id)
	}
	stride := vb.layout.Stride()
	if len(data) == 0 || len(data)%stride != 0 {
		return fmt.Errorf("vertex buffer %d: %d floats do not fit stride %d", id, len(data), stride)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	n := int32(len(data) / stride)
	if n == vb.count {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, unsafe.Pointer(&data[0]))
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), glUsage(vb.usage))
		vb.count = n
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return glError("update vertex buffer")
}

// CreateIndexBuffer uploads 16-bit indices.
func (r *Renderer) CreateIndexBuffer(indices []uint16) (geometry.BufferID, error) {
	if len(indices) == 0 {
		return 0, fmt.Errorf("empty index buffer")
	}
	ib := &indexBuffer{count: int32(len(indices))}
	gl.GenBuffers(1, &ib.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if err := glError("create index buffer"); err != nil {
		gl.DeleteBuffers(1, &ib.ebo)
		return 0, err
	}
	id := geometry.BufferID(ib.ebo)
	r.indices[id] = ib
	return id, nil
}

// DeleteBuffer frees a vertex or index buffer. Unknown IDs are ignored.
func (r *Renderer) DeleteBuffer(id geometry.BufferID) {
	if vb, ok := r.vertices[id]; ok {
		gl.DeleteBuffers(1, &vb.vbo)
		gl.DeleteVertexArrays(1, &vb.vao)
		delete(r.vertices, id)
		return
	}
	if ib, ok := r.indices[id]; ok {
		gl.DeleteBuffers(1, &ib.ebo)
		delete(r.indices, id)
	}
}

// CreateTexture uploads an image with a full mipmap chain.
func (r *Renderer) CreateTexture(img *image.RGBA) (texture.ID, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("empty image")
	}
	if img.Stride != b.Dx()*4 {
		img = texture.ImageToRGBA(img)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("create texture"); err != nil {
		gl.DeleteTextures(1, &tex)
		return 0, err
	}

	id := texture.ID(tex)
	r.textures[id] = struct{}{}
	logger.Debug("texture created",
		zap.Uint32("id", tex),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return id, nil
}

// DeleteTexture frees a texture.
func (r *Renderer) DeleteTexture(id texture.ID) {
	if _, ok := r.textures[id]; !ok {
		return
	}
	tex := uint32(id)
	gl.DeleteTextures(1, &tex)
	delete(r.textures, id)
}

// BeginFrame clears the framebuffer and applies the frame's render states,
// camera and lights.
func (r *Renderer) BeginFrame(f *scene.Frame) error {
	st := f.States
	r.states = st

	c := st.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	enable(gl.DEPTH_TEST, st.DepthTest)
	enable(gl.CULL_FACE, st.Cull)
	enable(gl.BLEND, st.Blend)

	p := r.program
	p.Use()
	p.SetMat4("uView", f.View)
	p.SetMat4("uProjection", f.Projection)
	p.SetVec3("uEye", f.Eye.Array())
	p.SetBool("uLighting", st.Lighting)
	p.SetBool("uSpecular", st.Specular)
	p.SetVec3("uAmbient", st.Ambient)

	lights := f.Lights
	if lights == nil {
		lights = lighting.NewBuffer()
	}
	p.SetInt("uLightCount", int32(lights.Count()))
	p.SetInts("uLightType", lights.Types())
	p.SetVec3s("uLightPosition", lights.Positions())
	p.SetVec3s("uLightDirection", lights.Directions())
	p.SetVec3s("uLightDiffuse", lights.Diffuse())
	p.SetVec3s("uLightSpecular", lights.Specular())
	p.SetVec3s("uLightAmbient", lights.Ambient())
	p.SetVec3s("uLightAtten", lights.Attenuations())
	p.SetVec3s("uLightCone", lights.Cones())
	p.SetFloats("uLightRange", lights.Ranges())

	return glError("begin frame")
}

// Draw issues one draw call.
func (r *Renderer) Draw(dc *scene.DrawCall) error {
	res := dc.Resource
	if res == nil || res.Released() {
		return geometry.ErrReleased
	}
	vb, ok := r.vertices[res.Vertex]
	if !ok {
		return fmt.Errorf("vertex buffer %d: not found", res.Vertex)
	}

	p := r.program
	p.SetMat4("uWorld", dc.World)
	p.SetMat4("uNormalMatrix", dc.World.NormalMatrix())
	p.SetBool("uHasNormal", vb.layout.Normal)
	p.SetBool("uHasColor", vb.layout.Color)

	m := dc.Material
	p.SetVec4("uMatDiffuse", m.Diffuse)
	p.SetVec4("uMatAmbient", m.Ambient)
	p.SetVec4("uMatSpecular", m.Specular)
	p.SetVec4("uMatEmissive", m.Emissive)
	p.SetFloat("uMatPower", m.Power)

	for i, st := range dc.Stages {
		op := st.Op
		if !st.Active() {
			op = texture.OpDisable
		}
		p.SetInt(fmt.Sprintf("uOp%d", i), int32(op))
		p.SetInt(fmt.Sprintf("uAlphaOp%d", i), int32(st.Alpha))

		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		if op == texture.OpDisable {
			gl.BindTexture(gl.TEXTURE_2D, 0)
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, uint32(st.Texture))
		gl.BindSampler(uint32(i), r.sampler(r.states.Filter, st.Address))
	}

	mode := glTopology(dc.Topology())
	gl.BindVertexArray(vb.vao)
	if dc.IndexSet < 0 || dc.IndexSet >= len(res.Indices) {
		gl.DrawArrays(mode, 0, vb.count)
	} else {
		ib, ok := r.indices[res.Indices[dc.IndexSet]]
		if !ok {
			gl.BindVertexArray(0)
			return fmt.Errorf("index buffer %d: not found", res.Indices[dc.IndexSet])
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.ebo)
		gl.DrawElements(mode, ib.count, gl.UNSIGNED_SHORT, nil)
	}
	gl.BindVertexArray(0)

	return glError("draw")
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int, error) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("read pixels: empty viewport")
	}
	pixels := make([]byte, w*h*4)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	if err := glError("read pixels"); err != nil {
		return nil, 0, 0, err
	}
	return pixels, w, h, nil
}

// sampler returns the sampler object for a filter and addressing mode,
// creating it on first use.
func (r *Renderer) sampler(filter texture.Filter, address texture.Address) uint32 {
	key := samplerKey{filter, address}
	if s, ok := r.samplers[key]; ok {
		return s
	}

	var s uint32
	gl.GenSamplers(1, &s)

	wrap := int32(gl.REPEAT)
	switch address {
	case texture.Mirror:
		wrap = gl.MIRRORED_REPEAT
	case texture.Clamp:
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_S, wrap)
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_T, wrap)

	switch filter {
	case texture.FilterPoint:
		gl.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	case texture.FilterAnisotropic:
		gl.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		if r.config.MaxAnisotropy > 1 {
			gl.SamplerParameterf(s, gl.TEXTURE_MAX_ANISOTROPY, r.config.MaxAnisotropy)
		}
	default:
		gl.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}

	r.samplers[key] = s
	logger.Debug("sampler created",
		zap.Stringer("filter", filter),
		zap.Stringer("address", address),
	)
	return s
}

func enable(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func glUsage(u geometry.Usage) uint32 {
	if u == geometry.Dynamic {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func glTopology(t geometry.Topology) uint32 {
	switch t {
	case geometry.Lines:
		return gl.LINES
	case geometry.Points:
		return gl.POINTS
	case geometry.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// glError drains the GL error queue and reports the first error.
func glError(op string) error {
	first := gl.GetError()
	if first == gl.NO_ERROR {
		return nil
	}
	for range 8 {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}
	return fmt.Errorf("%s: gl error 0x%x", op, first)
}
