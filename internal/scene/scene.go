package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/engine/camera"
	"github.com/Faultbox/fixedfunc/internal/engine/lighting"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/geometry"
	"github.com/Faultbox/fixedfunc/internal/logger"
)

// ErrUnknownDemo is returned for a demo name that is not in the catalogue.
var ErrUnknownDemo = errors.New("scene: unknown demo")

// Options are the settings a scene takes from configuration.
type Options struct {
	// Primary and LightMap are texture paths. Empty paths use generated
	// textures.
	Primary  string
	LightMap string
	Filter   texture.Filter
}

// Binding is a key action.
type Binding struct {
	Help string
	Do   func()
}

// Scene is one running demo. It owns its shared geometry registry, textures
// and drawables.
type Scene struct {
	Name   string
	Title  string
	States States
	Camera *camera.Camera
	Lights []lighting.Light

	backend   Backend
	registry  *geometry.Registry
	opts      Options
	textures  []texture.ID
	drawables []Drawable
	keys      map[string]Binding
	update    func(now time.Duration)
	buffer    *lighting.Buffer
	log       *zap.Logger
	closed    bool
}

// New builds the named demo on backend.
func New(b Backend, name string, opts Options) (*Scene, error) {
	d, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}

	states := DefaultStates()
	states.Filter = opts.Filter

	s := &Scene{
		Name:     name,
		Title:    d.title,
		States:   states,
		Camera:   camera.New(eyeDefault),
		backend:  b,
		registry: geometry.NewRegistry(b, geometry.DefaultCatalog()),
		opts:     opts,
		keys:     make(map[string]Binding),
		buffer:   lighting.NewBuffer(),
		log:      logger.Named("scene").With(zap.String("demo", name)),
	}

	if err := d.build(s); err != nil {
		s.Close()
		return nil, fmt.Errorf("demo %s: %w", name, err)
	}

	s.log.Info("scene ready",
		zap.Int("drawables", len(s.drawables)),
		zap.Int("textures", len(s.textures)),
		zap.Int("lights", len(s.Lights)),
	)
	return s, nil
}

// Add registers a drawable. The scene releases it on Close.
func (s *Scene) Add(d Drawable) {
	s.drawables = append(s.drawables, d)
}

// Object acquires a shared shape and adds it to the scene.
func (s *Scene) Object(shape geometry.ShapeID, pose Pose) (*Object, error) {
	o, err := NewObject(s.registry, shape, pose)
	if err != nil {
		return nil, err
	}
	s.Add(o)
	return o, nil
}

// Registry returns the scene's shared geometry registry.
func (s *Scene) Registry() *geometry.Registry {
	return s.registry
}

// Bind maps a key name to an action.
func (s *Scene) Bind(key, help string, do func()) {
	s.keys[key] = Binding{Help: help, Do: do}
}

// HandleKey runs the action bound to key. It reports whether one ran.
func (s *Scene) HandleKey(key string) bool {
	b, ok := s.keys[key]
	if !ok {
		return false
	}
	b.Do()
	s.log.Debug("key", zap.String("key", key), zap.String("action", b.Help))
	return true
}

// Help lists the key bindings, sorted by key.
func (s *Scene) Help() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + " - " + s.keys[k].Help
	}
	return lines
}

// OnUpdate sets a hook that runs before drawables update each frame.
func (s *Scene) OnUpdate(fn func(now time.Duration)) {
	s.update = fn
}

// Resize updates the camera aspect ratio.
func (s *Scene) Resize(width, height int) {
	s.Camera.Resize(width, height)
}

// Frame updates and draws the scene for clock reading now. The first
// failure ends the frame: later drawables are neither updated nor drawn.
func (s *Scene) Frame(now time.Duration) error {
	if s.closed {
		return fmt.Errorf("scene %s: closed", s.Name)
	}
	if s.update != nil {
		s.update(now)
	}

	if dropped := s.buffer.Set(s.Lights); dropped > 0 {
		s.log.Warn("too many lights", zap.Int("dropped", dropped), zap.Int("max", lighting.MaxLights))
	}

	for _, d := range s.drawables {
		if err := d.Update(now); err != nil {
			return fmt.Errorf("update: %w", err)
		}
	}

	f := &Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(),
		Eye:        s.Camera.Eye,
		States:     s.States,
		Lights:     s.buffer,
	}
	if err := s.backend.BeginFrame(f); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}

	for i, d := range s.drawables {
		if err := d.Draw(s.backend); err != nil {
			return fmt.Errorf("draw %d of %d: %w", i+1, len(s.drawables), err)
		}
	}
	return nil
}

// Close releases drawables, the registry and textures. It is safe to call
// more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for _, d := range s.drawables {
		d.Release()
	}
	s.drawables = nil
	s.registry.Close()

	for _, id := range s.textures {
		s.backend.DeleteTexture(id)
	}
	s.textures = nil
	s.log.Debug("scene closed")
}

// Texture uploads the image at path, or the fallback when path is empty.
func (s *Scene) Texture(path string, fallback func() *image.RGBA) (texture.ID, error) {
	var img *image.RGBA
	if path == "" {
		img = fallback()
	} else {
		var err error
		img, err = texture.Load(path)
		if err != nil {
			return 0, err
		}
	}

	id, err := s.backend.CreateTexture(img)
	if err != nil {
		return 0, fmt.Errorf("texture %q: %w", path, err)
	}
	s.textures = append(s.textures, id)
	return id, nil
}

// PrimaryTexture loads the configured primary texture or a checkerboard.
func (s *Scene) PrimaryTexture() (texture.ID, error) {
	return s.Texture(s.opts.Primary, func() *image.RGBA {
		return texture.Checker(128, 8,
			color.RGBA{R: 0xe0, G: 0xc0, B: 0x80, A: 0xff},
			color.RGBA{R: 0x60, G: 0x30, B: 0x20, A: 0xff})
	})
}

// LightMapTexture loads the configured light map or a radial spot.
func (s *Scene) LightMapTexture() (texture.ID, error) {
	return s.Texture(s.opts.LightMap, func() *image.RGBA {
		return texture.Spot(128)
	})
}
