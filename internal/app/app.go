// Package app runs the demo loop: window, renderer, input and the current
// scene.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/config"
	"github.com/Faultbox/fixedfunc/internal/engine/debug"
	"github.com/Faultbox/fixedfunc/internal/engine/input"
	"github.com/Faultbox/fixedfunc/internal/engine/renderer"
	"github.com/Faultbox/fixedfunc/internal/engine/texture"
	"github.com/Faultbox/fixedfunc/internal/engine/window"
	"github.com/Faultbox/fixedfunc/internal/logger"
	"github.com/Faultbox/fixedfunc/internal/scene"
)

// App is the running program.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	opts     scene.Options
	shots    *debug.Screenshots
	capture  bool
	log      *zap.Logger
}

// New opens the window and renderer and builds the configured demo.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("demo", cfg.Demo.Name),
	)

	filter, err := texture.ParseFilter(cfg.Render.Filter)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		log:    log,
		shots:  debug.NewScreenshots(cfg.Demo.ScreenshotDir, "fixedfunc"),
		opts: scene.Options{
			Primary:  cfg.Demo.Textures.Primary,
			LightMap: cfg.Demo.Textures.LightMap,
			Filter:   filter,
		},
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Fullscreen:   cfg.Window.Fullscreen,
		VSync:        cfg.Window.VSync,
		Acceleration: cfg.Render.Acceleration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{
		Width:         w,
		Height:        h,
		MaxAnisotropy: cfg.Render.MaxAnisotropy,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	if err := a.switchTo(cfg.Demo.Name); err != nil {
		a.Close()
		return nil, err
	}

	log.Info("initialized", zap.String("mode", string(a.window.Mode())))
	return a, nil
}

// switchTo replaces the current scene with the named demo.
func (a *App) switchTo(name string) error {
	next, err := scene.New(a.renderer, name, a.opts)
	if err != nil {
		return err
	}
	if a.scene != nil {
		a.scene.Close()
	}
	a.scene = next
	a.scene.Resize(a.window.Size())

	a.log.Info("demo started", zap.String("demo", name), zap.String("title", next.Title))
	for _, line := range next.Help() {
		a.log.Info("key", zap.String("binding", line))
	}
	return nil
}

// Run starts the main loop. Frame errors are logged and the loop carries
// on with the next frame.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	frames := 0

	a.log.Info("starting loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		if !a.running {
			break
		}

		// 2. Update and render
		now := time.Since(start)
		if err := a.scene.Frame(now); err != nil {
			a.log.Warn("frame failed", zap.Error(err))
		}

		if a.capture {
			a.capture = false
			a.screenshot()
		}

		// 3. Present (swap buffers)
		a.window.SwapBuffers()

		// Average FPS since start, as the window title
		frames++
		if frames%30 == 0 {
			fps := float64(frames) / now.Seconds()
			a.window.SetTitle(fmt.Sprintf("%s - %s - avg fps %.2f", a.config.Window.Title, a.scene.Title, fps))
		}
	}

	return nil
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		w, h := a.window.Size()
		a.renderer.Resize(w, h)
		a.scene.Resize(w, h)

	case input.EventKeyDown:
		switch ev.Key {
		case "Escape":
			a.running = false
		case "F12":
			a.capture = true
		case "PageUp", "PageDown":
			if ev.Repeat {
				return
			}
			step := 1
			if ev.Key == "PageUp" {
				step = -1
			}
			if err := a.switchTo(scene.Cycle(a.scene.Name, step)); err != nil {
				// The previous scene stays current.
				a.log.Error("demo switch failed", zap.Error(err))
			}
		default:
			a.scene.HandleKey(ev.Key)
		}
	}
}

// screenshot saves the back buffer of the frame just drawn.
func (a *App) screenshot() {
	pixels, w, h, err := a.renderer.ReadPixels()
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	img, err := debug.FromGL(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.Save(a.scene.Name, img)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, renderer and window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
