// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/engine/device"
	"github.com/Faultbox/fixedfunc/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title        string
	Width        int
	Height       int
	Fullscreen   bool
	VSync        bool
	Acceleration string // auto, hardware or software
}

// Window wraps an SDL2 window and its OpenGL context.
type Window struct {
	config    Config
	mode      device.Mode
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New initialises SDL and opens a window with a GL 4.1 core context. With
// acceleration "auto" a failed hardware context is retried once in software.
func New(cfg Config) (*Window, error) {
	plan, err := device.Plan(cfg.Acceleration)
	if err != nil {
		return nil, err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	w := &Window{config: cfg}
	w.mode, err = device.Open(plan, w.open)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.String("mode", string(w.mode)),
	)
	return w, nil
}

// open creates the window and context for one mode, cleaning up on failure.
func (w *Window) open(mode device.Mode) error {
	accelerated := 1
	if mode == device.Software {
		accelerated = 0
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_ACCELERATED_VISUAL, accelerated)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if w.config.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	win, err := sdl.CreateWindow(
		w.config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(w.config.Width),
		int32(w.config.Height),
		flags,
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	w.sdlWindow = win
	w.glContext = ctx
	return nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Mode returns the acceleration mode the context was created with.
func (w *Window) Mode() device.Mode {
	return w.mode
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
