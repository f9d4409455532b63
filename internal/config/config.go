// Package config handles loading and validation of the demo settings.
package config

import (
	"errors"
	"fmt"
)

// Acceleration modes for context creation.
const (
	AccelAuto     = "auto"
	AccelHardware = "hardware"
	AccelSoftware = "software"
)

// Texture filter names.
const (
	FilterPoint       = "point"
	FilterLinear      = "linear"
	FilterAnisotropic = "anisotropic"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Demo    DemoConfig    `yaml:"demo"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds device settings.
type RenderConfig struct {
	Acceleration  string  `yaml:"acceleration"`   // auto, hardware or software
	Filter        string  `yaml:"filter"`         // initial texture filter
	MaxAnisotropy float32 `yaml:"max_anisotropy"` // clamped to what the driver reports
}

// DemoConfig selects the starting demo and its textures.
type DemoConfig struct {
	Name          string        `yaml:"name"`
	Textures      TextureConfig `yaml:"textures"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// TextureConfig holds texture paths. Empty paths use generated textures.
type TextureConfig struct {
	Primary  string `yaml:"primary"`
	LightMap string `yaml:"lightmap"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the demos were tuned for.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "fixedfunc",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		Render: RenderConfig{
			Acceleration:  AccelAuto,
			Filter:        FilterLinear,
			MaxAnisotropy: 16,
		},
		Demo: DemoConfig{
			Name:          "pyramid",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	switch c.Render.Acceleration {
	case AccelAuto, AccelHardware, AccelSoftware:
	default:
		return fmt.Errorf("%w: acceleration %q", ErrInvalid, c.Render.Acceleration)
	}
	switch c.Render.Filter {
	case FilterPoint, FilterLinear, FilterAnisotropic:
	default:
		return fmt.Errorf("%w: filter %q", ErrInvalid, c.Render.Filter)
	}
	if c.Render.MaxAnisotropy < 1 {
		return fmt.Errorf("%w: max_anisotropy %v", ErrInvalid, c.Render.MaxAnisotropy)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	if c.Demo.Name == "" {
		return fmt.Errorf("%w: empty demo name", ErrInvalid)
	}
	return nil
}
