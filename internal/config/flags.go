package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config     string
	Debug      bool
	Demo       string
	Width      int
	Height     int
	Windowed   bool
	Fullscreen bool
	Software   bool
}

// BindFlags registers the overrides on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Demo, "demo", "", "Demo to start with")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.BoolVar(&f.Software, "software", false, "Force the software renderer")
	return f
}

// Apply writes the set overrides onto cfg.
func (f *Flags) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Demo != "" {
		cfg.Demo.Name = f.Demo
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Software {
		cfg.Render.Acceleration = AccelSoftware
	}
}
