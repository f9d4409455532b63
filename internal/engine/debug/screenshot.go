// Package debug provides developer aids for the running demos.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes numbered PNG captures of the back buffer.
type Screenshots struct {
	Dir    string
	Prefix string

	now func() time.Time
	seq int
}

// NewScreenshots returns a writer that stores captures in dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{Dir: dir, Prefix: prefix, now: time.Now}
}

// FromGL converts bottom-up RGBA rows as read back from OpenGL into a
// top-down image.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := range height {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// Name returns the file name the next capture of demo will use.
func (s *Screenshots) Name(demo string) string {
	stamp := s.now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s_%03d.png", s.Prefix, demo, stamp, s.seq+1)
	return filepath.Join(s.Dir, name)
}

// Save encodes img as PNG and returns the path written.
func (s *Screenshots) Save(demo string, img image.Image) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.Name(demo)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	s.seq++
	return path, nil
}
