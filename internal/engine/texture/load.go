package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	// Formats registered with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
)

// Load reads an image file. The decoder is picked from the extension: BMP
// and TGA directly, anything else through image.Decode.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes data, using name only to pick the format.
func Decode(data []byte, name string) (*image.RGBA, error) {
	var (
		img image.Image
		err error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	return ImageToRGBA(img), nil
}

// ImageToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Checker returns a size x size board of cells x cells squares.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := range size {
		for x := range size {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Spot returns a light map: white in the centre fading to black at the
// inscribed circle.
func Spot(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float32(size) / 2
	for y := range size {
		for x := range size {
			dx := (float32(x) + 0.5 - r) / r
			dy := (float32(y) + 0.5 - r) / r
			v := 1 - (dx*dx + dy*dy)
			if v < 0 {
				v = 0
			}
			g := uint8(v * 255)
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
	return img
}
