// Package texture decodes images and describes how texture stages combine
// them.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes an uncompressed or RLE compressed 24/32-bit TGA file.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	w := &tgaWriter{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		topToBottom: topToBottom,
	}
	px := bpp / 8

	var err error
	if imageType == TGATypeUncompressed {
		err = w.readRaw(data[offset:], px)
	} else {
		err = w.readRLE(data[offset:], px)
	}
	if err != nil {
		return nil, err
	}
	return w.img, nil
}

// tgaWriter places pixels in file order, flipping bottom-up files.
type tgaWriter struct {
	img         *image.RGBA
	width       int
	height      int
	topToBottom bool
	n           int
}

func (w *tgaWriter) done() bool {
	return w.n >= w.width*w.height
}

func (w *tgaWriter) put(c color.RGBA) {
	x, y := w.n%w.width, w.n/w.width
	if !w.topToBottom {
		y = w.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
	w.n++
}

func tgaPixel(p []byte) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if len(p) == 4 {
		c.A = p[3]
	}
	return c
}

func (w *tgaWriter) readRaw(data []byte, px int) error {
	if len(data) < w.width*w.height*px {
		return errTGATruncated
	}
	for i := 0; !w.done(); i += px {
		w.put(tgaPixel(data[i : i+px]))
	}
	return nil
}

// readRLE stops quietly at the end of the data; missing pixels stay
// transparent.
func (w *tgaWriter) readRLE(data []byte, px int) error {
	i := 0
	for !w.done() && i < len(data) {
		packet := data[i]
		i++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			if i+px > len(data) {
				break
			}
			c := tgaPixel(data[i : i+px])
			i += px
			for ; count > 0 && !w.done(); count-- {
				w.put(c)
			}
			continue
		}

		for ; count > 0 && !w.done(); count-- {
			if i+px > len(data) {
				return nil
			}
			w.put(tgaPixel(data[i : i+px]))
			i += px
		}
	}
	return nil
}
