// Package photo turns profile image references into pixels for the card.
//
// References resolve to files under a photo directory. PNG, JPEG, GIF and TGA
// are decoded; anything missing or undecodable is replaced by deterministic
// placeholder art so the card always has something to draw.
package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// TGA has no magic number and registers a catch-all with image.RegisterFormat,
// so image.Decode is never used: formats are sniffed here, TGA by extension only

var (
	magicPNG  = []byte("\x89PNG\r\n\x1a\n")
	magicJPEG = []byte{0xff, 0xd8}
	magicGIF  = []byte("GIF8")
)

// Load reads and decodes an image file into NRGBA
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("photo: read %s: %w", path, err)
	}
	return decode(raw, strings.ToLower(filepath.Ext(path)) == ".tga")
}

// Decode decodes PNG, JPEG or GIF bytes into NRGBA
func Decode(raw []byte) (*image.NRGBA, error) {
	return decode(raw, false)
}

// DecodeTGA decodes TGA bytes into NRGBA
func DecodeTGA(raw []byte) (*image.NRGBA, error) {
	return decode(raw, true)
}

func decode(raw []byte, isTGA bool) (*image.NRGBA, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	r := bytes.NewReader(raw)
	switch {
	case bytes.HasPrefix(raw, magicPNG):
		format = "png"
		img, err = png.Decode(r)
	case bytes.HasPrefix(raw, magicJPEG):
		format = "jpeg"
		img, err = jpeg.Decode(r)
	case bytes.HasPrefix(raw, magicGIF):
		format = "gif"
		img, err = gif.Decode(r)
	case isTGA:
		format = "tga"
		img, err = tga.Decode(r)
	default:
		err = image.ErrFormat
	}
	if err != nil {
		return nil, fmt.Errorf("photo: decode: %w", err)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("photo: empty %s image", format)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA anchored at the origin
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
