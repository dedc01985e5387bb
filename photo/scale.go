package photo

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales src to exactly w x h, cropping the centre to keep the aspect ratio
func Fit(src *image.NRGBA, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}

	crop := cover(b, w, h)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// cover returns the largest centred sub-rectangle of b with aspect w:h
func cover(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*h > sh*w {
		// Source is wider, trim the sides
		cw := sh * w / h
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := sw * h / w
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
