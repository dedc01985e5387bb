package photo

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Placeholder art is portrait, three by four
const (
	PlaceholderWidth  = 240
	PlaceholderHeight = 320
)

// Placeholder draws deterministic art for ref: a two-tone gradient with a silhouette
// An empty ref yields the neutral "no photo" card
func Placeholder(ref string) *image.NRGBA {
	top, bottom := palette(ref)
	img := image.NewNRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))

	cx, cy := float64(PlaceholderWidth)/2, float64(PlaceholderHeight)*0.4
	head := float64(PlaceholderWidth) * 0.18
	shoulders := float64(PlaceholderWidth) * 0.38
	figure := top.BlendLab(bottom, 0.5).BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.35)

	for y := 0; y < PlaceholderHeight; y++ {
		row := top.BlendLab(bottom, float64(y)/float64(PlaceholderHeight-1))
		for x := 0; x < PlaceholderWidth; x++ {
			c := row
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if math.Hypot(fx-cx, fy-cy) < head {
				c = figure
			} else if fy > cy+head*1.4 && math.Hypot((fx-cx)/shoulders, (fy-float64(PlaceholderHeight))/(shoulders*1.1)) < 1 {
				c = figure
			}
			img.SetNRGBA(x, y, toNRGBAColor(c))
		}
	}
	return img
}

func palette(ref string) (colorful.Color, colorful.Color) {
	if ref == "" {
		return colorful.Hcl(0, 0, 0.35), colorful.Hcl(0, 0, 0.15)
	}
	h := fnv.New32a()
	h.Write([]byte(ref))
	sum := h.Sum32()

	hue := float64(sum % 360)
	return colorful.Hcl(hue, 0.45, 0.7).Clamped(),
		colorful.Hcl(math.Mod(hue+40, 360), 0.5, 0.3).Clamped()
}

func toNRGBAColor(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
