package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit terminal colour
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbCardBg     = RGB{36, 40, 59}    // Info block
	RgbText       = RGB{192, 202, 245} // Primary text
	RgbTextDim    = RGB{122, 130, 170} // Secondary text
	RgbWhite      = RGB{255, 255, 255}
	RgbBlack      = RGB{0, 0, 0}

	RgbDotActive   = RGB{255, 255, 255}
	RgbDotInactive = RGB{150, 150, 160}

	RgbDislike  = RGB{248, 113, 113}
	RgbArchive  = RGB{125, 207, 255}
	RgbLike     = RGB{74, 222, 128}
	RgbFavorite = RGB{250, 204, 21}
	RgbComment  = RGB{187, 154, 247}
	RgbFilter   = RGB{224, 175, 104}

	RgbStatusBg   = RGB{65, 72, 104}
	RgbStatusText = RGB{255, 255, 255}

	RgbMatchFrom = RGB{255, 8, 0} // Match title gradient
	RgbMatchTo   = RGB{255, 153, 0}
)

// Blend is linear alpha compositing of src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Gradient blends from a to b in HCL space, t in [0,1]
func Gradient(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendHcl(b.Colorful(), t).Clamped())
}

// Hex parses "#rrggbb", falling back to white
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RgbWhite
	}
	return FromColorful(c)
}

// Colorful converts to a go-colorful colour
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts a go-colorful colour
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Tcell converts to a tcell true colour
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToRGB converts a tcell colour, default colours map to black
func TcellToRGB(c tcell.Color) RGB {
	if !c.Valid() {
		return RgbBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}
