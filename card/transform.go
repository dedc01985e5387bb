package card

import (
	"math"

	"swipedeck/config"
	"swipedeck/constant"
)

// Label is the stamp drawn over the photo while dragging
type Label uint8

const (
	LabelNone Label = iota
	LabelLike
	LabelNope
)

// String returns the stamp text
func (l Label) String() string {
	switch l {
	case LabelLike:
		return constant.StampLike
	case LabelNope:
		return constant.StampNope
	default:
		return ""
	}
}

// Color returns the stamp colour token
func (l Label) Color() string {
	switch l {
	case LabelLike:
		return constant.StampLikeHex
	case LabelNope:
		return constant.StampNopeHex
	default:
		return ""
	}
}

// Overlay is the LIKE/NOPE feedback, derived from horizontal displacement only
type Overlay struct {
	Label   Label
	Opacity float64
}

// Visual is everything the renderer needs to draw the card at one instant
type Visual struct {
	TranslateX  float64 // Pixels
	RotationDeg float64 // Sign follows TranslateX
	Opacity     float64 // Card opacity, 0 when fully dismissed
	Overlay     Overlay
}

// Identity is the resting card
func Identity() Visual {
	return Visual{Opacity: 1}
}

// Compute returns the live drag transform for a horizontal displacement
func Compute(dx float64, cfg config.Config) Visual {
	v := Visual{
		TranslateX:  dx,
		RotationDeg: dx / cfg.RotationDivisor,
		Opacity:     1,
	}

	switch {
	case dx > cfg.LabelEpsilon:
		v.Overlay.Label = LabelLike
	case dx < -cfg.LabelEpsilon:
		v.Overlay.Label = LabelNope
	default:
		return v
	}
	v.Overlay.Opacity = math.Min(math.Abs(dx)/cfg.SwipeThreshold, 1)
	return v
}

// Exit returns the terminal transform of a dismissed card
func Exit(dir Direction, cfg config.Config) Visual {
	sign := 1.0
	if dir == DirLeft {
		sign = -1
	}
	return Visual{
		TranslateX:  sign * cfg.ExitTranslate,
		RotationDeg: sign * cfg.ExitRotation,
		Opacity:     0,
	}
}
