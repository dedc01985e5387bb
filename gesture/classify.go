package gesture

import "math"

// Kind is the outcome of a finished gesture
type Kind uint8

const (
	KindDiscard Kind = iota // Released on a control, ignored entirely
	KindTap                 // Image navigation
	KindLike                // Swiped right past the threshold
	KindDislike             // Swiped left past the threshold
	KindReset               // Dragged but not far enough, snap back
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindTap:
		return "Tap"
	case KindLike:
		return "Like"
	case KindDislike:
		return "Dislike"
	case KindReset:
		return "Reset"
	default:
		return "Discard"
	}
}

// Nav is an image navigation direction
type Nav uint8

const (
	NavNone Nav = iota
	NavPrevious
	NavNext
)

// String returns human-readable direction name
func (n Nav) String() string {
	switch n {
	case NavPrevious:
		return "Previous"
	case NavNext:
		return "Next"
	default:
		return "None"
	}
}

// Result is a classified gesture
type Result struct {
	Kind  Kind
	Nav   Nav // Set for KindTap only
	Delta Delta
}

// Classifier separates taps from drags with two independent thresholds
// TapThreshold must be well below SwipeThreshold
type Classifier struct {
	TapThreshold   float64
	SwipeThreshold float64
}

// Classify decides what a finished gesture means
// bounds is the rendered card region, used for the tap half-width hit test
// The hit test uses the release position
func (c Classifier) Classify(g Gesture, releaseOnControl bool, bounds Rect) Result {
	d := g.Delta()
	if releaseOnControl {
		return Result{Kind: KindDiscard, Delta: d}
	}

	if math.Abs(d.DX) < c.TapThreshold && math.Abs(d.DY) < c.TapThreshold {
		nav := NavPrevious
		if g.End.X-bounds.X > bounds.W/2 {
			nav = NavNext
		}
		return Result{Kind: KindTap, Nav: nav, Delta: d}
	}

	switch {
	case d.DX > c.SwipeThreshold:
		return Result{Kind: KindLike, Delta: d}
	case d.DX < -c.SwipeThreshold:
		return Result{Kind: KindDislike, Delta: d}
	default:
		return Result{Kind: KindReset, Delta: d}
	}
}
