package gesture

// Sample is one pointer position in viewport pixels
type Sample struct {
	X, Y float64
}

// Delta is a displacement between two samples
type Delta struct {
	DX, DY float64
}

// Sub returns the displacement from o to s
func (s Sample) Sub(o Sample) Delta {
	return Delta{DX: s.X - o.X, DY: s.Y - o.Y}
}

// Rect is an axis-aligned region in viewport pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether s lies inside r, right and bottom edges exclusive
func (r Rect) Contains(s Sample) bool {
	return s.X >= r.X && s.X < r.X+r.W && s.Y >= r.Y && s.Y < r.Y+r.H
}

// Gesture is a completed press-to-release interaction
type Gesture struct {
	Origin Sample
	End    Sample
}

// Delta returns the full displacement of the gesture
func (g Gesture) Delta() Delta {
	return g.End.Sub(g.Origin)
}
