package gesture

// Tracker follows one gesture from press to release
// Only the first contact is tracked; it never touches the profile queue
type Tracker struct {
	origin  Sample
	current Sample
	active  bool

	// frozen reports whether input must be ignored (exit animation running)
	frozen func() bool
}

// NewTracker creates a tracker, frozen may be nil
func NewTracker(frozen func() bool) *Tracker {
	return &Tracker{frozen: frozen}
}

func (t *Tracker) isFrozen() bool {
	return t.frozen != nil && t.frozen()
}

// Start records the origin of a new gesture
// Returns false if input is frozen
func (t *Tracker) Start(s Sample) bool {
	if t.isFrozen() {
		return false
	}
	t.origin = s
	t.current = s
	t.active = true
	return true
}

// Move updates the running position
// No-op without an origin or while frozen, so dragging cannot resume mid-exit
func (t *Tracker) Move(s Sample) (Delta, bool) {
	if !t.active || t.isFrozen() {
		return Delta{}, false
	}
	t.current = s
	return s.Sub(t.origin), true
}

// End finalises the gesture and clears the origin
func (t *Tracker) End(s Sample) (Gesture, bool) {
	if !t.active {
		return Gesture{}, false
	}
	t.active = false
	if t.isFrozen() {
		return Gesture{}, false
	}
	t.current = s
	return Gesture{Origin: t.origin, End: s}, true
}

// Cancel drops the active gesture, returns whether one was active
func (t *Tracker) Cancel() bool {
	was := t.active
	t.active = false
	return was
}

// Reset clears all state, used when the card is remounted
func (t *Tracker) Reset() {
	t.origin = Sample{}
	t.current = Sample{}
	t.active = false
}

// Active reports whether a gesture is in progress
func (t *Tracker) Active() bool {
	return t.active
}

// Origin returns the press position of the active gesture
func (t *Tracker) Origin() Sample {
	return t.origin
}

// Delta returns the running displacement of the active gesture
func (t *Tracker) Delta() Delta {
	if !t.active {
		return Delta{}
	}
	return t.current.Sub(t.origin)
}
