package gesture

import "github.com/gdamore/tcell/v2"

// Phase is the normalised pointer phase
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseMove:
		return "Move"
	case PhaseEnd:
		return "End"
	default:
		return "Cancel"
	}
}

// Pointer is one normalised input event
type Pointer struct {
	Phase  Phase
	Sample Sample
}

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// MouseEvent is a raw mouse report, Button is the button currently held
type MouseEvent struct {
	Sample Sample
	Button MouseButton
}

// MouseSource turns held-button reports into press/drag/release phases
// Terminals report state, not transitions, so the source remembers whether
// the primary button was down on the previous report
type MouseSource struct {
	down bool
}

// Feed converts a raw mouse report, returns false for events that carry no phase
func (m *MouseSource) Feed(ev MouseEvent) (Pointer, bool) {
	primary := ev.Button == MouseBtnLeft

	switch {
	case primary && !m.down:
		m.down = true
		return Pointer{Phase: PhaseStart, Sample: ev.Sample}, true
	case primary && m.down:
		return Pointer{Phase: PhaseMove, Sample: ev.Sample}, true
	case ev.Button == MouseBtnNone && m.down:
		m.down = false
		return Pointer{Phase: PhaseEnd, Sample: ev.Sample}, true
	}
	// Hover, wheel and secondary buttons are not gestures
	return Pointer{}, false
}

// Down reports whether the primary button is held
func (m *MouseSource) Down() bool {
	return m.down
}

// Reset forgets the held state
func (m *MouseSource) Reset() {
	m.down = false
}

// FromTcell converts a tcell mouse event into a raw mouse report
// The sample is the pixel centre of the reported cell
func FromTcell(ev *tcell.EventMouse, cellW, cellH float64) MouseEvent {
	x, y := ev.Position()
	s := CellToSample(x, y, cellW, cellH)

	btn := MouseBtnNone
	mask := ev.Buttons()
	switch {
	case mask&tcell.Button1 != 0:
		btn = MouseBtnLeft
	case mask&tcell.Button3 != 0:
		btn = MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		btn = MouseBtnRight
	case mask&tcell.WheelUp != 0:
		btn = MouseBtnWheelUp
	case mask&tcell.WheelDown != 0:
		btn = MouseBtnWheelDown
	}
	return MouseEvent{Sample: s, Button: btn}
}

// CellToSample maps a cell to the pixel position of its centre
func CellToSample(x, y int, cellW, cellH float64) Sample {
	return Sample{
		X: (float64(x) + 0.5) * cellW,
		Y: (float64(y) + 0.5) * cellH,
	}
}

// TouchKind is the raw touch event type
type TouchKind uint8

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchEvent mirrors a platform touch report
// Touches are the contacts still down, Changed the contacts this event is about
type TouchEvent struct {
	Kind    TouchKind
	Touches []Sample
	Changed []Sample
}

// TouchSource tracks the first contact only, multi-touch is ignored
type TouchSource struct {
	tracking bool
}

// Feed converts a touch report, returns false for ignored events
func (s *TouchSource) Feed(ev TouchEvent) (Pointer, bool) {
	switch ev.Kind {
	case TouchStart:
		if len(ev.Touches) != 1 {
			return Pointer{}, false
		}
		s.tracking = true
		return Pointer{Phase: PhaseStart, Sample: ev.Touches[0]}, true

	case TouchMove:
		if !s.tracking || len(ev.Touches) != 1 {
			return Pointer{}, false
		}
		return Pointer{Phase: PhaseMove, Sample: ev.Touches[0]}, true

	case TouchEnd:
		if !s.tracking || len(ev.Touches) != 0 || len(ev.Changed) == 0 {
			return Pointer{}, false
		}
		s.tracking = false
		return Pointer{Phase: PhaseEnd, Sample: ev.Changed[0]}, true

	case TouchCancel:
		if !s.tracking {
			return Pointer{}, false
		}
		s.tracking = false
		return Pointer{Phase: PhaseCancel}, true
	}
	return Pointer{}, false
}
