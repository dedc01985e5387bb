package constant

import "time"

// Frame Timing
const (
	// FrameInterval is the redraw interval while an animation is running (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// StatusMessageTimeout is how long a status line message stays visible
	StatusMessageTimeout = 2 * time.Second
)

// Cell Geometry
// Terminal cells are mapped to viewport pixels so thresholds keep their pixel meaning
const (
	// CellWidthPx is the nominal width of one terminal cell
	CellWidthPx = 8.0

	// CellHeightPx is the nominal height of one terminal cell
	CellHeightPx = 16.0
)

// Card Layout (cells)
const (
	// CardMaxWidth caps the card width on wide terminals
	CardMaxWidth = 48

	// CardMinWidth is the narrowest card that is still drawn
	CardMinWidth = 16

	// ControlRowHeight is the height reserved below the card for action controls
	ControlRowHeight = 3

	// InfoBlockHeight is the number of rows used by name, intent and bio
	InfoBlockHeight = 4

	// StatusBarHeight is the bottom status line
	StatusBarHeight = 1
)

// Overlay Stamp
const (
	// StampLike is the label shown while dragging right
	StampLike = "LIKE"

	// StampNope is the label shown while dragging left
	StampNope = "NOPE"

	// StampLikeHex is the LIKE stamp colour
	StampLikeHex = "#4ade80"

	// StampNopeHex is the NOPE stamp colour
	StampNopeHex = "#f87171"
)

// UI Symbols
const (
	DotActive   = '●'
	DotInactive = '○'
	UpperHalf   = '▀'
)
