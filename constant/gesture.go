package constant

import "time"

// Gesture Thresholds (viewport pixels)
const (
	// SwipeThreshold is the horizontal displacement a drag must exceed to commit a like or dislike
	SwipeThreshold = 100.0

	// TapThreshold is the displacement on both axes under which a press is a tap
	TapThreshold = 10.0

	// LabelEpsilon is the horizontal displacement past which the LIKE/NOPE stamp appears
	LabelEpsilon = 10.0

	// RotationDivisor converts horizontal displacement into degrees of card tilt
	RotationDivisor = 20.0
)

// Exit Animation
const (
	// ExitTranslate is the horizontal travel of a dismissed card
	ExitTranslate = 500.0

	// ExitRotation is the terminal tilt of a dismissed card in degrees
	ExitRotation = 30.0

	// ExitDuration is how long the dismiss animation runs before the card settles
	ExitDuration = 400 * time.Millisecond
)

// Reset & Carousel Timing
const (
	// ResetDuration is the snap-back animation time after a drag that did not commit
	ResetDuration = 300 * time.Millisecond

	// OverlayFadeDuration is the stamp fade-out time on reset, kept shorter than ResetDuration
	OverlayFadeDuration = 200 * time.Millisecond

	// NavLockDuration debounces image navigation
	NavLockDuration = 300 * time.Millisecond
)

// Matching
const (
	// MatchProbability is the chance that a like turns into a match
	MatchProbability = 0.3
)
