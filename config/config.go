package config

import (
	"errors"
	"fmt"
	"time"

	"swipedeck/constant"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the swipe deck
// Zero values are not meaningful, start from Default
type Config struct {
	// Gesture
	SwipeThreshold  float64
	TapThreshold    float64
	LabelEpsilon    float64
	RotationDivisor float64

	// Animation
	ExitTranslate       float64
	ExitRotation        float64
	ExitDuration        time.Duration
	ResetDuration       time.Duration
	OverlayFadeDuration time.Duration
	NavLockDuration     time.Duration

	// Cell geometry used to map terminal cells to viewport pixels
	CellWidthPx  float64
	CellHeightPx float64

	// Matching
	MatchProbability float64
	Seed             uint64

	// Sources
	DeckPath string
	PhotoDir string

	// Switches
	Sound bool
	Debug bool
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		SwipeThreshold:      constant.SwipeThreshold,
		TapThreshold:        constant.TapThreshold,
		LabelEpsilon:        constant.LabelEpsilon,
		RotationDivisor:     constant.RotationDivisor,
		ExitTranslate:       constant.ExitTranslate,
		ExitRotation:        constant.ExitRotation,
		ExitDuration:        constant.ExitDuration,
		ResetDuration:       constant.ResetDuration,
		OverlayFadeDuration: constant.OverlayFadeDuration,
		NavLockDuration:     constant.NavLockDuration,
		CellWidthPx:         constant.CellWidthPx,
		CellHeightPx:        constant.CellHeightPx,
		MatchProbability:    constant.MatchProbability,
		Sound:               true,
	}
}

// Validate checks threshold ordering and duration sanity
func (c Config) Validate() error {
	switch {
	case c.TapThreshold <= 0:
		return fmt.Errorf("%w: tap threshold must be positive, got %v", ErrInvalid, c.TapThreshold)
	case c.SwipeThreshold <= c.TapThreshold:
		return fmt.Errorf("%w: swipe threshold %v must exceed tap threshold %v", ErrInvalid, c.SwipeThreshold, c.TapThreshold)
	case c.LabelEpsilon < 0 || c.LabelEpsilon >= c.SwipeThreshold:
		return fmt.Errorf("%w: label epsilon %v outside [0, %v)", ErrInvalid, c.LabelEpsilon, c.SwipeThreshold)
	case c.RotationDivisor == 0:
		return fmt.Errorf("%w: rotation divisor must be non-zero", ErrInvalid)
	case c.ExitDuration <= 0 || c.ResetDuration <= 0 || c.NavLockDuration <= 0 || c.OverlayFadeDuration <= 0:
		return fmt.Errorf("%w: animation and lock durations must be positive", ErrInvalid)
	case c.OverlayFadeDuration > c.ResetDuration:
		return fmt.Errorf("%w: overlay fade %v longer than reset %v", ErrInvalid, c.OverlayFadeDuration, c.ResetDuration)
	case c.CellWidthPx <= 0 || c.CellHeightPx <= 0:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalid)
	case c.MatchProbability < 0 || c.MatchProbability > 1:
		return fmt.Errorf("%w: match probability %v outside [0, 1]", ErrInvalid, c.MatchProbability)
	}
	return nil
}
