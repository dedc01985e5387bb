package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundLike   SoundType = iota // Like committed
	SoundNope                    // Dislike committed
	SoundMatch                   // Like reciprocated
	SoundWhoosh                  // Card leaves the screen
	soundTypeCount
)

// String returns the sound name used in configuration
func (s SoundType) String() string {
	switch s {
	case SoundLike:
		return "like"
	case SoundNope:
		return "nope"
	case SoundMatch:
		return "match"
	case SoundWhoosh:
		return "whoosh"
	default:
		return "unknown"
	}
}
