package constant

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume in [0,1]
	AudioMasterVolume = 0.6
)

// Like chime: two rising notes
const (
	LikeNote1Duration = 70 * time.Millisecond
	LikeNote2Duration = 140 * time.Millisecond
	LikeAttack        = 5 * time.Millisecond
	LikeRelease       = 60 * time.Millisecond
)

// Nope buzz
const (
	NopeDuration = 120 * time.Millisecond
	NopeAttack   = 5 * time.Millisecond
	NopeRelease  = 80 * time.Millisecond
)

// Match fanfare: arpeggio over a bell
const (
	MatchNoteDuration = 90 * time.Millisecond
	MatchBellDuration = 600 * time.Millisecond
	MatchAttack       = 5 * time.Millisecond
	MatchRelease      = 400 * time.Millisecond
)

// Whoosh for the exit animation
const (
	WhooshDuration = 250 * time.Millisecond
	WhooshAttack   = 60 * time.Millisecond
	WhooshRelease  = 150 * time.Millisecond
)
