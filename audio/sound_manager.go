// Package audio plays short synthesised cues for swipe decisions.
package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"swipedeck/constant"
)

// SoundManager owns the speaker and a mixer that cues are added to
// Every method is a no-op until Initialize succeeds, the app runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	logger      *slog.Logger

	// output receives cues instead of the speaker when set
	output func(beep.Streamer)
}

// NewSoundManager creates a sound manager
func NewSoundManager(cfg *Config, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.output != nil {
		sm.mixer.Clear()
		sm.initialized = false
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayLike plays the like chime
func (sm *SoundManager) PlayLike() { sm.play(SoundLike) }

// PlayNope plays the dislike buzz
func (sm *SoundManager) PlayNope() { sm.play(SoundNope) }

// PlayMatch plays the match fanfare
func (sm *SoundManager) PlayMatch() { sm.play(SoundMatch) }

// PlayWhoosh plays the exit swell
func (sm *SoundManager) PlayWhoosh() { sm.play(SoundWhoosh) }

func (sm *SoundManager) play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}
	if sm.output != nil {
		sm.output(streamer)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
