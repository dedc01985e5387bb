package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"swipedeck/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, keep in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateLikeSound is a bright two-note rising chime (E5 then A5)
func CreateLikeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(659.25, constant.LikeNote1Duration, constant.LikeAttack, constant.LikeRelease/2, WaveSine, rate),
		note(880.0, constant.LikeNote2Duration, constant.LikeAttack, constant.LikeRelease, WaveSine, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundLike]*cfg.MasterVolume)
}

// CreateNopeSound is a short falling saw buzz
func CreateNopeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := beep.Mix(
		newVolume(note(110.0, constant.NopeDuration, constant.NopeAttack, constant.NopeRelease, WaveSaw, rate), 0.6),
		newVolume(note(82.41, constant.NopeDuration, constant.NopeAttack, constant.NopeRelease, WaveSquare, rate), 0.2),
	)
	return newVolume(buzz, cfg.EffectVolumes[SoundNope]*cfg.MasterVolume)
}

// CreateMatchSound is a C major arpeggio followed by a ringing bell with its octave
func CreateMatchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.MatchNoteDuration

	arp := beep.Seq(
		note(523.25, d, constant.MatchAttack, d/2, WaveSquare, rate),
		note(659.25, d, constant.MatchAttack, d/2, WaveSquare, rate),
		note(783.99, d, constant.MatchAttack, d/2, WaveSquare, rate),
	)
	bell := beep.Mix(
		newVolume(note(1046.5, constant.MatchBellDuration, constant.MatchAttack, constant.MatchRelease, WaveSine, rate), 0.7),
		newVolume(note(2093.0, constant.MatchBellDuration, constant.MatchAttack, constant.MatchRelease/2, WaveSine, rate), 0.3),
	)
	return newVolume(beep.Seq(newVolume(arp, 0.4), bell), cfg.EffectVolumes[SoundMatch]*cfg.MasterVolume)
}

// CreateWhooshSound is a soft noise swell matching the exit animation
func CreateWhooshSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	shaped := note(0, constant.WhooshDuration, constant.WhooshAttack, constant.WhooshRelease, WaveNoise, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundLike:
		return CreateLikeSound(cfg)
	case SoundNope:
		return CreateNopeSound(cfg)
	case SoundMatch:
		return CreateMatchSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	default:
		return nil
	}
}
