package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"swipedeck/constant"
)

// Config holds volume and rate settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultConfig returns full effect volumes at the default master volume
func DefaultConfig() *Config {
	vols := make(map[SoundType]float64, soundTypeCount)
	for s := SoundType(0); s < soundTypeCount; s++ {
		vols[s] = 1.0
	}
	vols[SoundWhoosh] = 0.4
	return &Config{
		Enabled:       true,
		MasterVolume:  constant.AudioMasterVolume,
		EffectVolumes: vols,
		SampleRate:    constant.AudioSampleRate,
	}
}

// LoadConfig applies SWIPEDECK_AUDIO_* environment overrides to the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SWIPEDECK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("SWIPEDECK_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as JSON keyed by sound name
	if effectVols := os.Getenv("SWIPEDECK_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("SWIPEDECK_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
