package app

// Cues plays feedback sounds, satisfied by *audio.SoundManager
type Cues interface {
	PlayLike()
	PlayNope()
	PlayMatch()
	PlayWhoosh()
}

type silentCues struct{}

func (silentCues) PlayLike()   {}
func (silentCues) PlayNope()   {}
func (silentCues) PlayMatch()  {}
func (silentCues) PlayWhoosh() {}
