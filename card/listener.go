package card

import "swipedeck/profile"

//go:generate mockgen -source=listener.go -destination=mock_listener_test.go -package=card -self_package=swipedeck/card

// Listener receives the card's decisions
// Commit callbacks fire synchronously when the exit animation starts,
// GestureSettled fires once the animation has fully run
type Listener interface {
	LikeCommitted(p profile.Profile, d ExitDecision)
	DislikeCommitted(p profile.Profile, d ExitDecision)
	GestureSettled(p profile.Profile, wasLiked bool)
}

// ListenerFuncs adapts plain functions to Listener, nil fields are skipped
type ListenerFuncs struct {
	OnLike    func(p profile.Profile, d ExitDecision)
	OnDislike func(p profile.Profile, d ExitDecision)
	OnSettled func(p profile.Profile, wasLiked bool)
}

func (l ListenerFuncs) LikeCommitted(p profile.Profile, d ExitDecision) {
	if l.OnLike != nil {
		l.OnLike(p, d)
	}
}

func (l ListenerFuncs) DislikeCommitted(p profile.Profile, d ExitDecision) {
	if l.OnDislike != nil {
		l.OnDislike(p, d)
	}
}

func (l ListenerFuncs) GestureSettled(p profile.Profile, wasLiked bool) {
	if l.OnSettled != nil {
		l.OnSettled(p, wasLiked)
	}
}
