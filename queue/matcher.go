package queue

import (
	"math/rand/v2"

	"swipedeck/profile"
)

// Matcher decides whether a like is reciprocated
type Matcher interface {
	Match(p profile.Profile) bool
}

// RandomMatcher reciprocates likes with a fixed probability
// Seeded so a session can be replayed
type RandomMatcher struct {
	rng         *rand.Rand
	probability float64
}

// NewRandomMatcher creates a matcher from a PCG source
func NewRandomMatcher(probability float64, seed uint64) *RandomMatcher {
	return &RandomMatcher{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		probability: probability,
	}
}

// Match draws once per like
func (m *RandomMatcher) Match(profile.Profile) bool {
	return m.rng.Float64() < m.probability
}

// FixedMatcher always returns the same answer
type FixedMatcher bool

// Match returns the fixed answer
func (m FixedMatcher) Match(profile.Profile) bool {
	return bool(m)
}

// MatchFunc adapts a function to Matcher
type MatchFunc func(p profile.Profile) bool

// Match calls f
func (f MatchFunc) Match(p profile.Profile) bool {
	return f(p)
}
