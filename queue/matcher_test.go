package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swipedeck/profile"
)

func TestRandomMatcherDeterministic(t *testing.T) {
	a := NewRandomMatcher(0.3, 42)
	b := NewRandomMatcher(0.3, 42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Match(profile.Profile{}), b.Match(profile.Profile{}))
	}
}

func TestRandomMatcherProbability(t *testing.T) {
	tests := []struct {
		name string
		prob float64
		min  int
		max  int
	}{
		{"Never", 0, 0, 0},
		{"Always", 1, 1000, 1000},
		{"Default rate", 0.3, 220, 380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRandomMatcher(tt.prob, 7)
			hits := 0
			for i := 0; i < 1000; i++ {
				if m.Match(profile.Profile{}) {
					hits++
				}
			}
			assert.GreaterOrEqual(t, hits, tt.min)
			assert.LessOrEqual(t, hits, tt.max)
		})
	}
}

func TestMatchFunc(t *testing.T) {
	m := MatchFunc(func(p profile.Profile) bool { return p.ID == "2" })
	assert.True(t, m.Match(profile.Profile{ID: "2"}))
	assert.False(t, m.Match(profile.Profile{ID: "3"}))
	assert.True(t, FixedMatcher(true).Match(profile.Profile{}))
}
