package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swipedeck/clock"
	"swipedeck/gesture"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestCarouselClamps(t *testing.T) {
	clk := clock.NewManual(epoch)
	c := NewCarousel(clk, 300*time.Millisecond)
	c.Reset(3)

	assert.False(t, c.Previous(), "clamped at first")
	assert.Equal(t, 0, c.Index())
	clk.Advance(300 * time.Millisecond)

	for i := 1; i <= 2; i++ {
		assert.True(t, c.Next())
		assert.Equal(t, i, c.Index())
		clk.Advance(300 * time.Millisecond)
	}

	assert.False(t, c.Next(), "clamped at last, no wraparound")
	assert.Equal(t, 2, c.Index())
}

func TestCarouselDebounce(t *testing.T) {
	clk := clock.NewManual(epoch)
	c := NewCarousel(clk, 300*time.Millisecond)
	c.Reset(4)

	assert.True(t, c.Next())
	assert.True(t, c.Locked())
	assert.False(t, c.Next(), "second request inside lock window")
	clk.Advance(299 * time.Millisecond)
	assert.False(t, c.Navigate(gesture.NavNext))
	assert.Equal(t, 1, c.Index())

	clk.Advance(time.Millisecond)
	assert.False(t, c.Locked(), "lock lasts exactly the lock duration")
	assert.True(t, c.Navigate(gesture.NavNext))
	assert.Equal(t, 2, c.Index())
}

func TestCarouselResetCancelsLock(t *testing.T) {
	clk := clock.NewManual(epoch)
	c := NewCarousel(clk, 300*time.Millisecond)
	c.Reset(3)
	c.Next()

	c.Reset(2)
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Locked())
	assert.Zero(t, clk.Pending(), "previous unlock timer stopped")

	assert.True(t, c.Next())
	assert.True(t, c.Locked())
}

func TestCarouselStaleUnlockIgnored(t *testing.T) {
	clk := clock.NewManual(epoch)
	c := NewCarousel(clk, 300*time.Millisecond)
	c.Reset(3)

	// Capture a timer that survives Stop to model a callback already queued on the loop
	var queued func()
	stale := &capturingClock{Manual: clk, capture: &queued}
	c.clock = stale
	c.Next()

	c.clock = clk
	c.Reset(3)
	c.Next()
	assert.True(t, c.Locked())

	queued()
	assert.True(t, c.Locked(), "unlock scheduled for the previous profile is ignored")
}

func TestCarouselEmpty(t *testing.T) {
	clk := clock.NewManual(epoch)
	c := NewCarousel(clk, 300*time.Millisecond)
	c.Reset(0)

	assert.False(t, c.Next())
	assert.False(t, c.Previous())
	assert.False(t, c.Locked())
	assert.Equal(t, 0, c.Index())
}

// capturingClock hands the callback to the test instead of scheduling it
type capturingClock struct {
	*clock.Manual
	capture *func()
}

func (c *capturingClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	*c.capture = f
	return noopTimer{}
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }
