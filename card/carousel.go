package card

import (
	"time"

	"swipedeck/clock"
	"swipedeck/gesture"
)

// Carousel tracks the displayed photo of one profile
// Navigation is debounced: an accepted request locks further requests for a fixed duration
type Carousel struct {
	clock   clock.Clock
	lockFor time.Duration
	index   int
	count   int
	locked  bool
	timer   clock.Timer
	stamp   uint64
}

// NewCarousel creates an empty carousel
func NewCarousel(clk clock.Clock, lockFor time.Duration) *Carousel {
	return &Carousel{clock: clk, lockFor: lockFor}
}

// Reset starts over for a new profile with count photos
// Any pending unlock from the previous profile is cancelled and ignored
func (c *Carousel) Reset(count int) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.stamp++
	c.index = 0
	c.count = max(count, 0)
	c.locked = false
}

// Next advances one photo, clamped at the last
// Returns true if the index changed
func (c *Carousel) Next() bool {
	return c.step(1)
}

// Previous goes back one photo, clamped at the first
// Returns true if the index changed
func (c *Carousel) Previous() bool {
	return c.step(-1)
}

// Navigate dispatches a tap direction
func (c *Carousel) Navigate(nav gesture.Nav) bool {
	switch nav {
	case gesture.NavNext:
		return c.Next()
	case gesture.NavPrevious:
		return c.Previous()
	}
	return false
}

func (c *Carousel) step(dir int) bool {
	if c.locked || c.count == 0 {
		return false
	}
	// Lock engages on every accepted request, clamped or not
	c.lock()

	next := min(max(c.index+dir, 0), c.count-1)
	if next == c.index {
		return false
	}
	c.index = next
	return true
}

func (c *Carousel) lock() {
	c.locked = true
	stamp := c.stamp
	c.timer = c.clock.AfterFunc(c.lockFor, func() {
		if stamp != c.stamp {
			return
		}
		c.locked = false
		c.timer = nil
	})
}

// Index returns the displayed photo
func (c *Carousel) Index() int {
	return c.index
}

// Count returns the number of photos
func (c *Carousel) Count() int {
	return c.count
}

// Locked reports whether navigation is debounced
func (c *Carousel) Locked() bool {
	return c.locked
}
