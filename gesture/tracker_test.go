package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker(nil)

	_, ok := tr.Move(Sample{10, 10})
	assert.False(t, ok, "move without origin is a no-op")

	require.True(t, tr.Start(Sample{100, 300}))
	d, ok := tr.Move(Sample{180, 310})
	require.True(t, ok)
	assert.Equal(t, Delta{DX: 80, DY: 10}, d)
	assert.Equal(t, d, tr.Delta())

	g, ok := tr.End(Sample{260, 300})
	require.True(t, ok)
	assert.Equal(t, Delta{DX: 160}, g.Delta())
	assert.False(t, tr.Active())

	_, ok = tr.End(Sample{0, 0})
	assert.False(t, ok, "double end ignored")
}

func TestTrackerFrozen(t *testing.T) {
	frozen := false
	tr := NewTracker(func() bool { return frozen })

	require.True(t, tr.Start(Sample{0, 0}))
	frozen = true

	_, ok := tr.Move(Sample{50, 0})
	assert.False(t, ok, "moves ignored while frozen")
	assert.Equal(t, Delta{}, tr.Delta())

	_, ok = tr.End(Sample{50, 0})
	assert.False(t, ok)
	assert.False(t, tr.Active(), "end still clears the origin")

	assert.False(t, tr.Start(Sample{0, 0}), "no new gesture while frozen")
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(nil)
	assert.False(t, tr.Cancel())
	tr.Start(Sample{1, 1})
	assert.True(t, tr.Cancel())
	assert.False(t, tr.Active())
}
