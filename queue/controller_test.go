package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipedeck/profile"
)

func ids(list []profile.Profile) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func current(t *testing.T, c *Controller) profile.Profile {
	t.Helper()
	p, ok := c.Current()
	require.True(t, ok)
	return p
}

func TestAdvanceWraps(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	assert.Equal(t, "1", current(t, c).ID)

	for i := 0; i < 7; i++ {
		c.Advance()
	}
	assert.Equal(t, "8", current(t, c).ID)
	c.Advance()
	assert.Equal(t, "1", current(t, c).ID)
}

func TestEmptyQueue(t *testing.T) {
	c := New(nil, nil, nil)
	_, ok := c.Current()
	assert.False(t, ok)
	c.Advance()
	assert.False(t, c.OnSettled(profile.Profile{ID: "1"}))
	_, ok = c.Favorite()
	assert.False(t, ok)
	_, ok = c.Comment()
	assert.False(t, ok)
}

func TestDislikeAdvancesOnSettle(t *testing.T) {
	c := New(profile.Builtin(), FixedMatcher(true), nil)
	p := current(t, c)

	out := c.OnDismiss(p, false)
	assert.False(t, out.Matched, "dislikes never match")
	assert.Equal(t, "1", current(t, c).ID, "dismiss does not advance")

	assert.True(t, c.OnSettled(p))
	assert.Equal(t, "2", current(t, c).ID)
	assert.Equal(t, []string{"1"}, ids(c.Disliked()))
}

func TestMatchHoldsQueue(t *testing.T) {
	tests := []struct {
		name    string
		ack     func(c *Controller) bool
		wantID  string
		wantMsg bool
	}{
		{"Keep swiping", func(c *Controller) bool { return c.KeepSwiping() }, "2", false},
		{"Send message", func(c *Controller) bool { _, ok := c.SendMessage(); return ok }, "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(profile.Builtin(), FixedMatcher(true), nil)
			p := current(t, c)

			out := c.OnDismiss(p, true)
			assert.True(t, out.Matched)
			assert.False(t, c.OnSettled(p), "pending match holds the queue")

			m, ok := c.PendingMatch()
			require.True(t, ok)
			assert.Equal(t, "1", m.ID)

			assert.True(t, tt.ack(c))
			_, ok = c.PendingMatch()
			assert.False(t, ok)
			assert.Equal(t, tt.wantID, current(t, c).ID)

			chat, ok := c.ChatTarget()
			assert.Equal(t, tt.wantMsg, ok)
			if ok {
				assert.Equal(t, "1", chat.ID)
			}
			assert.Equal(t, []string{"1"}, ids(c.Matches()))
		})
	}
}

func TestAcknowledgeWithoutMatch(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	assert.False(t, c.KeepSwiping())
	_, ok := c.SendMessage()
	assert.False(t, ok)
	assert.Equal(t, "1", current(t, c).ID)
}

func TestLikeWithoutMatch(t *testing.T) {
	c := New(profile.Builtin(), FixedMatcher(false), nil)
	p := current(t, c)

	out := c.OnDismiss(p, true)
	assert.True(t, out.Liked)
	assert.False(t, out.Matched)
	assert.True(t, c.OnSettled(p))
	assert.Equal(t, []string{"1"}, ids(c.Liked()))
	assert.Empty(t, c.Matches())
}

func TestStaleCallsDropped(t *testing.T) {
	c := New(profile.Builtin(), FixedMatcher(true), nil)
	other := profile.Builtin()[3]

	out := c.OnDismiss(other, true)
	assert.True(t, out.Stale)
	assert.False(t, out.Matched)
	assert.Empty(t, c.Liked())

	assert.False(t, c.OnSettled(other))
	assert.Equal(t, "1", current(t, c).ID)
}

func TestSettleOncePerProfile(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	p := current(t, c)
	c.OnDismiss(p, false)

	assert.True(t, c.OnSettled(p))
	assert.False(t, c.OnSettled(p), "second settle for the same profile is stale")
	assert.Equal(t, "2", current(t, c).ID)
}

func TestFilter(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	c.Advance()

	assert.True(t, c.ApplyFilter("Travel"))
	assert.Equal(t, "Travel", c.Filter())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "1", current(t, c).ID, "filter restarts from the head")

	got := []string{}
	for i := 0; i < c.Len(); i++ {
		got = append(got, current(t, c).ID)
		c.Advance()
	}
	assert.Equal(t, []string{"1", "3", "5", "8"}, got)
	assert.Equal(t, "1", current(t, c).ID, "wraps within the filtered list")

	assert.False(t, c.ApplyFilter("Skydiving"))
	assert.Equal(t, 8, c.Len(), "unknown desire falls back to the whole deck")

	c.ApplyFilter("Philosophy")
	assert.Equal(t, "6", current(t, c).ID)
	c.ClearFilter()
	assert.Empty(t, c.Filter())
	assert.Equal(t, 8, c.Len())
	assert.Equal(t, "1", current(t, c).ID)
}

func TestFilterDropsPendingMatch(t *testing.T) {
	c := New(profile.Builtin(), FixedMatcher(true), nil)
	c.OnDismiss(current(t, c), true)
	c.ApplyFilter("Music")

	_, ok := c.PendingMatch()
	assert.False(t, ok)
	assert.Equal(t, "2", current(t, c).ID)
}

func TestDesires(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	d := c.Desires()
	require.NotEmpty(t, d)
	assert.Equal(t, "Wants to marry", d[0])
	assert.Contains(t, d, "Programming")
}

func TestCollectionsHaveNoDuplicates(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)

	_, ok := c.Favorite()
	assert.True(t, ok)
	_, ok = c.Favorite()
	assert.False(t, ok)

	_, ok = c.Archive()
	assert.True(t, ok)
	_, ok = c.Archive()
	assert.False(t, ok)

	c.Advance()
	c.Archive()
	assert.Equal(t, []string{"1"}, ids(c.Favorites()))
	assert.Equal(t, []string{"1", "2"}, ids(c.Archived()))
}

func TestComment(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	text, ok := c.Comment()
	require.True(t, ok)
	assert.Equal(t, "Anonymous comment for Jessica Smith!", text)

	c.Comment()
	assert.Len(t, c.Comments(), 2, "comments are a log, repeats allowed")
}

func TestReturnedListsAreCopies(t *testing.T) {
	c := New(profile.Builtin(), nil, nil)
	c.Favorite()
	favs := c.Favorites()
	favs[0].Name = "changed"
	assert.Equal(t, "Jessica Smith", c.Favorites()[0].Name)
}
