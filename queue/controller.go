// Package queue owns the ordered deck of profiles behind the card.
//
// The Controller is the sink for card decisions: OnDismiss records the
// verdict at commit time and rolls for a match, OnSettled advances to the next
// profile once the exit animation is over. A pending match holds the queue
// until the user acknowledges it. Calls for a profile that is no longer
// current are dropped.
package queue

import (
	"fmt"
	"log/slog"

	"swipedeck/profile"
)

// Outcome is the queue's reaction to a committed decision
type Outcome struct {
	Profile profile.Profile
	Liked   bool
	Matched bool
	Stale   bool // Profile was not current, nothing recorded
}

// Controller is the profile queue
// Not safe for concurrent use: drive it from the event loop
type Controller struct {
	all     []profile.Profile
	active  []profile.Profile
	index   int
	filter  string
	matcher Matcher
	logger  *slog.Logger

	pending *profile.Profile
	chat    *profile.Profile

	matches   []profile.Profile
	liked     []profile.Profile
	disliked  []profile.Profile
	favorites []profile.Profile
	archived  []profile.Profile
	comments  []string
}

// New creates a controller over profiles in deck order
func New(profiles []profile.Profile, matcher Matcher, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if matcher == nil {
		matcher = FixedMatcher(false)
	}
	all := append([]profile.Profile(nil), profiles...)
	return &Controller{
		all:     all,
		active:  all,
		matcher: matcher,
		logger:  logger,
	}
}

// Current returns the profile at the head of the active list
func (c *Controller) Current() (profile.Profile, bool) {
	if len(c.active) == 0 {
		return profile.Profile{}, false
	}
	return c.active[c.index], true
}

// Index returns the position in the active list
func (c *Controller) Index() int {
	return c.index
}

// Len returns the size of the active list
func (c *Controller) Len() int {
	return len(c.active)
}

// Advance moves to the next profile, wrapping at the end of the active list
func (c *Controller) Advance() {
	if len(c.active) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.active)
	c.logger.Debug("queue advanced", "index", c.index, "len", len(c.active))
}

func (c *Controller) isCurrent(p profile.Profile) bool {
	cur, ok := c.Current()
	return ok && cur.ID == p.ID
}

// OnDismiss records a committed decision for the current profile
// Likes roll the matcher; a match holds the queue until acknowledged
func (c *Controller) OnDismiss(p profile.Profile, wasLiked bool) Outcome {
	if !c.isCurrent(p) {
		c.logger.Warn("stale dismiss dropped", "id", p.ID)
		return Outcome{Profile: p, Liked: wasLiked, Stale: true}
	}

	out := Outcome{Profile: p, Liked: wasLiked}
	if !wasLiked {
		c.disliked = appendUnique(c.disliked, p)
		c.logger.Info("disliked", "id", p.ID, "name", p.Name)
		return out
	}

	c.liked = appendUnique(c.liked, p)
	if c.matcher.Match(p) {
		out.Matched = true
		c.pending = &p
		c.matches = appendUnique(c.matches, p)
		c.logger.Info("match", "id", p.ID, "name", p.Name)
	} else {
		c.logger.Info("liked", "id", p.ID, "name", p.Name)
	}
	return out
}

// OnSettled advances past p unless a match is waiting for acknowledgement
func (c *Controller) OnSettled(p profile.Profile) bool {
	if !c.isCurrent(p) {
		c.logger.Warn("stale settle dropped", "id", p.ID)
		return false
	}
	if c.pending != nil {
		return false
	}
	c.Advance()
	return true
}

// PendingMatch returns the match awaiting acknowledgement
func (c *Controller) PendingMatch() (profile.Profile, bool) {
	if c.pending == nil {
		return profile.Profile{}, false
	}
	return *c.pending, true
}

// KeepSwiping acknowledges the pending match and advances
func (c *Controller) KeepSwiping() bool {
	if c.pending == nil {
		return false
	}
	c.pending = nil
	c.Advance()
	return true
}

// SendMessage acknowledges the pending match without advancing and opens a chat with it
func (c *Controller) SendMessage() (profile.Profile, bool) {
	if c.pending == nil {
		return profile.Profile{}, false
	}
	p := *c.pending
	c.pending = nil
	c.chat = &p
	c.logger.Info("chat opened", "id", p.ID, "name", p.Name)
	return p, true
}

// ChatTarget returns the profile of the last opened chat
func (c *Controller) ChatTarget() (profile.Profile, bool) {
	if c.chat == nil {
		return profile.Profile{}, false
	}
	return *c.chat, true
}

// === Filter ===

// ApplyFilter restricts the active list to profiles with desire
// Falls back to the whole deck when nothing matches; returns whether the filter matched
func (c *Controller) ApplyFilter(desire string) bool {
	filtered := profile.FilterByDesire(c.all, desire)
	matched := len(filtered) > 0
	if !matched {
		filtered = c.all
	}
	c.active = filtered
	c.index = 0
	c.filter = desire
	c.pending = nil
	c.logger.Info("filter applied", "desire", desire, "matched", matched, "len", len(c.active))
	return matched
}

// ClearFilter restores the whole deck from the start
func (c *Controller) ClearFilter() {
	c.active = c.all
	c.index = 0
	c.filter = ""
	c.pending = nil
}

// Filter returns the active desire filter, empty when unfiltered
func (c *Controller) Filter() string {
	return c.filter
}

// Desires returns every desire in the deck in first-seen order
func (c *Controller) Desires() []string {
	return profile.Desires(c.all)
}

// === Collections ===

// Favorite adds the current profile to favourites, returns false if already there
func (c *Controller) Favorite() (profile.Profile, bool) {
	p, ok := c.Current()
	if !ok || contains(c.favorites, p) {
		return p, false
	}
	c.favorites = append(c.favorites, p)
	c.logger.Info("favorited", "id", p.ID, "name", p.Name)
	return p, true
}

// Archive adds the current profile to the archive, returns false if already there
func (c *Controller) Archive() (profile.Profile, bool) {
	p, ok := c.Current()
	if !ok || contains(c.archived, p) {
		return p, false
	}
	c.archived = append(c.archived, p)
	c.logger.Info("archived", "id", p.ID, "name", p.Name)
	return p, true
}

// Comment leaves an anonymous comment on the current profile
func (c *Controller) Comment() (string, bool) {
	p, ok := c.Current()
	if !ok {
		return "", false
	}
	text := fmt.Sprintf("Anonymous comment for %s!", p.Name)
	c.comments = append(c.comments, text)
	c.logger.Info("commented", "id", p.ID)
	return text, true
}

func (c *Controller) All() []profile.Profile       { return clone(c.all) }
func (c *Controller) Matches() []profile.Profile   { return clone(c.matches) }
func (c *Controller) Liked() []profile.Profile     { return clone(c.liked) }
func (c *Controller) Disliked() []profile.Profile  { return clone(c.disliked) }
func (c *Controller) Favorites() []profile.Profile { return clone(c.favorites) }
func (c *Controller) Archived() []profile.Profile  { return clone(c.archived) }
func (c *Controller) Comments() []string           { return append([]string(nil), c.comments...) }

func contains(list []profile.Profile, p profile.Profile) bool {
	for _, q := range list {
		if q.ID == p.ID {
			return true
		}
	}
	return false
}

func appendUnique(list []profile.Profile, p profile.Profile) []profile.Profile {
	if contains(list, p) {
		return list
	}
	return append(list, p)
}

func clone(list []profile.Profile) []profile.Profile {
	return append([]profile.Profile(nil), list...)
}
