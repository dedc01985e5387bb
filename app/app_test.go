package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipedeck/card"
	"swipedeck/clock"
	"swipedeck/config"
	"swipedeck/photo"
	"swipedeck/queue"
	"swipedeck/render"
)

type recordingCues struct {
	played []string
}

func (r *recordingCues) PlayLike()   { r.played = append(r.played, "like") }
func (r *recordingCues) PlayNope()   { r.played = append(r.played, "nope") }
func (r *recordingCues) PlayMatch()  { r.played = append(r.played, "match") }
func (r *recordingCues) PlayWhoosh() { r.played = append(r.played, "whoosh") }

type rig struct {
	app    *App
	clock  *clock.Manual
	screen tcell.SimulationScreen
	cues   *recordingCues
	cfg    config.Config
}

func newRig(t *testing.T, matcher queue.Matcher) *rig {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(100, 50)

	cfg := config.Default()
	clk := clock.NewManual(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	cues := &recordingCues{}
	a, err := New(s, Options{
		Config:      cfg,
		Matcher:     matcher,
		Clock:       clk,
		Photos:      photo.NewCache("", nil),
		Cues:        cues,
		SnapshotDir: t.TempDir(),
	})
	require.NoError(t, err)
	return &rig{app: a, clock: clk, screen: s, cues: cues, cfg: cfg}
}

func (r *rig) press(x, y int) {
	r.app.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func (r *rig) release(x, y int) {
	r.app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func (r *rig) click(b render.Box) {
	x, y := b.X+b.W/2, b.Y+b.H/2
	r.press(x, y)
	r.release(x, y)
}

func (r *rig) key(k tcell.Key, ch rune) {
	r.app.HandleEvent(tcell.NewEventKey(k, ch, tcell.ModNone))
}

func (r *rig) char(ch rune) {
	r.key(tcell.KeyRune, ch)
}

func (r *rig) cardCentre() (int, int) {
	c := r.app.Layout().Card
	return c.X + c.W/2, c.Y + c.H/2
}

func (r *rig) controlBox(t *testing.T, c render.Control) render.Box {
	t.Helper()
	b, ok := r.app.Layout().BoxOf(c)
	require.True(t, ok, "control %s not laid out", c)
	return b
}

func currentID(t *testing.T, a *App) string {
	t.Helper()
	p, ok := a.Card().Profile()
	require.True(t, ok)
	return p.ID
}

func TestNewMountsFirstProfile(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	assert.Equal(t, "1", currentID(t, r.app))
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	cfg := config.Default()
	cfg.TapThreshold = cfg.SwipeThreshold
	_, err := New(s, Options{Config: cfg})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDragRightLikesAndAdvances(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()

	r.press(x-10, y)
	r.press(x, y)
	r.press(x+12, y)
	r.release(x+12, y)

	require.Equal(t, card.PhaseCommitting, r.app.Card().Phase())
	require.Len(t, r.app.Queue().Liked(), 1)
	assert.Equal(t, []string{"like"}, r.cues.played)
	assert.Equal(t, 0, r.app.Queue().Index(), "queue waits for the exit animation")

	r.clock.Advance(r.cfg.ExitDuration)
	assert.Equal(t, 1, r.app.Queue().Index())
	assert.Equal(t, "2", currentID(t, r.app))
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())

	m := r.app.Metrics()
	assert.Equal(t, 1.0, m.Value("swipedeck_decisions_total{direction=like}"))
	assert.Equal(t, 1.0, m.Value("swipedeck_gestures_total{kind=like}"))
}

func TestDragLeftDislikes(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(true))
	x, y := r.cardCentre()

	r.press(x, y)
	r.press(x-20, y)
	r.release(x-20, y)

	require.Len(t, r.app.Queue().Disliked(), 1)
	assert.Empty(t, r.app.Queue().Matches(), "dislikes never match")
	assert.Equal(t, []string{"nope"}, r.cues.played)

	r.clock.Advance(r.cfg.ExitDuration)
	assert.Equal(t, "2", currentID(t, r.app))
}

func TestShortDragSnapsBack(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()

	r.press(x, y)
	r.press(x+5, y)
	r.release(x+5, y)

	assert.Equal(t, card.PhaseResetting, r.app.Card().Phase())
	assert.Equal(t, []string{"whoosh"}, r.cues.played)

	r.clock.Advance(r.cfg.ResetDuration)
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())
	assert.Empty(t, r.app.Queue().Liked())
	assert.Empty(t, r.app.Queue().Disliked())
}

func TestReleaseOnControlDiscardsSwipe(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()
	like := r.controlBox(t, render.ControlLike)

	r.press(x, y)
	r.press(like.X+like.W/2, y)
	r.release(like.X+like.W/2, like.Y+like.H/2)

	assert.Empty(t, r.app.Queue().Liked())
	assert.NotEqual(t, card.PhaseCommitting, r.app.Card().Phase())
	assert.Empty(t, r.app.Queue().Archived(), "a drag never activates the control it ends on")
}

func TestTapNavigatesImages(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	c := r.app.Layout().Card
	right := c.X + c.W*3/4
	left := c.X + c.W/4
	y := c.Y + c.H/2

	r.press(right, y)
	r.release(right, y)
	assert.Equal(t, 1, r.app.Card().ImageIndex())

	// Locked
	r.press(right, y)
	r.release(right, y)
	assert.Equal(t, 1, r.app.Card().ImageIndex())

	r.clock.Advance(r.cfg.NavLockDuration)
	r.press(left, y)
	r.release(left, y)
	assert.Equal(t, 0, r.app.Card().ImageIndex())
	assert.Equal(t, 2.0, r.app.Metrics().Value("swipedeck_image_navigations_total"))
}

func TestKeyboardNavigationAndDecisions(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))

	r.char('j')
	assert.Equal(t, 1, r.app.Card().ImageIndex())
	r.clock.Advance(r.cfg.NavLockDuration)
	r.char('k')
	assert.Equal(t, 0, r.app.Card().ImageIndex())

	r.key(tcell.KeyLeft, 0)
	require.Len(t, r.app.Queue().Disliked(), 1)

	// Ignored while committing
	r.key(tcell.KeyRight, 0)
	assert.Empty(t, r.app.Queue().Liked())

	r.clock.Advance(r.cfg.ExitDuration)
	r.char('l')
	require.Len(t, r.app.Queue().Liked(), 1)
	assert.Equal(t, "2", r.app.Queue().Liked()[0].ID)
}

func TestMatchDialogKeepSwiping(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(true))

	r.char('l')
	assert.False(t, r.app.Scene().HasMatch, "dialog waits for the exit animation")

	r.clock.Advance(r.cfg.ExitDuration)
	s := r.app.Scene()
	require.True(t, s.HasMatch)
	assert.Equal(t, "1", s.Match.ID)
	assert.Equal(t, []string{"like", "match"}, r.cues.played)
	assert.Equal(t, 0, r.app.Queue().Index())
	assert.Equal(t, 1.0, r.app.Metrics().Value("swipedeck_matches_total"))

	// Modal: controls underneath are inert
	r.click(r.controlBox(t, render.ControlArchive))
	assert.Empty(t, r.app.Queue().Archived())

	r.click(r.app.Layout().KeepSwiping)
	assert.False(t, r.app.Scene().HasMatch)
	assert.Equal(t, 1, r.app.Queue().Index())
	assert.Equal(t, "2", currentID(t, r.app))
}

func TestMatchDialogSendMessage(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(true))

	r.char('l')
	r.clock.Advance(r.cfg.ExitDuration)
	require.True(t, r.app.Scene().HasMatch)

	r.key(tcell.KeyEnter, 0)
	target, ok := r.app.Queue().ChatTarget()
	require.True(t, ok)
	assert.Equal(t, "1", target.ID)
	assert.Equal(t, "Chat with Jessica Smith opened", r.app.Status())
	assert.Equal(t, "1", currentID(t, r.app))
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())
	assert.False(t, r.app.Scene().HasMatch)
}

func TestKeyboardCommitMidDragThenMatch(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(true))
	x, y := r.cardCentre()

	r.press(x, y)
	r.press(x+4, y)
	r.char('l')
	r.clock.Advance(r.cfg.ExitDuration)
	require.True(t, r.app.Scene().HasMatch)

	// Release lands while the dialog is up
	r.release(x+4, y)
	r.key(tcell.KeyEscape, 0)
	require.False(t, r.app.Scene().HasMatch)
	require.Equal(t, "2", currentID(t, r.app))

	r.click(r.controlBox(t, render.ControlArchive))
	require.Len(t, r.app.Queue().Archived(), 1, "first click after the dialog activates")
	assert.Equal(t, "2", r.app.Queue().Archived()[0].ID)
}

func TestKeyboardCommitMidDragReleaseOnControl(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()
	archive := r.controlBox(t, render.ControlArchive)

	r.press(x, y)
	r.press(x+4, y)
	r.char('h')
	require.Equal(t, card.PhaseCommitting, r.app.Card().Phase())
	r.release(archive.X+1, archive.Y+1)

	assert.Empty(t, r.app.Queue().Archived(), "release of the card drag is not a control press")
	assert.Len(t, r.app.Queue().Disliked(), 1)

	r.clock.Advance(r.cfg.ExitDuration)
	r.click(archive)
	assert.Len(t, r.app.Queue().Archived(), 1)
}

func TestControlsRecordActions(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))

	r.click(r.controlBox(t, render.ControlArchive))
	require.Len(t, r.app.Queue().Archived(), 1)
	assert.Equal(t, "Archived Jessica Smith", r.app.Status())

	r.click(r.controlBox(t, render.ControlArchive))
	assert.Len(t, r.app.Queue().Archived(), 1)
	assert.Equal(t, "Jessica Smith is already archived", r.app.Status())

	r.click(r.controlBox(t, render.ControlFavorite))
	assert.Len(t, r.app.Queue().Favorites(), 1)

	r.click(r.controlBox(t, render.ControlComment))
	assert.Equal(t, []string{"Anonymous comment for Jessica Smith!"}, r.app.Queue().Comments())

	r.click(r.controlBox(t, render.ControlDislike))
	assert.Len(t, r.app.Queue().Disliked(), 1)

	assert.Equal(t, 2.0, r.app.Metrics().Value("swipedeck_actions_total{action=archive}"))
	assert.Equal(t, card.PhaseCommitting, r.app.Card().Phase())
}

func TestControlNeedsPressAndReleaseOnSameControl(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	archive := r.controlBox(t, render.ControlArchive)
	fav := r.controlBox(t, render.ControlFavorite)

	r.press(archive.X+1, archive.Y+1)
	r.release(fav.X+1, fav.Y+1)

	assert.Empty(t, r.app.Queue().Archived())
	assert.Empty(t, r.app.Queue().Favorites())
}

func TestStatusExpires(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))

	r.char('a')
	require.NotEmpty(t, r.app.Status())

	r.clock.Advance(time.Second)
	r.char('*')
	r.clock.Advance(time.Second)
	assert.Equal(t, "Added Jessica Smith to favourites", r.app.Status(), "replaced message keeps its own timeout")

	r.clock.Advance(time.Second)
	assert.Empty(t, r.app.Status())
}

func TestFilterCycle(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	desires := r.app.Queue().Desires()
	require.NotEmpty(t, desires)

	r.click(r.controlBox(t, render.ControlFilter))
	assert.Equal(t, desires[0], r.app.Queue().Filter())
	assert.Equal(t, "Filter: "+desires[0], r.app.Status())

	for range desires {
		r.char('f')
	}
	assert.Empty(t, r.app.Queue().Filter(), "cycle wraps back to everyone")
	assert.Equal(t, "Showing everyone", r.app.Status())
}

func TestFilterDuringExitDropsStaleSettle(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))

	r.char('l')
	require.Equal(t, card.PhaseCommitting, r.app.Card().Phase())
	r.char('f')
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())

	mounted := currentID(t, r.app)
	r.clock.Advance(r.cfg.ExitDuration)
	assert.Equal(t, mounted, currentID(t, r.app))
	assert.Equal(t, 0, r.app.Queue().Index())
	assert.Equal(t, card.PhaseIdle, r.app.Card().Phase())
}

func TestResizeCancelsDrag(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()

	r.press(x, y)
	r.press(x+8, y)
	require.Equal(t, card.PhaseDragging, r.app.Card().Phase())

	r.screen.SetSize(80, 40)
	r.app.HandleEvent(tcell.NewEventResize(80, 40))

	assert.Equal(t, card.PhaseResetting, r.app.Card().Phase())
	assert.Equal(t, 80, r.app.Layout().Width)

	// A stray release after the cancel is not a gesture
	r.release(x+8, y)
	assert.Empty(t, r.app.Queue().Liked())
}

func TestEscapeCancelsDrag(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	x, y := r.cardCentre()

	r.press(x, y)
	r.press(x+20, y)
	r.key(tcell.KeyEscape, 0)

	assert.Equal(t, card.PhaseResetting, r.app.Card().Phase())
	r.release(x+20, y)
	assert.Empty(t, r.app.Queue().Liked())
}

func TestInterruptRunsCallback(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	ran := false
	r.app.HandleEvent(tcell.NewEventInterrupt(func() { ran = true }))
	assert.True(t, ran)
}

func TestSnapshot(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	r.char('s')

	path := filepath.Join(r.app.snapshotDir, "1-0.webp")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Equal(t, "Saved "+path, r.app.Status())
}

func TestQuit(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	assert.False(t, r.app.Done())
	r.char('q')
	assert.True(t, r.app.Done())
}

func TestDrawShowsProfile(t *testing.T) {
	r := newRig(t, queue.FixedMatcher(false))
	r.app.Draw()

	cells, w, h := r.screen.GetContents()
	var text strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) > 0 {
				text.WriteRune(runes[0])
			}
		}
		text.WriteByte('\n')
	}
	assert.Contains(t, text.String(), "Jessica")
	assert.Contains(t, text.String(), "1/8")
}
