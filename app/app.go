// Package app runs the swipe deck on a tcell screen.
//
// Everything happens on the loop goroutine: terminal events, frame ticks and
// timer callbacks, which the real clock posts back as interrupt events. The
// card engine decides what a gesture means; the app routes its verdicts to the
// profile queue, the sound cues and the counters, and remounts the card when
// the queue moves on.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"swipedeck/card"
	"swipedeck/clock"
	"swipedeck/config"
	"swipedeck/constant"
	"swipedeck/gesture"
	"swipedeck/metrics"
	"swipedeck/photo"
	"swipedeck/profile"
	"swipedeck/queue"
	"swipedeck/render"
)

// Options are the collaborators of an App, nil fields get working defaults
type Options struct {
	Config      config.Config
	Profiles    []profile.Profile
	Matcher     queue.Matcher
	Clock       clock.Clock
	Photos      *photo.Cache
	Cues        Cues
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	SnapshotDir string
}

// App owns the screen and every piece of UI state
type App struct {
	screen tcell.Screen
	cfg    config.Config
	clock  clock.Clock
	logger *slog.Logger

	queue    *queue.Controller
	card     *card.Card
	renderer *render.Renderer
	layout   render.Layout
	photos   *photo.Cache
	cues     Cues
	metrics  *metrics.Metrics

	mouse    gesture.MouseSource
	dragging bool           // Press started on the card
	pressed  render.Control // Press started on a control
	empty    bool           // Queue had nothing to mount

	filterIdx   int
	snapshotDir string

	status      string
	statusSeq   uint64
	statusTimer clock.Timer

	dirty bool
	quit  bool
}

// New builds an app on an initialised screen
func New(screen tcell.Screen, opts Options) (*App, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Profiles) == 0 {
		opts.Profiles = profile.Builtin()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewReal(func(fn func()) {
			if err := screen.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
				opts.Logger.Warn("timer callback dropped", "error", err)
			}
		})
	}
	if opts.Matcher == nil {
		opts.Matcher = queue.NewRandomMatcher(opts.Config.MatchProbability, opts.Config.Seed)
	}
	if opts.Photos == nil {
		opts.Photos = photo.NewCache(opts.Config.PhotoDir, opts.Logger)
	}
	if opts.Cues == nil {
		opts.Cues = silentCues{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.SnapshotDir == "" {
		opts.SnapshotDir = "snapshots"
	}

	a := &App{
		screen:      screen,
		cfg:         opts.Config,
		clock:       opts.Clock,
		logger:      opts.Logger,
		queue:       queue.New(opts.Profiles, opts.Matcher, opts.Logger),
		renderer:    render.NewRenderer(opts.Config.CellWidthPx, opts.Config.CellHeightPx),
		photos:      opts.Photos,
		cues:        opts.Cues,
		metrics:     opts.Metrics,
		snapshotDir: opts.SnapshotDir,
	}
	a.card = card.New(opts.Config, opts.Clock, a, opts.Logger)
	a.resize()
	a.mountCurrent()
	return a, nil
}

// Run drives the event loop until quit or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	go func() {
		refs := a.allRefs()
		if err := a.photos.Preload(ctx, refs); err != nil {
			a.logger.Debug("photo preload stopped", "error", err)
			return
		}
		a.logger.Debug("photos preloaded", "count", len(refs))
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	a.Draw()
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev)
		case <-ticker.C:
			if a.card.Animating() {
				a.dirty = true
			}
		}
		if a.dirty {
			a.Draw()
		}
	}
	return nil
}

// HandleEvent applies one terminal event
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
		a.cancelPointer()
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	a.dirty = true
}

// Draw renders the current scene
func (a *App) Draw() {
	a.renderer.Draw(a.screen, a.layout, a.Scene())
	a.dirty = false
}

// Scene assembles what the next frame shows
func (a *App) Scene() render.Scene {
	s := render.Scene{
		Filter: a.queue.Filter(),
		Active: a.pressed,
		Status: a.status,
		Stats:  a.stats(),
	}
	if p, ok := a.card.Profile(); ok && !a.empty {
		s.Profile, s.HasProfile = p, true
		s.ImageIndex = a.card.ImageIndex()
		s.Visual = a.card.Visual(a.clock.Now())
		if p.ImageCount() > 0 {
			w, h := render.PhotoSize(a.layout)
			s.Photo = a.photos.Scaled(p.Image(s.ImageIndex), w, h)
		}
	}
	if m, ok := a.matchVisible(); ok {
		s.Match, s.HasMatch = m, true
	}
	return s
}

func (a *App) stats() string {
	pos := 0
	if !a.empty {
		pos = a.queue.Index() + 1
	}
	return fmt.Sprintf("%d/%d  ♥ %d  ✗ %d  ★ %d  matches %d ",
		pos, a.queue.Len(),
		len(a.queue.Liked()), len(a.queue.Disliked()),
		len(a.queue.Favorites()), len(a.queue.Matches()))
}

// === Input ===

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		a.quit = true
		return
	}

	if _, ok := a.matchVisible(); ok {
		switch {
		case ev.Key() == tcell.KeyEnter:
			a.sendMessage()
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.keepSwiping()
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.cancelPointer()
	case tcell.KeyRight:
		a.activate(render.ControlLike)
	case tcell.KeyLeft:
		a.activate(render.ControlDislike)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'l':
			a.activate(render.ControlLike)
		case 'h':
			a.activate(render.ControlDislike)
		case 'j':
			a.navigate(a.card.NextImage)
		case 'k':
			a.navigate(a.card.PreviousImage)
		case 'f':
			a.activate(render.ControlFilter)
		case 'a':
			a.activate(render.ControlArchive)
		case '*':
			a.activate(render.ControlFavorite)
		case 'c':
			a.activate(render.ControlComment)
		case 's':
			a.snapshot()
		}
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p, ok := a.mouse.Feed(gesture.FromTcell(ev, a.cfg.CellWidthPx, a.cfg.CellHeightPx))
	if !ok {
		return
	}

	// The match dialog is modal
	if _, visible := a.matchVisible(); visible {
		a.dragging = false
		if p.Phase != gesture.PhaseEnd {
			return
		}
		switch b, _ := a.layout.DialogButtonAt(x, y); b {
		case render.DialogSendMessage:
			a.sendMessage()
		case render.DialogKeepSwiping:
			a.keepSwiping()
		}
		return
	}

	switch p.Phase {
	case gesture.PhaseStart:
		a.dragging = false
		a.pressed = render.ControlNone
		if c, onControl := a.layout.ControlAt(x, y); onControl {
			a.pressed = c
			return
		}
		if a.layout.Card.Contains(x, y) && !a.empty {
			a.dragging = a.card.PointerStart(p.Sample)
		}
	case gesture.PhaseMove:
		if a.dragging {
			a.card.PointerMove(p.Sample)
		}
	case gesture.PhaseEnd:
		c, onControl := a.layout.ControlAt(x, y)
		if a.dragging {
			a.dragging = false
			// A keyboard commit mid-drag already ended the card gesture
			if a.card.Phase() == card.PhaseDragging {
				a.release(p.Sample, onControl)
			}
			return
		}
		pressed := a.pressed
		a.pressed = render.ControlNone
		if onControl && c == pressed {
			a.activate(c)
		}
	}
}

// release ends a card gesture, onControl discards it
func (a *App) release(s gesture.Sample, onControl bool) {
	before := a.card.ImageIndex()
	r, ok := a.card.PointerEnd(s, onControl, a.layout.Card.Pixels(a.cfg.CellWidthPx, a.cfg.CellHeightPx))
	if !ok {
		return
	}
	a.metrics.ObserveGesture(r)
	switch r.Kind {
	case gesture.KindTap:
		if a.card.ImageIndex() != before {
			a.metrics.IncrementNavigation()
		}
	case gesture.KindReset:
		a.cues.PlayWhoosh()
	}
}

// cancelPointer abandons a drag in progress, e.g. on resize
func (a *App) cancelPointer() {
	if a.dragging && a.card.PointerCancel() {
		a.logger.Debug("drag cancelled")
	}
	a.dragging = false
	a.pressed = render.ControlNone
	a.mouse.Reset()
}

func (a *App) navigate(step func() bool) {
	if step() {
		a.metrics.IncrementNavigation()
	}
}

// activate performs a control action
func (a *App) activate(c render.Control) {
	if a.empty && c != render.ControlFilter {
		return
	}
	switch c {
	case render.ControlLike:
		a.card.Like()
	case render.ControlDislike:
		a.card.Dislike()
	case render.ControlArchive:
		if p, ok := a.queue.Archive(); ok {
			a.setStatus(fmt.Sprintf("Archived %s", p.Name))
		} else {
			a.setStatus(fmt.Sprintf("%s is already archived", p.Name))
		}
	case render.ControlFavorite:
		if p, ok := a.queue.Favorite(); ok {
			a.setStatus(fmt.Sprintf("Added %s to favourites", p.Name))
		} else {
			a.setStatus(fmt.Sprintf("%s is already a favourite", p.Name))
		}
	case render.ControlComment:
		if text, ok := a.queue.Comment(); ok {
			a.setStatus(text)
		}
	case render.ControlFilter:
		a.cycleFilter()
	default:
		return
	}
	if c != render.ControlLike && c != render.ControlDislike {
		a.metrics.IncrementAction(c.String())
	}
}

// cycleFilter steps through all desires, then back to the whole deck
func (a *App) cycleFilter() {
	options := append([]string{""}, a.queue.Desires()...)
	a.filterIdx = (a.filterIdx + 1) % len(options)
	desire := options[a.filterIdx]

	if desire == "" {
		a.queue.ClearFilter()
		a.setStatus("Showing everyone")
	} else if a.queue.ApplyFilter(desire) {
		a.setStatus(fmt.Sprintf("Filter: %s", desire))
	} else {
		a.setStatus(fmt.Sprintf("Nobody wants %s, showing everyone", desire))
	}
	a.mountCurrent()
}

func (a *App) snapshot() {
	p, ok := a.card.Profile()
	if !ok || a.empty {
		return
	}
	w, h := render.PhotoSize(a.layout)
	img := a.photos.Scaled(p.Image(a.card.ImageIndex()), w, h)
	path := filepath.Join(a.snapshotDir, fmt.Sprintf("%s-%d.webp", p.ID, a.card.ImageIndex()))
	if err := photo.SaveSnapshot(path, img); err != nil {
		a.logger.Error("snapshot failed", "path", path, "error", err)
		a.setStatus("Snapshot failed")
		return
	}
	a.logger.Info("snapshot saved", "path", path)
	a.setStatus(fmt.Sprintf("Saved %s", path))
}

// === Match dialog ===

// matchVisible reports the pending match once the exit animation has finished
func (a *App) matchVisible() (profile.Profile, bool) {
	m, ok := a.queue.PendingMatch()
	if !ok || a.card.Phase() != card.PhaseSettled {
		return profile.Profile{}, false
	}
	return m, true
}

func (a *App) sendMessage() {
	p, ok := a.queue.SendMessage()
	if !ok {
		return
	}
	a.setStatus(fmt.Sprintf("Chat with %s opened", p.Name))
	a.mountCurrent()
}

func (a *App) keepSwiping() {
	if a.queue.KeepSwiping() {
		a.mountCurrent()
	}
}

// === card.Listener ===

// LikeCommitted records the like and plays its cue
func (a *App) LikeCommitted(p profile.Profile, d card.ExitDecision) {
	out := a.queue.OnDismiss(p, true)
	if out.Stale {
		return
	}
	a.metrics.IncrementDecision(true)
	a.cues.PlayLike()
	if out.Matched {
		a.metrics.IncrementMatch()
	}
	a.logger.Debug("like recorded", "decision", d.ID, "matched", out.Matched)
}

// DislikeCommitted records the dislike and plays its cue
func (a *App) DislikeCommitted(p profile.Profile, d card.ExitDecision) {
	if a.queue.OnDismiss(p, false).Stale {
		return
	}
	a.metrics.IncrementDecision(false)
	a.cues.PlayNope()
	a.logger.Debug("dislike recorded", "decision", d.ID)
}

// GestureSettled advances to the next profile, or raises the match dialog
func (a *App) GestureSettled(p profile.Profile, wasLiked bool) {
	if a.queue.OnSettled(p) {
		a.mountCurrent()
		return
	}
	if m, ok := a.queue.PendingMatch(); ok && wasLiked {
		a.cues.PlayMatch()
		a.logger.Info("match dialog shown", "id", m.ID)
	}
	a.dirty = true
}

// === State ===

func (a *App) mountCurrent() {
	p, ok := a.queue.Current()
	a.empty = !ok
	a.dragging = false
	if ok {
		a.card.Mount(p)
	}
	a.dirty = true
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.layout = a.renderer.Layout(w, h)
}

// setStatus shows msg until it expires or is replaced
func (a *App) setStatus(msg string) {
	if a.statusTimer != nil {
		a.statusTimer.Stop()
	}
	a.statusSeq++
	seq := a.statusSeq
	a.status = msg
	a.statusTimer = a.clock.AfterFunc(constant.StatusMessageTimeout, func() {
		if seq != a.statusSeq {
			return
		}
		a.status = ""
		a.statusTimer = nil
		a.dirty = true
	})
}

func (a *App) allRefs() []string {
	var refs []string
	for _, p := range a.queue.All() {
		refs = append(refs, p.ImageRefs...)
	}
	return refs
}

// === Queries ===

// Done reports whether the user asked to quit
func (a *App) Done() bool { return a.quit }

// Layout returns the current screen layout
func (a *App) Layout() render.Layout { return a.layout }

// Card returns the card engine
func (a *App) Card() *card.Card { return a.card }

// Queue returns the profile queue
func (a *App) Queue() *queue.Controller { return a.queue }

// Status returns the visible status message
func (a *App) Status() string { return a.status }

// Metrics returns the session counters
func (a *App) Metrics() *metrics.Metrics { return a.metrics }
