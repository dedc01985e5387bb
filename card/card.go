// Package card is the swipeable card interaction engine.
//
// A Card owns the gesture state of the profile it displays: the pointer
// tracker, the drag delta, the photo carousel and the lifecycle sequencer.
// Drag releases past the swipe threshold commit a like or dislike, notify the
// Listener synchronously, run a fixed-length exit animation and then report
// the settled verdict exactly once. Mount discards all of it for the next
// profile; timers scheduled for an earlier profile are stopped and, should
// one still fire, rejected by a generation check.
package card

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"swipedeck/clock"
	"swipedeck/config"
	"swipedeck/fsm"
	"swipedeck/gesture"
	"swipedeck/profile"
)

// DragState is the live gesture of the mounted profile
type DragState struct {
	Origin gesture.Sample
	Delta  gesture.Delta
	Phase  Phase
}

// Card is the engine for one on-screen card, reused across profiles via Mount
// Not safe for concurrent use: drive it from a single event loop
type Card struct {
	cfg      config.Config
	clock    clock.Clock
	listener Listener
	logger   *slog.Logger

	profile    profile.Profile
	mounted    bool
	generation uint64

	tracker    *gesture.Tracker
	classifier gesture.Classifier
	carousel   *Carousel
	machine    *fsm.Machine[*Card]

	drag        DragState
	release     Visual // Visual at the moment the current animation started
	motionStart time.Time
	exitDir     Direction
	decision    *ExitDecision

	exitTimer  clock.Timer
	resetTimer clock.Timer
}

// New creates an unmounted card
func New(cfg config.Config, clk clock.Clock, listener Listener, logger *slog.Logger) *Card {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if listener == nil {
		listener = ListenerFuncs{}
	}

	c := &Card{
		cfg:      cfg,
		clock:    clk,
		listener: listener,
		logger:   logger,
		classifier: gesture.Classifier{
			TapThreshold:   cfg.TapThreshold,
			SwipeThreshold: cfg.SwipeThreshold,
		},
		carousel: NewCarousel(clk, cfg.NavLockDuration),
		machine:  newSequencer(),
	}
	c.tracker = gesture.NewTracker(c.inputFrozen)

	// Graph is static and non-empty
	_ = c.machine.Init(c)
	return c
}

// Mount displays p with fresh gesture, carousel and sequencer state
// Pending timers from the previous profile are cancelled
func (c *Card) Mount(p profile.Profile) {
	c.stopTimers()
	c.generation++
	c.profile = p
	c.mounted = true
	c.decision = nil
	c.tracker.Reset()
	c.carousel.Reset(p.ImageCount())
	c.machine.Force(c, fsm.StateID(PhaseIdle))

	if p.ImageCount() == 0 {
		c.logger.Warn("mounted profile without images", "id", p.ID, "name", p.Name)
	}
	c.logger.Debug("card mounted", "id", p.ID, "generation", c.generation)
}

// PointerStart begins a gesture, ignored while the exit animation runs
// Grabbing the card mid snap-back keeps its current offset, the origin is
// shifted so the card does not jump home under the pointer
func (c *Card) PointerStart(s gesture.Sample) bool {
	if !c.mounted {
		return false
	}
	origin := s
	if c.Phase() == PhaseResetting {
		origin.X -= c.resetVisual(c.clock.Now()).TranslateX
	}
	if !c.tracker.Start(origin) {
		return false
	}
	if !c.machine.Fire(c, evPress) {
		c.tracker.Cancel()
		return false
	}
	c.drag.Origin = origin
	c.drag.Delta = s.Sub(origin)
	return true
}

// PointerMove follows the pointer with no easing
func (c *Card) PointerMove(s gesture.Sample) bool {
	d, ok := c.tracker.Move(s)
	if !ok || c.Phase() != PhaseDragging {
		return false
	}
	c.drag.Delta = d
	return true
}

// PointerEnd classifies the finished gesture and acts on it
// releaseOnControl discards the gesture; bounds is the rendered card region
func (c *Card) PointerEnd(s gesture.Sample, releaseOnControl bool, bounds gesture.Rect) (gesture.Result, bool) {
	g, ok := c.tracker.End(s)
	if !ok || c.Phase() != PhaseDragging {
		return gesture.Result{}, false
	}

	r := c.classifier.Classify(g, releaseOnControl, bounds)
	c.drag.Delta = r.Delta

	switch r.Kind {
	case gesture.KindTap:
		c.drag.Delta = gesture.Delta{}
		c.machine.Fire(c, evTap)
		if c.carousel.Navigate(r.Nav) {
			c.logger.Debug("image navigation", "nav", r.Nav, "index", c.carousel.Index())
		}
	case gesture.KindLike:
		c.commit(DirRight)
	case gesture.KindDislike:
		c.commit(DirLeft)
	case gesture.KindReset:
		c.machine.Fire(c, evRelease)
	case gesture.KindDiscard:
		if r.Delta.DX == 0 {
			c.machine.Fire(c, evTap)
		} else {
			c.machine.Fire(c, evRelease)
		}
	}
	return r, true
}

// PointerCancel abandons an active drag and snaps the card back
func (c *Card) PointerCancel() bool {
	if !c.tracker.Cancel() || c.Phase() != PhaseDragging {
		return false
	}
	return c.machine.Fire(c, evRelease)
}

// HandlePointer dispatches a normalised pointer event
func (c *Card) HandlePointer(p gesture.Pointer, releaseOnControl bool, bounds gesture.Rect) {
	switch p.Phase {
	case gesture.PhaseStart:
		c.PointerStart(p.Sample)
	case gesture.PhaseMove:
		c.PointerMove(p.Sample)
	case gesture.PhaseEnd:
		c.PointerEnd(p.Sample, releaseOnControl, bounds)
	case gesture.PhaseCancel:
		c.PointerCancel()
	}
}

// Like commits a like as if swiped right, ignored while already committing
func (c *Card) Like() bool {
	return c.commit(DirRight)
}

// Dislike commits a dislike as if swiped left, ignored while already committing
func (c *Card) Dislike() bool {
	return c.commit(DirLeft)
}

// NextImage advances the carousel, honouring the debounce lock
func (c *Card) NextImage() bool {
	if !c.mounted || c.inputFrozen() {
		return false
	}
	return c.carousel.Next()
}

// PreviousImage goes back in the carousel, honouring the debounce lock
func (c *Card) PreviousImage() bool {
	if !c.mounted || c.inputFrozen() {
		return false
	}
	return c.carousel.Previous()
}

func (c *Card) commit(dir Direction) bool {
	if !c.mounted || !c.machine.Can(evCommit) {
		c.logger.Debug("commit ignored", "phase", c.Phase(), "dir", dir)
		return false
	}
	now := c.clock.Now()
	c.release = c.Visual(now)
	c.exitDir = dir
	return c.machine.Fire(c, evCommit)
}

// === Sequencer actions ===

func (c *Card) enterIdle() {
	c.drag = DragState{}
	c.release = Identity()
}

func (c *Card) enterResetting() {
	now := c.clock.Now()
	c.release = Compute(c.drag.Delta.DX, c.cfg)
	c.motionStart = now
	c.drag.Delta = gesture.Delta{}

	gen, id := c.generation, c.profile.ID
	c.resetTimer = c.clock.AfterFunc(c.cfg.ResetDuration, func() {
		if !c.current(gen, id) || c.Phase() != PhaseResetting {
			c.logger.Debug("stale reset timer dropped", "id", id)
			return
		}
		c.resetTimer = nil
		c.machine.Fire(c, evResetDone)
	})
}

func (c *Card) exitResetting() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

func (c *Card) enterCommitting() {
	now := c.clock.Now()
	c.tracker.Cancel()
	c.motionStart = now

	d := ExitDecision{
		ID:          uuid.New(),
		ProfileID:   c.profile.ID,
		Direction:   c.exitDir,
		CommittedAt: now,
	}
	c.decision = &d

	gen, id := c.generation, c.profile.ID
	c.exitTimer = c.clock.AfterFunc(c.cfg.ExitDuration, func() {
		c.settle(gen, id)
	})

	c.logger.Info("decision committed", "id", id, "name", c.profile.Name, "dir", d.Direction, "decision", d.ID)

	// Synchronous: downstream reacts before the animation completes
	if d.Liked() {
		c.listener.LikeCommitted(c.profile, d)
	} else {
		c.listener.DislikeCommitted(c.profile, d)
	}
}

// settle completes the exit animation once for the decision it was scheduled for
func (c *Card) settle(gen uint64, id string) {
	if !c.current(gen, id) || c.Phase() != PhaseCommitting || c.decision == nil {
		c.logger.Debug("stale exit timer dropped", "id", id)
		return
	}
	c.exitTimer = nil
	d := *c.decision
	c.decision = nil

	c.machine.Fire(c, evExitDone)
	c.logger.Debug("gesture settled", "id", id, "liked", d.Liked())

	// Listener may remount synchronously, nothing below this line touches card state
	c.listener.GestureSettled(c.profile, d.Liked())
}

func (c *Card) current(gen uint64, id string) bool {
	return c.mounted && gen == c.generation && id == c.profile.ID
}

func (c *Card) stopTimers() {
	if c.exitTimer != nil {
		c.exitTimer.Stop()
		c.exitTimer = nil
	}
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

// inputFrozen is true from commit until the next mount
func (c *Card) inputFrozen() bool {
	p := c.Phase()
	return p == PhaseCommitting || p == PhaseSettled
}

// === Queries ===

// Phase returns the sequencer state
func (c *Card) Phase() Phase {
	return Phase(c.machine.State())
}

// Drag returns a copy of the live drag state
func (c *Card) Drag() DragState {
	d := c.drag
	d.Phase = c.Phase()
	return d
}

// Profile returns the mounted profile
func (c *Card) Profile() (profile.Profile, bool) {
	return c.profile, c.mounted
}

// ImageIndex returns the displayed photo
func (c *Card) ImageIndex() int {
	return c.carousel.Index()
}

// NavigationLocked reports whether the carousel debounce is active
func (c *Card) NavigationLocked() bool {
	return c.carousel.Locked()
}

// Decision returns the pending exit decision, if committing
func (c *Card) Decision() (ExitDecision, bool) {
	if c.decision == nil {
		return ExitDecision{}, false
	}
	return *c.decision, true
}

// Visual returns the card transform at now
func (c *Card) Visual(now time.Time) Visual {
	switch c.Phase() {
	case PhaseDragging:
		return Compute(c.drag.Delta.DX, c.cfg)
	case PhaseResetting:
		return c.resetVisual(now)
	case PhaseCommitting:
		return c.exitVisual(now)
	case PhaseSettled:
		return Exit(c.exitDir, c.cfg)
	default:
		return Identity()
	}
}

// Animating reports whether the renderer must keep producing frames
func (c *Card) Animating() bool {
	p := c.Phase()
	return p == PhaseResetting || p == PhaseCommitting
}
