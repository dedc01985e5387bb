package card

import (
	"swipedeck/fsm"
)

// Phase is the card's place in the gesture lifecycle
type Phase fsm.StateID

const (
	PhaseIdle Phase = iota + 1
	PhaseDragging
	PhaseResetting
	PhaseCommitting
	PhaseSettled
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDragging:
		return "Dragging"
	case PhaseResetting:
		return "Resetting"
	case PhaseCommitting:
		return "Committing"
	case PhaseSettled:
		return "Settled"
	default:
		return "None"
	}
}

const (
	evPress fsm.Event = iota + 1
	evRelease
	evTap
	evCommit
	evResetDone
	evExitDone
)

// newSequencer builds the lifecycle graph
//
//	Idle -> Dragging -> Resetting -> Idle
//	                 -> Committing -> Settled
//
// Commit is also reachable from Idle and Resetting for the like/dislike controls
func newSequencer() *fsm.Machine[*Card] {
	m := fsm.NewMachine[*Card]()

	m.AddState(fsm.StateID(PhaseIdle), PhaseIdle.String())
	m.AddState(fsm.StateID(PhaseDragging), PhaseDragging.String())
	m.AddState(fsm.StateID(PhaseResetting), PhaseResetting.String())
	m.AddState(fsm.StateID(PhaseCommitting), PhaseCommitting.String())
	m.AddState(fsm.StateID(PhaseSettled), PhaseSettled.String())

	on := func(from Phase, ev fsm.Event, to Phase) {
		m.AddTransition(fsm.StateID(from), fsm.Transition[*Card]{Event: ev, Target: fsm.StateID(to)})
	}

	on(PhaseIdle, evPress, PhaseDragging)
	on(PhaseIdle, evCommit, PhaseCommitting)

	on(PhaseDragging, evRelease, PhaseResetting)
	on(PhaseDragging, evTap, PhaseIdle)
	on(PhaseDragging, evCommit, PhaseCommitting)

	on(PhaseResetting, evPress, PhaseDragging)
	on(PhaseResetting, evResetDone, PhaseIdle)
	on(PhaseResetting, evCommit, PhaseCommitting)

	on(PhaseCommitting, evExitDone, PhaseSettled)

	m.OnEnter(fsm.StateID(PhaseIdle), (*Card).enterIdle)
	m.OnEnter(fsm.StateID(PhaseResetting), (*Card).enterResetting)
	m.OnExit(fsm.StateID(PhaseResetting), (*Card).exitResetting)
	m.OnEnter(fsm.StateID(PhaseCommitting), (*Card).enterCommitting)

	return m
}
