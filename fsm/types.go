package fsm

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialised machine
const StateNone StateID = 0

// Event triggers transitions
type Event int

// Machine is a flat finite state machine
// T is the context type passed to actions and guards
type Machine[T any] struct {
	nodes   map[StateID]*Node[T]
	initial StateID
	active  StateID
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event  Event
	Target StateID
	Guard  GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
