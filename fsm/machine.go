package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node, the first added state becomes the initial state
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	if m.initial == StateNone {
		m.initial = id
	}
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(source StateID, t Transition[T]) {
	if node, ok := m.nodes[source]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// OnEnter appends an entry action to a state
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an exit action to a state
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	if m.initial == StateNone {
		return fmt.Errorf("FSM has no states to initialize")
	}
	m.active = m.initial
	m.enter(ctx, m.nodes[m.initial])
	return nil
}

// Fire routes an event through the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) Fire(ctx T, ev Event) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.Event != ev {
			continue
		}
		if t.Guard == nil || t.Guard(ctx) {
			m.transition(ctx, t.Target)
			return true
		}
	}
	return false
}

// Force moves to target regardless of declared transitions, running exit and entry actions
// Used for external resets
func (m *Machine[T]) Force(ctx T, target StateID) {
	m.transition(ctx, target)
}

// State returns the active state ID
func (m *Machine[T]) State() StateID {
	return m.active
}

// StateName returns the active state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.active]; ok {
		return node.Name
	}
	return ""
}

// Can reports whether ev has a declared transition from the active state, guards are not evaluated
func (m *Machine[T]) Can(ev Event) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.Event == ev {
			return true
		}
	}
	return false
}

func (m *Machine[T]) transition(ctx T, target StateID) {
	next, ok := m.nodes[target]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", target))
	}

	if current, ok := m.nodes[m.active]; ok {
		for _, fn := range current.OnExit {
			fn(ctx)
		}
	}

	// Active state is updated before entry actions so they can fire follow-up events
	m.active = target
	m.enter(ctx, next)
}

func (m *Machine[T]) enter(ctx T, node *Node[T]) {
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
}
