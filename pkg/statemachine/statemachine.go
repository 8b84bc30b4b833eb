package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State names a machine state.
type State string

// Event names a trigger for a transition.
type Event string

// Guard decides at fire time whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event) bool

// Action runs before the state changes. Returning an error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event) error

// Transition is a declared state change.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// Machine is an in-memory state machine. Lookups use [from][event] and the
// first transition whose guards all pass wins.
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[State]map[Event][]Transition
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return m.Current() == s
}

func (m *Machine) addTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[Event][]Transition)
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
	return nil
}

// Fire moves the machine along the first matching transition for event.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if event == "" {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.match(ctx, event)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire(event) would find a transition whose guards pass.
func (m *Machine) CanFire(ctx context.Context, event Event) bool {
	if event == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.match(ctx, event)
	return err == nil
}

// match must be called with the lock held.
func (m *Machine) match(ctx context.Context, event Event) (*Transition, error) {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{State: m.current, Event: event}
	}

	for i, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if !guard(ctx, m.current, event) {
				passed = false
				break
			}
		}
		if passed {
			return &candidates[i], nil
		}
	}

	return nil, &ErrTransitionRejected{State: m.current, Event: event}
}
