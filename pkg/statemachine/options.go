package statemachine

import "fmt"

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards or actions to a single transition.
type TransitionOption func(*Transition)

// New creates a machine in the initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == "" {
		return nil, ErrInvalidState
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[State]map[Event][]Transition),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is New that panics on configuration errors.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition declares a transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		if err := m.addTransition(t); err != nil {
			return fmt.Errorf("failed to add transition %s->%s on %s: %w", from, to, event, err)
		}
		return nil
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(guard Guard) TransitionOption {
	return func(t *Transition) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
