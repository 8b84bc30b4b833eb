// Package statemachine provides a small finite state machine used to track
// form lifecycles (pristine, attempted, submitting).
//
// Transitions are registered up front with WithTransition and looked up in a
// nested map keyed by source state and event. Optional Guards can reject a
// transition at fire time, and Actions run before the state changes; an
// action error aborts the transition.
//
//	sm := statemachine.MustNew("pristine",
//	    statemachine.WithTransition("pristine", "attempted", "attempt"),
//	    statemachine.WithTransition("attempted", "submitting", "begin"),
//	)
//	err := sm.Fire(ctx, "attempt")
//
// There is no Reset: a machine only moves along its declared
// transitions. Callers that need a fresh lifecycle create a new machine.
//
// Machine is safe for concurrent use.
package statemachine
