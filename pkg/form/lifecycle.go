package form

import (
	"context"
	"log/slog"

	"github.com/tangfuhao/loginkit/pkg/logger"
	"github.com/tangfuhao/loginkit/pkg/statemachine"
)

const (
	StatePristine   = statemachine.State("pristine")
	StateAttempted  = statemachine.State("attempted")
	StateSubmitting = statemachine.State("submitting")

	eventAttempt = statemachine.Event("attempt")
	eventBegin   = statemachine.Event("begin")
	eventFinish  = statemachine.Event("finish")
)

// newLifecycle builds the submit lifecycle of c. There is no way back to
// pristine and no attempt transition out of submitting. Attempts are
// rejected until Setup has run.
func newLifecycle(c *Coordinator) *statemachine.Machine {
	ready := statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event) bool {
		return c.ready
	})
	trace := statemachine.WithAction(c.traceTransition)

	return statemachine.MustNew(StatePristine,
		statemachine.WithTransition(StatePristine, StateAttempted, eventAttempt, ready, trace),
		statemachine.WithTransition(StateAttempted, StateAttempted, eventAttempt, ready),
		statemachine.WithTransition(StateAttempted, StateSubmitting, eventBegin, trace),
		statemachine.WithTransition(StateSubmitting, StateAttempted, eventFinish, trace),
	)
}

// traceTransition runs under the machine lock and must not call back into it.
func (c *Coordinator) traceTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event) error {
	c.logger.DebugContext(ctx, "lifecycle transition",
		slog.String("from", string(from)),
		logger.State(to),
		slog.String("event", string(event)),
	)
	return nil
}
