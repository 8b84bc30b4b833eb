package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tangfuhao/loginkit/pkg/field"
	"github.com/tangfuhao/loginkit/pkg/logger"
	"github.com/tangfuhao/loginkit/pkg/statemachine"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// DisplaySink shows message next to a field, or clears it when message is nil.
type DisplaySink func(message *string)

// Spec describes one field handed to Setup. Rules are bound to the field id.
// A nil Rules makes the field always valid and a nil Display discards messages.
type Spec struct {
	Field   *field.Field
	Rules   *validator.RuleSet
	Display DisplaySink
}

type entry struct {
	field   *field.Field
	display DisplaySink
}

// Coordinator owns the fields of one screen and gates their submission.
type Coordinator struct {
	logger        *slog.Logger
	translator    Translator
	lang          string
	submitEnabled func(bool)

	lifecycle *statemachine.Machine
	entries   []entry
	index     map[string]int
	ready     bool
}

func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		logger: logger.Nop(),
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("form"))
	c.lifecycle = newLifecycle(c)
	return c
}

// Setup binds every spec and enables change-triggered validation. Specs are
// checked before any field is touched, so a failed Setup leaves fields as
// they were.
func (c *Coordinator) Setup(specs ...Spec) error {
	if c.ready {
		return ErrAlreadySetup
	}

	seen := make(map[string]struct{}, len(specs))
	for i, s := range specs {
		if s.Field == nil {
			return fmt.Errorf("%w: spec %d", ErrNilField, i)
		}
		if _, dup := seen[s.Field.ID()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateField, s.Field.ID())
		}
		seen[s.Field.ID()] = struct{}{}
	}

	for _, s := range specs {
		e := entry{field: s.Field, display: s.Display}
		c.index[s.Field.ID()] = len(c.entries)
		c.entries = append(c.entries, e)

		s.Field.Bind(s.Rules.Bind(s.Field.ID()))
		s.Field.SetValidateOnChange(true)
		s.Field.SetHandler(func(_ *field.Field, outcome validator.Outcome) {
			if !c.Attempted() {
				return
			}
			c.paint(e, outcome)
		})
	}

	c.ready = true
	c.pushSubmitEnabled(true)
	c.logger.Debug("form set up", slog.Int("fields", len(c.entries)))
	return nil
}

// Field returns the field registered under id.
func (c *Coordinator) Field(id string) (*field.Field, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.entries[i].field, true
}

// Fields returns the registered fields in setup order.
func (c *Coordinator) Fields() []*field.Field {
	out := make([]*field.Field, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.field
	}
	return out
}

// ValidateField re-evaluates one field. Its message is pushed to the display
// sink only once a submit has been attempted.
func (c *Coordinator) ValidateField(id string) (validator.Outcome, error) {
	i, ok := c.index[id]
	if !ok {
		return validator.Outcome{}, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}

	e := c.entries[i]
	outcome := e.field.Validate()
	if c.Attempted() {
		c.paint(e, outcome)
	}
	return outcome, nil
}

// Submit marks the form as attempted and evaluates every field against its
// current value. Each field's first error, or nil, is pushed to its display
// sink. When all fields are valid onSuccess runs once with the submit control
// disabled. The aggregate outcome lists every error in field order.
//
// If onSuccess panics the coordinator stays in the submitting state until
// FinishSubmission is called.
func (c *Coordinator) Submit(ctx context.Context, onSuccess func(ctx context.Context)) (validator.Outcome, error) {
	if err := c.lifecycle.Fire(ctx, eventAttempt); err != nil {
		switch {
		case statemachine.IsTransitionRejectedError(err):
			return validator.Outcome{}, ErrNotSetup
		case statemachine.IsNoTransitionAvailableError(err):
			return validator.Outcome{}, errors.Join(ErrSubmissionInProgress, err)
		}
		return validator.Outcome{}, err
	}

	ctx = logger.WithSubmissionID(ctx, uuid.NewString())

	outcomes := make([]validator.Outcome, 0, len(c.entries))
	for _, e := range c.entries {
		outcome := e.field.Validate()
		c.paint(e, outcome)
		outcomes = append(outcomes, outcome)
	}

	result := validator.Merge(outcomes...)
	if !result.IsValid() {
		c.logger.DebugContext(ctx, "submission rejected",
			logger.Fields(result.Errors.Fields()...),
			logger.Codes(result.Errors.Codes()...),
		)
		return result, nil
	}

	if err := c.lifecycle.Fire(ctx, eventBegin); err != nil {
		return result, err
	}
	c.pushSubmitEnabled(false)
	c.logger.DebugContext(ctx, "submission accepted", logger.State(c.lifecycle.Current()))

	if onSuccess != nil {
		onSuccess(ctx)
	}

	if !c.InProgress() {
		return result, nil
	}
	return result, c.FinishSubmission(ctx)
}

// FinishSubmission leaves the submitting state and re-enables the submit
// control. Submit calls it after the continuation returns unless the
// continuation already did.
func (c *Coordinator) FinishSubmission(ctx context.Context) error {
	if !c.lifecycle.CanFire(ctx, eventFinish) {
		return ErrNotSubmitting
	}
	if err := c.lifecycle.Fire(ctx, eventFinish); err != nil {
		return err
	}
	c.pushSubmitEnabled(true)
	return nil
}

// Attempted reports whether Submit has been called at least once.
func (c *Coordinator) Attempted() bool {
	return !c.lifecycle.Is(StatePristine)
}

// InProgress reports whether a success continuation is running.
func (c *Coordinator) InProgress() bool {
	return c.lifecycle.Is(StateSubmitting)
}

// State returns the current lifecycle state.
func (c *Coordinator) State() statemachine.State {
	return c.lifecycle.Current()
}

// Message resolves the display string for err.
func (c *Coordinator) Message(err validator.ValidationError) string {
	if c.translator == nil || err.TranslationKey == "" {
		return err.Message
	}
	return c.translator.Td(c.lang, err.TranslationKey, err.Message, err.TranslationValues)
}

func (c *Coordinator) paint(e entry, outcome validator.Outcome) {
	if e.display == nil {
		return
	}
	first, ok := outcome.First()
	if !ok {
		e.display(nil)
		return
	}
	msg := c.Message(first)
	e.display(&msg)
}

func (c *Coordinator) pushSubmitEnabled(enabled bool) {
	if c.submitEnabled != nil {
		c.submitEnabled(enabled)
	}
}
