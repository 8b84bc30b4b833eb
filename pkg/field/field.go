package field

import "github.com/tangfuhao/loginkit/pkg/validator"

// Handler receives the outcome of every change-triggered validation.
type Handler func(f *Field, outcome validator.Outcome)

// Field binds one input cell to one rule set and caches the last outcome.
type Field struct {
	id               string
	value            *string
	source           func() *string
	rules            *validator.RuleSet
	validateOnChange bool
	handler          Handler
	outcome          validator.Outcome
}

// New creates a field. Its outcome is valid until the first validation.
func New(id string, opts ...Option) *Field {
	f := &Field{
		id:      id,
		outcome: validator.Valid(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) ID() string {
	return f.id
}

// Bind replaces the rule set. It does not re-validate.
func (f *Field) Bind(rs *validator.RuleSet) {
	f.rules = rs
}

// Rules returns the bound rule set, or nil.
func (f *Field) Rules() *validator.RuleSet {
	return f.rules
}

func (f *Field) SetValidateOnChange(enabled bool) {
	f.validateOnChange = enabled
}

func (f *Field) ValidatesOnChange() bool {
	return f.validateOnChange
}

// SetHandler replaces the change handler; nil unregisters it.
func (f *Field) SetHandler(h Handler) {
	f.handler = h
}

// SetText stores s and, in change mode, validates and notifies the handler.
func (f *Field) SetText(s string) {
	f.value = &s
	f.Changed()
}

// Clear makes the value absent, with the same change semantics as SetText.
func (f *Field) Clear() {
	f.value = nil
	f.Changed()
}

// Changed signals that the text changed. Fields backed by WithSource call it
// after the source is updated; SetText and Clear call it themselves.
func (f *Field) Changed() {
	if !f.validateOnChange {
		return
	}
	outcome := f.Validate()
	if f.handler != nil {
		f.handler(f, outcome)
	}
}

// Text returns a copy of the current value, or nil when absent. It is the
// live accessor handed to rules that read this field.
func (f *Field) Text() *string {
	v := f.value
	if f.source != nil {
		v = f.source()
	}
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

// Validate re-evaluates the rules against the current value, stores and
// returns the outcome. It does not notify the handler.
func (f *Field) Validate() validator.Outcome {
	f.outcome = f.rules.Evaluate(f.Text())
	return f.outcome
}

// Outcome returns the outcome stored by the last validation.
func (f *Field) Outcome() validator.Outcome {
	return f.outcome
}
