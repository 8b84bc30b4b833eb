package field

import "github.com/tangfuhao/loginkit/pkg/validator"

// Option configures a Field at construction.
type Option func(*Field)

// WithRules binds the rule set.
func WithRules(rs *validator.RuleSet) Option {
	return func(f *Field) {
		f.rules = rs
	}
}

// WithValidateOnChange enables change-triggered validation.
func WithValidateOnChange(enabled bool) Option {
	return func(f *Field) {
		f.validateOnChange = enabled
	}
}

// WithHandler registers the change handler. Nil handlers are ignored.
func WithHandler(h Handler) Option {
	return func(f *Field) {
		if h != nil {
			f.handler = h
		}
	}
}

// WithValue sets the initial text without triggering validation.
func WithValue(s string) Option {
	return func(f *Field) {
		f.value = &s
	}
}

// WithSource makes the field read its text from an external live accessor
// instead of its own cell. Call Changed after the source changes. Nil
// sources are ignored.
func WithSource(src func() *string) Option {
	return func(f *Field) {
		if src != nil {
			f.source = src
		}
	}
}
