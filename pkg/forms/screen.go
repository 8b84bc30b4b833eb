package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/tangfuhao/loginkit/pkg/field"
	"github.com/tangfuhao/loginkit/pkg/form"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// Field ids used by the screens.
const (
	FieldName           = "name"
	FieldUserName       = "username"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldPassword       = "password"
	FieldRepeatPassword = "repeat_password"
)

// screen is the part shared by the login and signup forms: fields in display
// order, one coordinator and replaceable display sinks.
type screen struct {
	coordinator *form.Coordinator
	order       []string
	fields      map[string]*field.Field
	displays    map[string]form.DisplaySink
}

func newScreen(opts ...form.Option) *screen {
	return &screen{
		coordinator: form.New(opts...),
		fields:      make(map[string]*field.Field),
		displays:    make(map[string]form.DisplaySink),
	}
}

// add registers a field; setup must be called once all fields are added.
func (s *screen) add(id string, rules *validator.RuleSet) (*field.Field, form.Spec) {
	f := field.New(id)
	s.order = append(s.order, id)
	s.fields[id] = f
	return f, form.Spec{
		Field: f,
		Rules: rules,
		Display: func(message *string) {
			if sink := s.displays[id]; sink != nil {
				sink(message)
			}
		},
	}
}

func (s *screen) Field(id string) (*field.Field, bool) {
	f, ok := s.fields[id]
	return f, ok
}

// SetDisplay attaches the message sink of a field. A nil sink detaches it.
func (s *screen) SetDisplay(id string, sink form.DisplaySink) error {
	if _, ok := s.fields[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	s.displays[id] = sink
	return nil
}

// Coordinator exposes the underlying coordinator.
func (s *screen) Coordinator() *form.Coordinator {
	return s.coordinator
}

// Missing lists the fields that never received input, in display order.
func (s *screen) Missing() []string {
	var ids []string
	for _, id := range s.order {
		if s.fields[id].Text() == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *screen) submit(ctx context.Context, onSuccess func(ctx context.Context)) (validator.Outcome, error) {
	if missing := s.Missing(); len(missing) > 0 {
		return validator.Outcome{}, fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(missing, ", "))
	}
	return s.coordinator.Submit(ctx, onSuccess)
}

func (s *screen) text(id string) string {
	if v := s.fields[id].Text(); v != nil {
		return *v
	}
	return ""
}
