package validator

// Outcome is the result of evaluating a RuleSet: Valid, or Invalid with a
// non-empty ordered list of errors.
type Outcome struct {
	Errors ValidationErrors
}

// Valid returns the valid outcome.
func Valid() Outcome {
	return Outcome{}
}

// Invalid returns an invalid outcome. It panics when called without errors,
// since an invalid outcome always names at least one failure.
func Invalid(errs ...ValidationError) Outcome {
	if len(errs) == 0 {
		panic("validator: invalid outcome requires at least one error")
	}
	return Outcome{Errors: append(ValidationErrors(nil), errs...)}
}

func (o Outcome) IsValid() bool {
	return len(o.Errors) == 0
}

// First returns the error a form would display for this outcome.
func (o Outcome) First() (ValidationError, bool) {
	return o.Errors.First()
}

// Err returns nil for a valid outcome and the ValidationErrors otherwise.
func (o Outcome) Err() error {
	if o.IsValid() {
		return nil
	}
	return o.Errors
}

// Merge concatenates outcomes in order. The result is valid only if every
// input is valid.
func Merge(outcomes ...Outcome) Outcome {
	var errs ValidationErrors
	for _, o := range outcomes {
		errs = append(errs, o.Errors...)
	}
	if len(errs) == 0 {
		return Valid()
	}
	return Outcome{Errors: errs}
}
