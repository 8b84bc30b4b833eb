// Package field implements the validatable input field: one mutable text cell
// bound to one validator.RuleSet.
//
// A Field evaluates its rules on demand through Validate, or on every change
// when change mode is enabled, and reports each change-triggered outcome to a
// single registered Handler. It never decides how an outcome is presented;
// painting error messages is left to the caller (see package form).
//
//	f := field.New("password",
//	    field.WithRules(catalog.PasswordRules()),
//	    field.WithValidateOnChange(true),
//	    field.WithHandler(func(f *field.Field, o validator.Outcome) { ... }),
//	)
//	f.SetText("hunter22")
//
// Text is the field's live accessor: rules built from it (for example an
// equality rule on a repeat-password field) always read the current value.
//
// Fields are not safe for concurrent use; they are driven from a single UI
// event thread.
package field
