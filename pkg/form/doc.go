// Package form coordinates the validation of a group of fields on one screen.
//
// A Coordinator binds a rule set to every field during Setup and enables
// change-triggered validation. Until the first Submit the coordinator is
// pristine and edits are validated silently. Once a submit has been attempted
// every change pushes the field's first error message, or nil, to the field's
// display sink.
//
// Submit evaluates all fields against their current values. When every field
// is valid the success continuation runs exactly once while the coordinator
// is in the submitting state and the submit control is disabled:
//
//	c := form.New(form.WithSubmitEnabledSink(button.SetEnabled))
//	if err := c.Setup(
//		form.Spec{Field: email, Rules: cat.AccountRules(), Display: emailLabel.Show},
//		form.Spec{Field: password, Rules: cat.PasswordRules(), Display: passwordLabel.Show},
//	); err != nil {
//		return err
//	}
//
//	outcome, err := c.Submit(ctx, func(ctx context.Context) {
//		// all fields are valid
//	})
//
// The coordinator is meant to be driven from a single event loop and is not
// safe for concurrent use.
package form
