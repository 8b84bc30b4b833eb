// Package forms wires the catalog rule sets into the login and signup screens.
//
// Each screen owns its fields and a form.Coordinator. The presentation layer
// writes user input through Field(id).SetText, attaches message sinks with
// SetDisplay and calls Submit when the user taps the submit control. The
// success callback receives a request with normalized values:
//
//	signup, err := forms.NewSignup(cat, form.WithTranslator(tr, "es"))
//	if err != nil {
//		return err
//	}
//	signup.SetDisplay(forms.FieldPassword, passwordError.Show)
//
//	outcome, err := signup.Submit(ctx, func(req forms.SignupRequest) {
//		hash, _ := req.PasswordHash(0)
//		// hand req to the account service
//	})
//
// Submit refuses to run while any field has never received input and
// returns ErrMissingInput.
package forms
