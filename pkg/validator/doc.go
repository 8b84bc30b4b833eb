// Package validator provides the declarative rule engine used by login and
// signup forms: small Rule values pairing a predicate over an optional string
// with a catalog ValidationError, ordered RuleSets that evaluate every rule,
// and the Outcome type that reports the aggregated result.
//
// # Architecture
//
// A Rule is a plain struct holding a Check function and the error it reports
// when Check returns false. Rules receive the current input as *string; a nil
// pointer means the input is absent and every built-in rule treats it as
// invalid. Rules never return Go errors and never panic on missing input.
//
// Core building blocks:
//   - Rule              – Check func plus the ValidationError it produces
//   - RuleSet           – ordered, append-only collection of rules for one field
//   - Outcome           – Valid, or Invalid with a non-empty ordered error list
//   - ValidationError   – catalog Code, default message and i18n key
//   - ValidationErrors  – slice type that implements the error interface
//
// Equality rules read the value they compare against through a live accessor,
// so the comparison always reflects the other field's current text rather than
// a snapshot taken when the rule was built.
//
// # Usage
//
//	passwords := validator.NewRuleSet(
//	    validator.Length("password", 8, 12, validator.CodePasswordTooShort),
//	)
//	repeat := passwords.Clone()
//	repeat.Add(validator.Equality("repeat_password", passwordField.Text, validator.CodePasswordNotEqual))
//
//	outcome := repeat.Evaluate(validator.String("secret12"))
//	if first, ok := outcome.First(); ok {
//	    fmt.Println(first.Message)
//	}
//
// # Error Handling
//
// Outcome.Err returns nil for a valid outcome and ValidationErrors otherwise,
// so callers that prefer the error interface can use errors.As or the
// ExtractValidationErrors helper.
//
// # Phone numbers
//
// PhoneNumber delegates to a PhoneChecker supplied by the caller (see package
// phone for implementations). A nil or failing checker makes the rule report
// the value as invalid.
package validator
