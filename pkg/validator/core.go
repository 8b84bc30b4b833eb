package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// WithField returns a copy of the error bound to the given field id.
func (e ValidationError) WithField(field string) ValidationError {
	e.Field = field
	if e.TranslationValues != nil {
		values := make(map[string]any, len(e.TranslationValues))
		for k, v := range e.TranslationValues {
			values[k] = v
		}
		values["field"] = field
		e.TranslationValues = values
	}
	return e
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any error carries the given catalog code.
func (ve ValidationErrors) HasCode(code Code) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// First returns the first error in evaluation order.
func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Codes returns the catalog codes in evaluation order, duplicates included.
func (ve ValidationErrors) Codes() []Code {
	codes := make([]Code, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a predicate over the current input with the error it reports.
// A nil value means the input is absent.
type Rule struct {
	Check func(value *string) bool
	Error ValidationError
}

// Validate runs the predicate. Rules without a predicate reject every input.
func (r Rule) Validate(value *string) bool {
	if r.Check == nil {
		return false
	}
	return r.Check(value)
}

// Apply evaluates the rules against value and returns the failures as an error.
func Apply(value *string, rules ...Rule) error {
	return NewRuleSet(rules...).Evaluate(value).Err()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// String returns a pointer to s, for passing present values to rules.
func String(s string) *string {
	return &s
}
