package validator

import (
	"fmt"
	"regexp"
	"slices"
)

// Code tags a ValidationError with its catalog entry.
type Code string

const (
	CodeInvalidName        Code = "invalid_name"
	CodeInvalidUserName    Code = "invalid_user_name"
	CodeInvalidEmail       Code = "invalid_email"
	CodePasswordTooShort   Code = "password_too_short"
	CodePasswordNotEqual   Code = "password_not_equal"
	CodeInvalidPhoneNumber Code = "invalid_phone_number"
	CodeRequired           Code = "required"
	CodeInvalidLength      Code = "invalid_length"
	CodeInvalidFormat      Code = "invalid_format"
	CodeInvalidValue       Code = "invalid_value"
)

// TranslationKeyPrefix prefixes every catalog code to form its i18n key.
const TranslationKeyPrefix = "validation."

// defaultMessages holds exactly one display template per code. Placeholders
// use the %{name} form shared with package i18n.
var defaultMessages = map[Code]string{
	CodeInvalidName:        "Invalid name",
	CodeInvalidUserName:    "Invalid user name",
	CodeInvalidEmail:       "Invalid email address",
	CodePasswordTooShort:   "Must be at least %{min} characters",
	CodePasswordNotEqual:   "Password does not match",
	CodeInvalidPhoneNumber: "Invalid phone number",
	CodeRequired:           "field is required",
	CodeInvalidLength:      "must be between %{min} and %{max} characters",
	CodeInvalidFormat:      "must match %{description} pattern",
	CodeInvalidValue:       "invalid value",
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Codes lists every catalog code in a stable order.
func Codes() []Code {
	codes := make([]Code, 0, len(defaultMessages))
	for code := range defaultMessages {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// MessageTemplate returns the raw display template for code.
// Unknown codes map to the code itself.
func MessageTemplate(code Code) string {
	if tmpl, ok := defaultMessages[code]; ok {
		return tmpl
	}
	return string(code)
}

// TranslationKey returns the i18n lookup key for code.
func (c Code) TranslationKey() string {
	return TranslationKeyPrefix + string(c)
}

// NewError builds a catalog error for field with the template placeholders
// substituted from values.
func NewError(field string, code Code, values map[string]any) ValidationError {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return ValidationError{
		Field:             field,
		Code:              code,
		Message:           FormatMessage(MessageTemplate(code), tv),
		TranslationKey:    code.TranslationKey(),
		TranslationValues: tv,
	}
}

// FormatMessage replaces %{name} placeholders in tmpl with values. Unknown
// placeholders are left untouched.
func FormatMessage(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
