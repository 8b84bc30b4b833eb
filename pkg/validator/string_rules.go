package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	alphaRegex    = regexp.MustCompile(`^[a-zA-Z]+$`)
	userNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// Required validates that the value is present and not blank after trimming.
func Required(field string) Rule {
	return Rule{
		Check: func(value *string) bool {
			return value != nil && strings.TrimSpace(*value) != ""
		},
		Error: NewError(field, CodeRequired, nil),
	}
}

// Length validates that the value has between min and max characters,
// both inclusive. Characters are counted as runes; the value is not trimmed.
func Length(field string, min, max int, code Code) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil {
				return false
			}
			n := utf8.RuneCountInString(*value)
			return n >= min && n <= max
		},
		Error: NewError(field, code, map[string]any{
			"min": min,
			"max": max,
		}),
	}
}

// Alphabetic validates that the value is non-empty and made of ASCII letters only.
func Alphabetic(field string, code Code) Rule {
	return Rule{
		Check: func(value *string) bool {
			return value != nil && alphaRegex.MatchString(*value)
		},
		Error: NewError(field, code, nil),
	}
}

// FullName validates that the value splits on whitespace into at least two
// components, each longer than one character.
func FullName(field string) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil {
				return false
			}
			parts := strings.Fields(*value)
			if len(parts) < 2 {
				return false
			}
			for _, part := range parts {
				if utf8.RuneCountInString(part) <= 1 {
					return false
				}
			}
			return true
		},
		Error: NewError(field, CodeInvalidName, nil),
	}
}

// UserName validates an account handle: letters, digits, dot, underscore and
// dash, between min and max characters.
func UserName(field string, min, max int) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil {
				return false
			}
			n := utf8.RuneCountInString(*value)
			if n < min || n > max {
				return false
			}
			return userNameRegex.MatchString(*value)
		},
		Error: NewError(field, CodeInvalidUserName, map[string]any{
			"min": min,
			"max": max,
		}),
	}
}
