package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// EmailPatternStandard is the address grammar used by Email.
const EmailPatternStandard = `[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var emailRegex = regexp.MustCompile("^(?:" + EmailPatternStandard + ")$")

// Pattern validates that the whole value matches pattern. The pattern is
// anchored and compiled once; an invalid pattern panics at construction.
func Pattern(field, pattern string, code Code) Rule {
	regex := regexp.MustCompile("^(?:" + pattern + ")$")
	return Rule{
		Check: func(value *string) bool {
			return value != nil && regex.MatchString(*value)
		},
		Error: NewError(field, code, map[string]any{
			"pattern":     pattern,
			"description": pattern,
		}),
	}
}

// Email validates that the value is a single bare email address.
func Email(field string) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil || !emailRegex.MatchString(*value) {
				return false
			}

			// Reject forms the pattern lets through but a mail parser would
			// rewrite, such as consecutive dots in the domain.
			addr, err := mail.ParseAddress(*value)
			if err != nil || addr.Address != *value {
				return false
			}

			domain := (*value)[strings.LastIndex(*value, "@")+1:]
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: NewError(field, CodeInvalidEmail, nil),
	}
}
