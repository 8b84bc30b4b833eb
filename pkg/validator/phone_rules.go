package validator

// PhoneChecker reports whether value is a plausible phone number for the
// default region (an ISO 3166-1 alpha-2 code such as "US").
type PhoneChecker interface {
	IsValidPhoneNumber(value, region string) bool
}

// PhoneCheckerFunc adapts a function to PhoneChecker.
type PhoneCheckerFunc func(value, region string) bool

func (f PhoneCheckerFunc) IsValidPhoneNumber(value, region string) bool {
	return f(value, region)
}

// PhoneNumber validates the value through checker. A nil checker, or one
// that panics, makes every value invalid.
func PhoneNumber(field string, checker PhoneChecker, region string) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil || checker == nil {
				return false
			}
			return safePhoneCheck(checker, *value, region)
		},
		Error: NewError(field, CodeInvalidPhoneNumber, map[string]any{
			"region": region,
		}),
	}
}

func safePhoneCheck(checker PhoneChecker, value, region string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return checker.IsValidPhoneNumber(value, region)
}
