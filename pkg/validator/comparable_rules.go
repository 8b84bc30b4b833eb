package validator

// Equality validates that the value equals the current result of other.
// other is called on every check, so the rule tracks later edits of the
// field it reads from. Absent values on either side are invalid.
func Equality(field string, other func() *string, code Code) Rule {
	return Rule{
		Check: func(value *string) bool {
			if value == nil || other == nil {
				return false
			}
			target := other()
			if target == nil {
				return false
			}
			return *value == *target
		},
		Error: NewError(field, code, nil),
	}
}
