package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangfuhao/loginkit/pkg/validator"
)

func TestRuleSet_Evaluate(t *testing.T) {
	t.Run("empty set is valid", func(t *testing.T) {
		assert.True(t, validator.NewRuleSet().Evaluate(nil).IsValid())

		var rs *validator.RuleSet
		assert.True(t, rs.Evaluate(validator.String("x")).IsValid())
		assert.Equal(t, 0, rs.Len())
	})

	t.Run("does not short-circuit and keeps order", func(t *testing.T) {
		rs := validator.NewRuleSet(
			validator.Length("password", 8, 12, validator.CodePasswordTooShort),
			validator.Alphabetic("password", validator.CodeInvalidFormat),
			validator.Required("password"),
		)

		outcome := rs.Evaluate(validator.String("12"))
		require.False(t, outcome.IsValid())
		assert.Equal(t, []validator.Code{validator.CodePasswordTooShort, validator.CodeInvalidFormat}, outcome.Errors.Codes())

		first, ok := outcome.First()
		require.True(t, ok)
		assert.Equal(t, validator.CodePasswordTooShort, first.Code)
	})

	t.Run("absent value fails every rule", func(t *testing.T) {
		rs := validator.NewRuleSet(validator.FullName("name"), validator.Required("name"))
		assert.Len(t, rs.Evaluate(nil).Errors, 2)
	})

	t.Run("evaluation is repeatable", func(t *testing.T) {
		rs := validator.NewRuleSet(validator.FullName("name"))
		v := validator.String("Jane")
		assert.Equal(t, rs.Evaluate(v), rs.Evaluate(v))
	})
}

func TestRuleSet_Composition(t *testing.T) {
	base := validator.NewRuleSet(validator.Length("", 8, 12, validator.CodePasswordTooShort))

	t.Run("clone is independent", func(t *testing.T) {
		repeat := base.Clone()
		repeat.Add(validator.Equality("", func() *string { return validator.String("password1") }, validator.CodePasswordNotEqual))

		assert.Equal(t, 1, base.Len())
		assert.Equal(t, 2, repeat.Len())
		assert.True(t, base.Evaluate(validator.String("password2")).IsValid())
		assert.False(t, repeat.Evaluate(validator.String("password2")).IsValid())
	})

	t.Run("bind rewrites field ids on a copy", func(t *testing.T) {
		bound := base.Bind("password")
		outcome := bound.Evaluate(validator.String("short"))
		require.False(t, outcome.IsValid())
		assert.Equal(t, "password", outcome.Errors[0].Field)
		assert.Equal(t, "", base.Rules()[0].Error.Field)
	})

	t.Run("normalizer applies to present values only", func(t *testing.T) {
		trimmed := base.WithNormalizer(strings.TrimSpace)
		assert.False(t, trimmed.Evaluate(validator.String("  1234567  ")).IsValid())
		assert.True(t, base.Evaluate(validator.String("  1234567  ")).IsValid())
		assert.False(t, trimmed.Evaluate(nil).IsValid())
	})
}

func TestOutcome(t *testing.T) {
	t.Run("valid outcome has no error", func(t *testing.T) {
		o := validator.Valid()
		assert.True(t, o.IsValid())
		assert.NoError(t, o.Err())
		_, ok := o.First()
		assert.False(t, ok)
	})

	t.Run("invalid outcome requires errors", func(t *testing.T) {
		assert.Panics(t, func() { validator.Invalid() })

		o := validator.Invalid(validator.NewError("name", validator.CodeInvalidName, nil))
		assert.False(t, o.IsValid())
		assert.True(t, validator.IsValidationError(o.Err()))
	})

	t.Run("merge concatenates in order", func(t *testing.T) {
		a := validator.Invalid(validator.NewError("a", validator.CodeInvalidName, nil))
		b := validator.Invalid(validator.NewError("b", validator.CodeInvalidEmail, nil))

		merged := validator.Merge(a, validator.Valid(), b)
		assert.Equal(t, []string{"a", "b"}, merged.Errors.Fields())
		assert.True(t, validator.Merge(validator.Valid(), validator.Valid()).IsValid())
	})
}
