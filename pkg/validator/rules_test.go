package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tangfuhao/loginkit/pkg/validator"
)

func TestLength(t *testing.T) {
	rule := validator.Length("password", 8, 12, validator.CodePasswordTooShort)

	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{"seven characters", validator.String("1234567"), false},
		{"eight characters", validator.String("12345678"), true},
		{"twelve characters", validator.String("123456789012"), true},
		{"thirteen characters", validator.String("1234567890123"), false},
		{"absent value", nil, false},
		{"multibyte counts runes", validator.String("пароль12"), true},
		{"whitespace is not trimmed", validator.String("   12345   "), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Validate(tt.value))
		})
	}

	assert.Equal(t, "Must be at least 8 characters", rule.Error.Message)
}

func TestFullName(t *testing.T) {
	rule := validator.FullName("name")

	assert.True(t, rule.Validate(validator.String("Jane Doe")))
	assert.True(t, rule.Validate(validator.String("Mary Ann Smith")))
	assert.True(t, rule.Validate(validator.String("  Jane   Doe ")))
	assert.False(t, rule.Validate(validator.String("Jane")))
	assert.False(t, rule.Validate(validator.String("J D")))
	assert.False(t, rule.Validate(validator.String("Jane D")))
	assert.False(t, rule.Validate(validator.String("")))
	assert.False(t, rule.Validate(nil))
	assert.Equal(t, validator.CodeInvalidName, rule.Error.Code)
	assert.Equal(t, "Invalid name", rule.Error.Message)
}

func TestAlphabetic(t *testing.T) {
	rule := validator.Alphabetic("first", validator.CodeInvalidName)

	assert.True(t, rule.Validate(validator.String("Jane")))
	assert.False(t, rule.Validate(validator.String("")))
	assert.False(t, rule.Validate(validator.String("Jane2")))
	assert.False(t, rule.Validate(validator.String("Jane Doe")))
	assert.False(t, rule.Validate(nil))
}

func TestRequired(t *testing.T) {
	rule := validator.Required("email")

	assert.True(t, rule.Validate(validator.String(" a ")))
	assert.False(t, rule.Validate(validator.String("   ")))
	assert.False(t, rule.Validate(nil))
}

func TestUserName(t *testing.T) {
	rule := validator.UserName("username", 3, 16)

	assert.True(t, rule.Validate(validator.String("jane.doe_1")))
	assert.False(t, rule.Validate(validator.String("jd")))
	assert.False(t, rule.Validate(validator.String("jane doe")))
	assert.False(t, rule.Validate(validator.String("a-very-long-user-name")))
	assert.False(t, rule.Validate(nil))
	assert.Equal(t, validator.CodeInvalidUserName, rule.Error.Code)
}

func TestPattern(t *testing.T) {
	t.Run("requires full match", func(t *testing.T) {
		rule := validator.Pattern("code", `[0-9]{4}`, validator.CodeInvalidFormat)
		assert.True(t, rule.Validate(validator.String("1234")))
		assert.False(t, rule.Validate(validator.String("12345")))
		assert.False(t, rule.Validate(validator.String("a1234")))
		assert.False(t, rule.Validate(nil))
	})

	t.Run("alternation is anchored as a whole", func(t *testing.T) {
		rule := validator.Pattern("pet", `cat|dog`, validator.CodeInvalidFormat)
		assert.True(t, rule.Validate(validator.String("dog")))
		assert.False(t, rule.Validate(validator.String("cats")))
	})

	t.Run("panics on invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Pattern("x", `(`, validator.CodeInvalidFormat)
		})
	})
}

func TestEmail(t *testing.T) {
	rule := validator.Email("email")

	valid := []string{"user@example.com", "first.last+tag@sub.example.org"}
	for _, v := range valid {
		assert.True(t, rule.Validate(validator.String(v)), v)
	}

	invalid := []string{"", "user", "user@", "user@example", "user@@example.com", "User <user@example.com>", "user@example..com"}
	for _, v := range invalid {
		assert.False(t, rule.Validate(validator.String(v)), v)
	}
	assert.False(t, rule.Validate(nil))
	assert.Equal(t, "Invalid email address", rule.Error.Message)
}

func TestEquality(t *testing.T) {
	password := validator.String("password1")
	rule := validator.Equality("repeat_password", func() *string { return password }, validator.CodePasswordNotEqual)

	t.Run("reads the other value on every check", func(t *testing.T) {
		assert.True(t, rule.Validate(validator.String("password1")))
		assert.False(t, rule.Validate(validator.String("password2")))

		password = validator.String("password2")
		assert.True(t, rule.Validate(validator.String("password2")))
		password = validator.String("password1")
	})

	t.Run("absent values are invalid", func(t *testing.T) {
		assert.False(t, rule.Validate(nil))

		missing := validator.Equality("r", func() *string { return nil }, validator.CodePasswordNotEqual)
		assert.False(t, missing.Validate(validator.String("")))

		noAccessor := validator.Equality("r", nil, validator.CodePasswordNotEqual)
		assert.False(t, noAccessor.Validate(validator.String("x")))
	})
}

func TestPhoneNumber(t *testing.T) {
	digits := validator.PhoneCheckerFunc(func(value, region string) bool {
		return region == "US" && len(value) == 10
	})

	t.Run("delegates to checker with region", func(t *testing.T) {
		rule := validator.PhoneNumber("phone", digits, "US")
		assert.True(t, rule.Validate(validator.String("2025550123")))
		assert.False(t, rule.Validate(validator.String("123")))
		assert.False(t, rule.Validate(nil))
		assert.Equal(t, "Invalid phone number", rule.Error.Message)

		other := validator.PhoneNumber("phone", digits, "GB")
		assert.False(t, other.Validate(validator.String("2025550123")))
	})

	t.Run("nil checker degrades to invalid", func(t *testing.T) {
		rule := validator.PhoneNumber("phone", nil, "US")
		assert.False(t, rule.Validate(validator.String("2025550123")))
	})

	t.Run("panicking checker degrades to invalid", func(t *testing.T) {
		rule := validator.PhoneNumber("phone", validator.PhoneCheckerFunc(func(string, string) bool {
			panic("metadata unavailable")
		}), "US")
		assert.NotPanics(t, func() {
			assert.False(t, rule.Validate(validator.String("2025550123")))
		})
	})
}
