package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangfuhao/loginkit/pkg/phone"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

func TestLibPhoneNumber(t *testing.T) {
	t.Parallel()
	checker := phone.LibPhoneNumber{}

	tests := []struct {
		name   string
		value  string
		region string
		want   bool
	}{
		{"national US number", "(202) 456-1111", "US", true},
		{"international GB number", "+44 20 7183 8750", "US", true},
		{"lowercase region", "2024561111", "us", true},
		{"too short", "12345", "US", false},
		{"letters", "call me", "US", false},
		{"empty", "", "US", false},
		{"unknown region without prefix", "2024561111", "ZZ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checker.IsValidPhoneNumber(tt.value, tt.region))
		})
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()
	checker := phone.Digits{}

	assert.True(t, checker.IsValidPhoneNumber("2024561111", ""))
	assert.True(t, checker.IsValidPhoneNumber("123456789012345", "US"))
	assert.False(t, checker.IsValidPhoneNumber("123456789", "US"))
	assert.False(t, checker.IsValidPhoneNumber("1234567890123456", "US"))
	assert.False(t, checker.IsValidPhoneNumber("+12024561111", "US"))
	assert.False(t, checker.IsValidPhoneNumber("202-456-1111", "US"))
}

func TestFromStrategy(t *testing.T) {
	t.Parallel()

	c, err := phone.FromStrategy("libphonenumber")
	require.NoError(t, err)
	assert.IsType(t, phone.LibPhoneNumber{}, c)

	c, err = phone.FromStrategy(" Digits ")
	require.NoError(t, err)
	assert.IsType(t, phone.Digits{}, c)

	_, err = phone.FromStrategy("carrier-lookup")
	assert.ErrorIs(t, err, phone.ErrUnknownStrategy)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+12024561111", phone.Format("(202) 456-1111", "US"))
	assert.Equal(t, "nope", phone.Format("nope", "US"))
}

func TestCheckerInRule(t *testing.T) {
	t.Parallel()

	rule := validator.PhoneNumber("phone", phone.LibPhoneNumber{}, "US")
	assert.True(t, rule.Validate(validator.String("202-456-1111")))
	assert.False(t, rule.Validate(validator.String("000")))
}
