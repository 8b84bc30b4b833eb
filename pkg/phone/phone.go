package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/tangfuhao/loginkit/pkg/sanitizer"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// Strategy names accepted by FromStrategy.
const (
	StrategyLibPhoneNumber = "libphonenumber"
	StrategyDigits         = "digits"
)

var digitsRegex = regexp.MustCompile(`^[0-9]{10,15}$`)

// LibPhoneNumber validates numbers against libphonenumber metadata. Numbers
// without an international prefix are parsed in the default region.
type LibPhoneNumber struct{}

func (LibPhoneNumber) IsValidPhoneNumber(value, region string) bool {
	value = sanitizer.NormalizePhone(value)
	if value == "" {
		return false
	}

	num, err := phonenumbers.Parse(value, strings.ToUpper(region))
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Digits accepts 10 to 15 ASCII digits with no separators. The region is ignored.
type Digits struct{}

func (Digits) IsValidPhoneNumber(value, _ string) bool {
	return digitsRegex.MatchString(value)
}

// FromStrategy returns the checker registered under name.
func FromStrategy(name string) (validator.PhoneChecker, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyLibPhoneNumber, "":
		return LibPhoneNumber{}, nil
	case StrategyDigits:
		return Digits{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Format renders value in E.164 form, or returns it unchanged when it does
// not parse for region.
func Format(value, region string) string {
	num, err := phonenumbers.Parse(sanitizer.NormalizePhone(value), strings.ToUpper(region))
	if err != nil {
		return value
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
