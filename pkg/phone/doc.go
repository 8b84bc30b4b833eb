// Package phone provides validator.PhoneChecker implementations.
//
// LibPhoneNumber parses numbers with github.com/nyaruka/phonenumbers, a port
// of Google's libphonenumber metadata, and accepts only numbers that are valid
// for their region. Digits accepts 10 to 15 ASCII digits and ignores the
// region.
//
//	checker, err := phone.FromStrategy("libphonenumber")
//	rule := validator.PhoneNumber("phone", checker, "US")
package phone
