package sanitizer

import "strings"

// NormalizeEmail trims and lowercases an address and consolidates repeated
// dots in the local part. Values without exactly one "@" are only trimmed and
// lowercased, so the email rule still sees them as invalid.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// NormalizePhone strips the separators people type into phone fields (spaces,
// dashes, dots, parentheses) and keeps a leading "+". Letters and other
// symbols are left in place for the phone rule to reject.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	return phoneSeparators.Replace(phone)
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	return string([]rune(local)[0]) + strings.Repeat("*", len([]rune(local))-1) + "@" + domain
}
