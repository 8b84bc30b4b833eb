// Package sanitizer normalises raw form input before it reaches validation
// rules: trimming, whitespace collapsing, control-character removal and the
// email and phone canonical forms used by the login and signup screens.
//
// Transforms are plain func(string) string values, combined with Compose:
//
//	name := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.CollapseWhitespace)
//	rules := catalog.NameRules().WithNormalizer(name)
//
// The package is stateless and safe for concurrent use.
package sanitizer
