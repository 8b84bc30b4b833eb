// Package i18n resolves display strings for validation errors from a translation
// catalog keyed by language.
//
// Translations are loaded once through a TranslationAdapter. MapAdapter serves an
// in-memory map, FileAdapter reads a single YAML or JSON file from disk and
// FSAdapter reads every supported file of a directory inside an fs.FS, which is
// how embedded locale files are shipped.
//
// Keys use dot notation to reach nested maps ("validation.invalid_email") and
// templates use named placeholders in the form %{name}.
//
// Basic usage:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	lang := tr.Match("es-MX", "en")
//	msg := tr.Td(lang, "validation.password_too_short", "Must be at least 8 characters",
//		map[string]any{"min": 8})
//
// Errors returned by adapters and parsers wrap the sentinel values declared in
// errors.go, so callers can branch with errors.Is.
package i18n
