package form

import "log/slog"

// Translator resolves a display string for a validation error.
// *i18n.Translator implements it.
type Translator interface {
	Td(lang, key, def string, values map[string]any) string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTranslator resolves displayed messages through tr in lang. Without a
// translator the default English message is shown.
func WithTranslator(tr Translator, lang string) Option {
	return func(c *Coordinator) {
		c.translator = tr
		c.lang = lang
	}
}

// WithSubmitEnabledSink receives the enabled state of the submit control.
func WithSubmitEnabledSink(sink func(enabled bool)) Option {
	return func(c *Coordinator) {
		c.submitEnabled = sink
	}
}
