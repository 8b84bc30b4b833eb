package catalog

import (
	"log/slog"

	"github.com/tangfuhao/loginkit/pkg/validator"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger handed to the message translator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPhoneChecker overrides the checker resolved from Config.PhoneStrategy.
func WithPhoneChecker(checker validator.PhoneChecker) Option {
	return func(c *Catalog) {
		if checker != nil {
			c.phone = checker
		}
	}
}
