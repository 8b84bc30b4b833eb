package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tangfuhao/loginkit/pkg/config"
	"github.com/tangfuhao/loginkit/pkg/i18n"
	"github.com/tangfuhao/loginkit/pkg/logger"
	"github.com/tangfuhao/loginkit/pkg/phone"
	"github.com/tangfuhao/loginkit/pkg/sanitizer"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog produces the rule sets for one variant.
type Catalog struct {
	cfg    Config
	phone  validator.PhoneChecker
	logger *slog.Logger
}

// New validates cfg and resolves the phone checker.
func New(cfg Config, opts ...Option) (*Catalog, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	c := &Catalog{
		cfg:    cfg,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.phone == nil {
		checker, err := phone.FromStrategy(cfg.PhoneStrategy)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		c.phone = checker
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, opts ...Option) *Catalog {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Variant() Variant { return c.cfg.Variant }

func (c *Catalog) Config() Config { return c.cfg }

// AccountField is the id of the field identifying the account.
func (c *Catalog) AccountField() string {
	if c.cfg.Variant == VariantUserNamePhone {
		return "username"
	}
	return "email"
}

// NameRules requires a full name of at least two components.
func (c *Catalog) NameRules() *validator.RuleSet {
	return validator.NewRuleSet(validator.FullName("")).WithNormalizer(sanitizer.Name)
}

// AccountRules validates the email address or the user name, depending on
// the variant. Surrounding whitespace is ignored.
func (c *Catalog) AccountRules() *validator.RuleSet {
	normalize := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
	if c.cfg.Variant == VariantUserNamePhone {
		return validator.NewRuleSet(
			validator.UserName("", c.cfg.UserNameMin, c.cfg.UserNameMax),
		).WithNormalizer(normalize)
	}
	return validator.NewRuleSet(validator.Email("")).WithNormalizer(normalize)
}

// PasswordRules checks the password length. Passwords are never normalized.
func (c *Catalog) PasswordRules() *validator.RuleSet {
	return validator.NewRuleSet(
		validator.Length("", c.cfg.PasswordMin, c.cfg.PasswordMax, validator.CodePasswordTooShort),
	)
}

// PhoneRules returns nil for the email variant.
func (c *Catalog) PhoneRules() *validator.RuleSet {
	if c.cfg.Variant != VariantUserNamePhone {
		return nil
	}
	return validator.NewRuleSet(
		validator.PhoneNumber("", c.phone, c.cfg.PhoneRegion),
	).WithNormalizer(sanitizer.Phone)
}

// RepeatPasswordRules extends the password rules with an equality check
// against the live password value.
func (c *Catalog) RepeatPasswordRules(password func() *string) *validator.RuleSet {
	rs := c.PasswordRules()
	rs.Add(validator.Equality("", password, validator.CodePasswordNotEqual))
	return rs
}

// Translator loads the embedded messages with Config.Language as the
// default language.
func (c *Catalog) Translator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage(c.cfg.Language),
		i18n.WithLogger(c.logger),
	}
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
		append(base, opts...)...,
	)
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}
	return tr, nil
}

// String implements fmt.Stringer for log output.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%s)", c.cfg.Variant)
}
