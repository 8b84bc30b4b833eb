package catalog

// Variant selects which account identifier the forms collect.
type Variant string

const (
	VariantEmail         Variant = "email"
	VariantUserNamePhone Variant = "username_phone"
)

// Config is loaded from the environment with config.Load, usually under
// the LOGINKIT_ prefix.
type Config struct {
	Variant       Variant `env:"VARIANT" envDefault:"email" validate:"oneof=email username_phone"`
	PasswordMin   int     `env:"PASSWORD_MIN" envDefault:"8" validate:"min=1"`
	PasswordMax   int     `env:"PASSWORD_MAX" envDefault:"12" validate:"gtefield=PasswordMin"`
	UserNameMin   int     `env:"USERNAME_MIN" envDefault:"3" validate:"min=1"`
	UserNameMax   int     `env:"USERNAME_MAX" envDefault:"32" validate:"gtefield=UserNameMin"`
	PhoneRegion   string  `env:"PHONE_REGION" envDefault:"US" validate:"len=2,alpha"`
	PhoneStrategy string  `env:"PHONE_STRATEGY" envDefault:"libphonenumber" validate:"oneof=libphonenumber digits"`
	Language      string  `env:"LANGUAGE" envDefault:"en" validate:"required"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Variant:       VariantEmail,
		PasswordMin:   8,
		PasswordMax:   12,
		UserNameMin:   3,
		UserNameMax:   32,
		PhoneRegion:   "US",
		PhoneStrategy: "libphonenumber",
		Language:      "en",
	}
}
