// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is read once per process (a
// missing file is not an error), then the environment is parsed into the
// struct using `env` and `envDefault` tags. After parsing, the struct is
// checked against its `validate` tags with
// github.com/go-playground/validator/v10.
//
//	type Config struct {
//	    PasswordMin int `env:"PASSWORD_MIN" envDefault:"8" validate:"min=1"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("LOGINKIT_")); err != nil {
//	    return err
//	}
//
// Every Load call parses afresh. Tests pass an explicit environment with
// WithEnvironment.
//
// # Error Handling
//
// Failures are reported as ErrParsingConfig or ErrInvalidConfig joined with the
// underlying library error, so both errors.Is checks and the detailed message
// are available.
package config
