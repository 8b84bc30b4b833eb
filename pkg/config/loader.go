package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	defaultEnvLoaded sync.Once
	structValidator  = validator.New(validator.WithRequiredStructEnabled())
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	environment map[string]string
	dotenv      bool
}

// WithPrefix requires every env key to carry prefix, e.g. "LOGINKIT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process
// environment. The default .env file is not read.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
		o.dotenv = false
	}
}

// Load parses the environment into v and validates it.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{dotenv: true}
	for _, opt := range opts {
		opt(o)
	}

	if o.dotenv {
		defaultEnvLoaded.Do(func() {
			// The .env file is optional.
			_ = godotenv.Load()
		})
	}

	parseOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		parseOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, parseOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return Validate(v)
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnvFiles reads the given .env files into the process environment
// without overriding variables that are already set.
func LoadEnvFiles(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Validate checks v against its validate struct tags.
func Validate(v any) error {
	if err := structValidator.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
