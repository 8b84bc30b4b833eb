package cli

import (
	"errors"
	"log/slog"

	"github.com/tangfuhao/loginkit/pkg/catalog"
	"github.com/tangfuhao/loginkit/pkg/config"
	"github.com/tangfuhao/loginkit/pkg/logger"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "LOGINKIT_"

// Config is the full tool configuration.
type Config struct {
	Catalog   catalog.Config
	Env       string `env:"ENV" envDefault:"production" validate:"oneof=development dev staging stage production prod"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

func loadConfig(env map[string]string) (Config, error) {
	opts := []config.Option{config.WithPrefix(EnvPrefix)}
	if env != nil {
		opts = append(opts, config.WithEnvironment(env))
	}

	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, errors.Join(errors.New("loading configuration"), err)
	}
	return cfg, nil
}

func newLogger(cfg Config, o *options) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, "loginkit"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(o.logOut),
	)
}
