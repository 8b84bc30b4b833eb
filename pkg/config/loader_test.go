package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangfuhao/loginkit/pkg/config"
)

type testConfig struct {
	Min    int    `env:"MIN" envDefault:"8" validate:"min=1"`
	Max    int    `env:"MAX" envDefault:"12" validate:"gtefield=Min"`
	Region string `env:"REGION" envDefault:"US" validate:"len=2"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, testConfig{Min: 8, Max: 12, Region: "US"}, cfg)
	})

	t.Run("reads prefixed values", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg,
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_MIN": "6", "APP_REGION": "GB", "MIN": "100"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Min)
		assert.Equal(t, "GB", cfg.Region)
	})

	t.Run("reads the process environment", func(t *testing.T) {
		t.Setenv("CFGTEST_REGION", "DE")
		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_")))
		assert.Equal(t, "DE", cfg.Region)
	})

	t.Run("parse errors", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MIN": "eight"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("validation errors", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MIN": "10", "MAX": "9"}))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics on error", func(t *testing.T) {
		var cfg testConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"REGION": "USA"}))
		})
	})
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ENVFILETEST_REGION=FR\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ENVFILETEST_REGION") })

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("ENVFILETEST_")))
	assert.Equal(t, "FR", cfg.Region)

	assert.ErrorIs(t, config.LoadEnvFiles(filepath.Join(dir, "missing.env")), config.ErrParsingConfig)
}
