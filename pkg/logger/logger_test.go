package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangfuhao/loginkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("level filtering", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Info("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("form")))
		log.Info("msg")
		assert.Equal(t, "form", decode(t, buf)["component"])
	})

	t.Run("extracts submission id from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		ctx := logger.WithSubmissionID(context.Background(), "sub-1")
		log.InfoContext(ctx, "submit")
		assert.Equal(t, "sub-1", decode(t, buf)["submission_id"])
	})

	t.Run("runs custom extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(key{}).(string)
				return slog.String("screen", v), ok
			}),
		)
		log.InfoContext(context.WithValue(context.Background(), key{}, "signup"), "msg")
		assert.Equal(t, "signup", decode(t, buf)["screen"])
	})
}

func TestEnvironments(t *testing.T) {
	t.Run("development uses text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "loginkit"), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "service=loginkit")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production uses json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "loginkit"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Info("msg")
		assert.Equal(t, "production", decode(t, buf)["env"])
	})

	t.Run("staging", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithStaging("loginkit"), logger.WithOutput(buf))
		log.Info("msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})
}

func TestAttrs(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	err := errors.New("boom")
	assert.Equal(t, err, logger.Error(err).Value.Any())

	assert.Equal(t, "name,email", logger.Fields("name", "email").Value.String())

	type code string
	attr := logger.Codes(code("a"), code("b"))
	assert.Equal(t, "codes", attr.Key)
	assert.Equal(t, "a,b", attr.Value.String())

	assert.Equal(t, "field", logger.Field("x").Key)
	assert.Equal(t, "attempted", logger.State("attempted").Value.String())
	assert.Equal(t, "email", logger.Variant("email").Value.String())
}

func TestSubmissionIDFromContext(t *testing.T) {
	_, ok := logger.SubmissionIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := logger.SubmissionIDFromContext(logger.WithSubmissionID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error("ignored") })
}
