package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangfuhao/loginkit/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello": "Hello",
			"validation": map[string]any{
				"password_too_short": "Must be at least %{min} characters",
				"invalid_email":      "Invalid email address",
			},
			"nested": map[string]any{"deeper": map[string]any{"key": "deep"}},
		},
		"es": {
			"validation": map[string]any{
				"password_too_short": "Debe tener al menos %{min} caracteres",
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"a": "b"}},
		})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("nil language map", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"en": nil},
		})
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("empty adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.Match("es"))
	})
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newTranslator(t)

	assert.True(t, tr.HasTranslation("en", "hello"))
	assert.True(t, tr.HasTranslation("en", "validation.invalid_email"))
	assert.True(t, tr.HasTranslation("en", "nested.deeper.key"))
	assert.False(t, tr.HasTranslation("en", "nested.deeper"), "maps are not templates")
	assert.False(t, tr.HasTranslation("es", "validation.invalid_email"))
	assert.False(t, tr.HasTranslation("fr", "hello"))
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Hello", tr.T("en", "hello", nil))
	assert.Equal(t, "Must be at least 8 characters",
		tr.T("en", "validation.password_too_short", map[string]any{"min": 8}))
	assert.Equal(t, "Debe tener al menos 8 caracteres",
		tr.T("es", "validation.password_too_short", map[string]any{"min": 8}))

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown", nil))
		assert.Equal(t, "hello", tr.T("fr", "hello", nil))
	})

	t.Run("missing key without fallback", func(t *testing.T) {
		strict := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "validation.unknown", nil))
	})

	t.Run("unknown placeholders are kept", func(t *testing.T) {
		assert.Equal(t, "Must be at least %{min} characters",
			tr.T("en", "validation.password_too_short", map[string]any{"max": 12}))
	})
}

func TestTranslator_Td(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Invalid email address", tr.Td("en", "validation.invalid_email", "fallback", nil))
	assert.Equal(t, "fallback 3", tr.Td("es", "validation.invalid_email", "fallback %{n}", map[string]any{"n": 3}))
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name      string
		preferred []string
		expected  string
	}{
		{name: "exact", preferred: []string{"es"}, expected: "es"},
		{name: "regional variant", preferred: []string{"es-MX"}, expected: "es"},
		{name: "accept-language list", preferred: []string{"fr-CA,es;q=0.8"}, expected: "es"},
		{name: "unsupported", preferred: []string{"ja"}, expected: "en"},
		{name: "none", preferred: nil, expected: "en"},
		{name: "unparseable", preferred: []string{"!!"}, expected: "en"},
		{name: "skips unparseable entries", preferred: []string{"!!", "es-AR"}, expected: "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Match(tt.preferred...))
		})
	}
}

func TestTranslator_MissingTranslationsLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newTranslator(t,
		i18n.WithLogger(slog.New(slog.NewTextHandler(buf, nil))),
		i18n.WithMissingTranslationsLogging(true),
	)

	tr.T("en", "validation.unknown", nil)
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "validation.unknown")
}
