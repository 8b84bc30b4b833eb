package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en"

// Translator looks up translation templates by language and dotted key.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if m == nil {
			return nil, fmt.Errorf("%w: nil map for language %q", ErrInvalidStructure, lang)
		}
	}

	t.translations = translations
	t.langs = sortedKeys(translations)
	t.matcher = newMatcher(t.defaultLang, t.langs)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// DefaultLanguage returns the language used when matching fails.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// HasTranslation reports whether key resolves to a string template in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from values.
// A missing translation yields the key itself, or "" when fallback to key is
// disabled.
func (t *Translator) T(lang, key string, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return format(tmpl, values)
	}
	if t.fallbackToKey {
		return format(key, values)
	}
	return ""
}

// Td is T with an explicit default template used when key is missing.
func (t *Translator) Td(lang, key, def string, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return format(tmpl, values)
	}
	return format(def, values)
}

// Match picks the best supported language for the given preferences, which
// may be BCP 47 tags or Accept-Language style lists. Without a confident match
// the default language is returned.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.langs) == 0 || len(preferred) == 0 {
		return t.defaultLang
	}

	var tags []language.Tag
	for _, pref := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}

	candidates := orderLanguages(t.defaultLang, t.langs)
	if idx < 0 || idx >= len(candidates) {
		return t.defaultLang
	}
	return candidates[idx]
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	val, ok := resolve(m, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string",
				slog.String("lang", lang),
				slog.String("key", key),
				slog.String("type", fmt.Sprintf("%T", v)),
			)
		}
		return "", false
	}
}

// orderLanguages puts the default language first so the matcher falls back
// to it.
func orderLanguages(defaultLang string, langs []string) []string {
	out := make([]string, 0, len(langs))
	if slices.Contains(langs, defaultLang) {
		out = append(out, defaultLang)
	}
	for _, l := range langs {
		if l != defaultLang {
			out = append(out, l)
		}
	}
	return out
}

func newMatcher(defaultLang string, langs []string) language.Matcher {
	ordered := orderLanguages(defaultLang, langs)
	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		tag, err := language.Parse(l)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags)
}

// resolve walks m along a dot separated key.
func resolve(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nm := next.(type) {
		case map[string]any:
			current = nm
		case map[any]any:
			current = make(map[string]any, len(nm))
			for k, v := range nm {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes %{name} placeholders. Unknown names are left as is.
func format(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

func sortedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
