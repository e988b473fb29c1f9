package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator resolves message keys into localized strings. Translations are
// loaded once from a Source at construction and are immutable afterwards, so
// lookups are safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// New creates a Translator backed by the given source.
func New(ctx context.Context, source Source, options ...Option) (*Translator, error) {
	if source == nil {
		return nil, fmt.Errorf("i18n: source is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, m := range translations {
		if lang == "" {
			return nil, fmt.Errorf("i18n: empty language code in translations")
		}
		if m == nil {
			return nil, fmt.Errorf("i18n: nil translations map for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLang returns the configured default language code.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// lookup traverses a nested map using dot-separated keys, so
// "validation.min_length" resolves m["validation"]["min_length"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			// YAML decoders may produce map[any]any for nested maps.
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = lookup(langMap, key)
	return ok
}

// Placeholders take the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes named %{key} placeholders from the values map.
// Unknown placeholders are left untouched.
func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprintf("%v", val)
		}
		return match
	})
}

// T translates a key for the given language, substituting %{name} placeholders
// from the values map.
//
// If the translation is missing and the translator falls back to keys
// (the default), the key itself is returned; otherwise an empty string.
//
// Example:
//
//	// With translation "validation.min_length": "at least %{min} characters"
//	msg := translator.T("en", "validation.min_length", map[string]any{"min": 8})
//	// Returns: "at least 8 characters"
func (t *Translator) T(lang, key string, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.resolve(lang, key); ok {
		return interpolate(s, values)
	}
	if t.fallbackToKey {
		return interpolate(key, values)
	}
	return ""
}

// Td translates a key with an explicit default used when the translation is
// missing or not a string.
func (t *Translator) Td(lang, key, defaultValue string, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.resolve(lang, key); ok {
		return interpolate(s, values)
	}
	return interpolate(defaultValue, values)
}

// resolve returns the string template for lang/key. Callers hold the lock.
func (t *Translator) resolve(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		if t.logMissing {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	s, isStr := val.(string)
	if !isStr {
		if t.logMissing {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return "", false
	}
	return s, true
}

// N translates a key with pluralization. The plural form is selected by n:
// key+".zero" for 0 (falling back to ".other"), key+".one" for 1, and
// key+".other" otherwise. A "count" value is injected unless already present.
func (t *Translator) N(lang, key string, n int, values map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var s string
	var ok bool
	switch {
	case n == 0:
		if s, ok = t.resolve(lang, key+".zero"); !ok {
			s, ok = t.resolve(lang, key+".other")
		}
	case n == 1:
		s, ok = t.resolve(lang, key+".one")
	default:
		s, ok = t.resolve(lang, key+".other")
	}
	if !ok {
		// The key itself may hold a plain string.
		s, ok = t.resolve(lang, key)
	}
	if !ok {
		if t.fallbackToKey {
			return interpolate(key, values)
		}
		return ""
	}

	if _, has := values["count"]; !has {
		merged := make(map[string]any, len(values)+1)
		for k, v := range values {
			merged[k] = v
		}
		merged["count"] = strconv.Itoa(n)
		values = merged
	}
	return interpolate(s, values)
}

// Func returns a message-lookup closure for one language, shaped to plug into
// the validator's TranslateFunc. It returns "" for missing translations so
// rule defaults stay in place.
func (t *Translator) Func(lang string) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		return t.Td(lang, key, "", values)
	}
}
