package i18n

import (
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// DefaultLanguage is used when no language is requested or detected.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" || m == nil {
			return nil, fmt.Errorf("%w: empty language or nil map for %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the loaded language codes in lexical order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the template stored under key for lang. Keys use dot notation
// ("validation.not_empty"). Rich-text leaves are reduced to plain text;
// nested maps are not translations.
func (t *Translator) Lookup(lang, key string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		return "", fmt.Errorf("i18n: translation %q not found for %s", key, lang)
	}

	text, ok := plainText(val)
	if !ok {
		return "", fmt.Errorf("i18n: translation %q for %s is %T, not text", key, lang, val)
	}
	return text, nil
}

// plainText reduces a translation leaf to text. Rich-text values (template.HTML or any
// other string-kinded type) lose their markup; fmt.Stringer leaves use String.
func plainText(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case template.HTML:
		return stripMarkup(string(v)), true
	case fmt.Stringer:
		return v.String(), true
	}

	if rv := reflect.ValueOf(val); rv.IsValid() && rv.Kind() == reflect.String {
		return stripMarkup(rv.String()), true
	}
	return "", false
}

var markupRegex = regexp.MustCompile(`<[^>]*>`)

// stripMarkup removes tags and unescapes HTML entities.
func stripMarkup(s string) string {
	return html.UnescapeString(markupRegex.ReplaceAllString(s, ""))
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, err := t.Lookup(lang, key)
	return err == nil
}

// T translates key for lang, substituting "%{name}" placeholders from key/value pairs
// in args. Missing translations fall back to the key unless disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, err := t.Lookup(lang, key)
	if err != nil {
		if errors.Is(err, ErrLanguageNotSupported) && lang != t.defaultLang {
			if tmpl, err = t.Lookup(t.defaultLang, key); err == nil {
				return namedSprintf(tmpl, args)
			}
		}
		if t.missingLogMode {
			t.logger.Warn("translation missing", "lang", lang, "key", key, logger.Error(err))
		}
		if t.fallbackToKey {
			return namedSprintf(key, args)
		}
		return ""
	}
	return namedSprintf(tmpl, args)
}

// Tc translates key for the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
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

// namedSprintf replaces "%{key}" placeholders using key/value pairs in args.
// Unknown placeholders are kept.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
