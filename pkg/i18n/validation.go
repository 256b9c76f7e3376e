package i18n

import (
	"context"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Validation adapts the translator to validation.Translator. Message templates are
// resolved for the locale in the context, falling back to the default language.
// Missing keys report false so the engine keeps the raw template.
func (t *Translator) Validation() validation.Translator {
	return validation.TranslatorFunc(func(ctx context.Context, key string) (string, bool) {
		if tmpl, err := t.Lookup(GetLocale(ctx), key); err == nil {
			return tmpl, true
		}
		if tmpl, err := t.Lookup(t.defaultLang, key); err == nil {
			return tmpl, true
		}
		if t.missingLogMode {
			t.logger.WarnContext(ctx, "validation message not translated", "lang", GetLocale(ctx), "key", key)
		}
		return "", false
	})
}
