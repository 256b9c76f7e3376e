package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// SetLocale stores locale in ctx. Valid BCP 47 tags are canonicalized to their base
// language ("en-US" becomes "en"); invalid tags are stored as given.
func SetLocale(ctx context.Context, locale string) context.Context {
	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		locale = base.String()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}
