package validation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Translator resolves message keys into display templates. The second return value
// is false when no translation exists for the key.
type Translator interface {
	Translate(ctx context.Context, key string) (string, bool)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, key string) (string, bool)

// Translate implements Translator.
func (f TranslatorFunc) Translate(ctx context.Context, key string) (string, bool) {
	return f(ctx, key)
}

// FormatMessage renders a failure message. The template is first resolved through tr
// (when not nil), then "{0}", "{1}", ... are replaced with the positional field values
// and "{config.<name>}" with the matching config entry. Only the first occurrence of each
// placeholder is replaced; unknown placeholders are left as they are.
func FormatMessage(ctx context.Context, template string, values []any, cfg Config, tr Translator) string {
	formatted := template
	if tr != nil {
		if translated, ok := tr.Translate(ctx, template); ok && translated != "" {
			formatted = translated
		}
	}

	for i, v := range values {
		formatted = strings.Replace(formatted, "{"+strconv.Itoa(i)+"}", stringify(v), 1)
	}

	for name, v := range cfg {
		formatted = strings.Replace(formatted, "{config."+name+"}", stringify(v), 1)
	}

	return formatted
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
