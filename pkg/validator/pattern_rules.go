package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validationkit/pkg/cache"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// patterns holds compiled expressions keyed by their effective pattern.
var patterns = cache.New[string, *regexp.Regexp](256)

// Regex matches the value against config "regex". Optional "flags" may contain
// "i" (case-insensitive), "m" (multi-line) and "s" (dot matches newline).
// Nil values never match.
func Regex() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			pattern, ok := in.Config["regex"].(string)
			if !ok || pattern == "" {
				return false, fmt.Errorf("%w: regex needs a non-empty regex pattern", ErrMissingConfig)
			}
			flags, _ := in.Config["flags"].(string)

			re, err := compile(pattern, flags)
			if err != nil {
				return false, err
			}

			v := in.Value()
			if v == nil {
				return false, nil
			}
			return re.MatchString(text(v)), nil
		},
		validation.WithMessage("validation.regex"),
	)
}

func compile(pattern, flags string) (*regexp.Regexp, error) {
	var prefix strings.Builder
	for _, f := range "ims" {
		if strings.ContainsRune(flags, f) {
			prefix.WriteRune(f)
		}
	}
	if prefix.Len() > 0 {
		pattern = "(?" + prefix.String() + ")" + pattern
	}

	re, err := patterns.GetOrCreate(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return re, nil
}
