package validator

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// NotEmpty rejects nil values, empty strings, empty collections and nil pointers.
// With config "trim" set, whitespace-only strings are rejected too.
func NotEmpty() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			switch v := in.Value().(type) {
			case nil:
				return false, nil
			case string:
				if boolConfig(in.Config, "trim") {
					v = strings.TrimSpace(v)
				}
				return v != "", nil
			default:
				rv := reflect.ValueOf(v)
				switch rv.Kind() {
				case reflect.Slice, reflect.Map, reflect.Array:
					return rv.Len() > 0, nil
				case reflect.Pointer:
					return !rv.IsNil(), nil
				default:
					return true, nil
				}
			}
		},
		validation.WithMessage("validation.not_empty"),
		validation.WithDefaultConfig(validation.Config{"trim": false}),
	)
}

// Length checks the character count of the value rendered as text. Config entries
// "min_length", "max_length" and "exact_length" are alternatives: the value is valid
// when any configured bound holds. At least one of them is required.
func Length() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			exact, hasExact, err := numberConfig(in.Config, "exact_length")
			if err != nil {
				return false, err
			}
			minLen, hasMin, err := numberConfig(in.Config, "min_length")
			if err != nil {
				return false, err
			}
			maxLen, hasMax, err := numberConfig(in.Config, "max_length")
			if err != nil {
				return false, err
			}
			if !hasExact && !hasMin && !hasMax {
				return false, fmt.Errorf("%w: length needs min_length, max_length or exact_length", ErrMissingConfig)
			}

			n := float64(utf8.RuneCountInString(text(in.Value())))
			return (hasExact && n == exact) || (hasMin && n >= minLen) || (hasMax && n <= maxLen), nil
		},
		validation.WithMessage("validation.length"),
	)
}
