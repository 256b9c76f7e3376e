package validator

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// OneOf accepts values listed in config "values". Values are compared by their text
// form, so 1 matches "1"; config "case_insensitive" relaxes string comparison.
func OneOf() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			options, err := choices(in.Config["values"])
			if err != nil {
				return false, err
			}

			v := in.Value()
			if v == nil {
				return false, nil
			}
			value := text(v)
			fold := boolConfig(in.Config, "case_insensitive")

			for _, opt := range options {
				if fold && strings.EqualFold(value, opt) || value == opt {
					return true, nil
				}
			}
			return false, nil
		},
		validation.WithMessage("validation.one_of"),
	)
}

func choices(v any) ([]string, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: one_of needs a values list", ErrMissingConfig)
	}
	if s, ok := v.([]string); ok {
		return s, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: one_of values must be a list, got %T", ErrInvalidConfig, v)
	}
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = text(rv.Index(i).Interface())
	}
	return out, nil
}
