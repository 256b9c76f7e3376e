package validator

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Numeric accepts numbers and strings holding a finite number.
func Numeric() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			_, ok := number(in.Value())
			return ok, nil
		},
		validation.WithMessage("validation.is_number"),
	)
}

// NumberValue checks a numeric value against "min_value" and "max_value". The bounds
// are alternatives: the value is valid when any configured bound holds. Non-numeric
// values are invalid.
func NumberValue() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			minVal, hasMin, err := numberConfig(in.Config, "min_value")
			if err != nil {
				return false, err
			}
			maxVal, hasMax, err := numberConfig(in.Config, "max_value")
			if err != nil {
				return false, err
			}
			if !hasMin && !hasMax {
				return false, fmt.Errorf("%w: number_value needs min_value or max_value", ErrMissingConfig)
			}

			n, ok := number(in.Value())
			if !ok {
				return false, nil
			}
			return (hasMin && n >= minVal) || (hasMax && n <= maxVal), nil
		},
		validation.WithMessage("validation.number_value"),
	)
}
