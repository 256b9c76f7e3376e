package validator

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// UUID accepts the canonical 36 character form. Config "allow_nil" permits the nil UUID.
func UUID() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			switch v := in.Value().(type) {
			case uuid.UUID:
				return v != uuid.Nil || boolConfig(in.Config, "allow_nil"), nil
			case string:
				// cheap rejection before parsing; uuid.Parse also accepts urn and braced forms
				if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
					return false, nil
				}
				id, err := uuid.Parse(v)
				if err != nil {
					return false, nil
				}
				return id != uuid.Nil || boolConfig(in.Config, "allow_nil"), nil
			default:
				return false, nil
			}
		},
		validation.WithMessage("validation.uuid"),
	)
}
