package validator

import "errors"

var (
	// ErrMissingConfig is returned when a validator is used without its required configuration.
	ErrMissingConfig = errors.New("validator: missing configuration")

	// ErrInvalidConfig is returned when a configuration value has the wrong type or format.
	ErrInvalidConfig = errors.New("validator: invalid configuration")
)
