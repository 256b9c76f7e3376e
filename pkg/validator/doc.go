// Package validator provides the built-in validators for the validation engine.
//
// Every validator is a validation.Validator created with validation.NewValidator and
// carries a translation key as its message ("validation.length", ...). English texts
// for those keys ship with i18n.DefaultAdapter.
//
//	reg := validation.NewRegistry()
//	if err := validator.RegisterDefaults(reg); err != nil {
//	    return err
//	}
//
// # Validators
//
//   - not_empty: rejects nil, "", empty collections; config trim
//   - length: min_length, max_length, exact_length (any satisfied bound passes)
//   - number_value: min_value, max_value (any satisfied bound passes)
//   - numeric: numbers and numeric strings
//   - regex: regex, flags ("i", "m", "s")
//   - email: RFC 5322 address with a dotted domain
//   - uuid: canonical UUID string or uuid.UUID; config allow_nil
//   - one_of: values, case_insensitive
//
// Missing required configuration yields ErrMissingConfig and malformed configuration
// ErrInvalidConfig. Both abort the validation pass like any other validator error.
package validator
