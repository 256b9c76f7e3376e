package validation

import "errors"

// Rule declaration and validator wiring errors. All of them wrap ErrConfiguration,
// so callers can detect programmer mistakes with a single errors.Is check.
var (
	// ErrConfiguration is the parent of every rule declaration error.
	ErrConfiguration = errors.New("validation: invalid rule configuration")

	ErrMissingFields      = errors.Join(ErrConfiguration, errors.New("validation: rule has no fields"))
	ErrMissingValidator   = errors.Join(ErrConfiguration, errors.New("validation: rule has no validator"))
	ErrMalformedShorthand = errors.Join(ErrConfiguration, errors.New("validation: shorthand rule must map exactly one validator name to a list of fields"))
	ErrDuplicateRuleID    = errors.Join(ErrConfiguration, errors.New("validation: multiple rules share the same id"))
	ErrValidatorNotFound  = errors.Join(ErrConfiguration, errors.New("validation: validator is not registered"))
	ErrInvalidValidator   = errors.Join(ErrConfiguration, errors.New("validation: invalid validator registration"))
	ErrInvalidGate        = errors.Join(ErrConfiguration, errors.New("validation: invalid runIf declaration"))
)

// Runtime errors raised while a pass is executing.
var (
	// ErrValidatorContract is returned when a resolved validator does not expose the
	// validator capability, or when a validator panics during invocation.
	ErrValidatorContract = errors.New("validation: validator contract violation")

	// ErrGateEvaluation is returned when a runIf predicate or expression fails.
	ErrGateEvaluation = errors.New("validation: runIf evaluation failed")

	// ErrNilTarget is returned when a pass is started without a target object.
	ErrNilTarget = errors.New("validation: cannot validate nil target")
)
