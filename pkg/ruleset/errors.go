package ruleset

import "errors"

var (
	ErrParsingCancelled = errors.New("ruleset: parsing cancelled")
	ErrInvalidRuleset   = errors.New("ruleset: invalid rule file")
	ErrConflictingGate  = errors.New("ruleset: run_if and run_if_expr are mutually exclusive")
	ErrFailedToReadFile = errors.New("ruleset: failed to read rule file")
)
