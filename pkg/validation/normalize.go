package validation

import (
	"fmt"
	"slices"
)

// Normalize expands shorthand declarations into canonical rules. The input slice and the
// rules it holds are never modified. Every returned rule has at least one field and one
// validator.
func Normalize(decls []Declaration) ([]Rule, error) {
	rules := make([]Rule, 0, len(decls))

	for i, decl := range decls {
		switch d := decl.(type) {
		case Rule:
			if err := checkRule(d); err != nil {
				return nil, fmt.Errorf("rule #%d: %w", i, err)
			}
			rules = append(rules, cloneRule(d))
		case *Rule:
			if d == nil {
				return nil, fmt.Errorf("rule #%d: %w", i, ErrMissingFields)
			}
			if err := checkRule(*d); err != nil {
				return nil, fmt.Errorf("rule #%d: %w", i, err)
			}
			rules = append(rules, cloneRule(*d))
		case Shorthand:
			expanded, err := expandShorthand(d)
			if err != nil {
				return nil, fmt.Errorf("rule #%d: %w", i, err)
			}
			rules = append(rules, expanded...)
		default:
			return nil, fmt.Errorf("rule #%d: %w: unsupported declaration %T", i, ErrConfiguration, decl)
		}
	}

	return rules, nil
}

func expandShorthand(s Shorthand) ([]Rule, error) {
	if len(s) != 1 {
		return nil, ErrMalformedShorthand
	}

	var rules []Rule
	for name, fields := range s {
		if name == "" || len(fields) == 0 {
			return nil, ErrMalformedShorthand
		}
		rules = make([]Rule, 0, len(fields))
		for _, field := range fields {
			if field == "" {
				return nil, ErrMalformedShorthand
			}
			rules = append(rules, Rule{
				Fields:     []string{field},
				Validators: []ValidatorRef{Named(name)},
			})
		}
	}
	return rules, nil
}

func checkRule(r Rule) error {
	if len(r.Fields) == 0 || slices.Contains(r.Fields, "") {
		return ErrMissingFields
	}
	if len(r.Validators) == 0 || slices.ContainsFunc(r.Validators, ValidatorRef.IsZero) {
		return ErrMissingValidator
	}
	return nil
}

// cloneRule copies the slices a pass may retain so later edits by the caller
// cannot leak into a running pass.
func cloneRule(r Rule) Rule {
	r.Fields = slices.Clone(r.Fields)
	r.Validators = slices.Clone(r.Validators)
	r.DependsOn = slices.Clone(r.DependsOn)
	return r
}
