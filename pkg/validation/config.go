package validation

import (
	"fmt"

	"dario.cat/mergo"
)

// resolveConfig determines the configuration visible to one validator of a rule.
// With a single validator the whole rule config belongs to it. With several, an entry
// keyed by the validator name wins, otherwise the whole config is shared.
// Validator defaults fill keys the rule leaves out; explicit zero values are kept.
// The result is a deep copy and never aliases the rule or the defaults.
func resolveConfig(rule *Rule, ref ValidatorRef, v Validator) (Config, error) {
	src := rule.Config
	if len(rule.Validators) > 1 && ref.name != "" {
		if scoped, ok := asConfig(rule.Config[ref.name]); ok {
			src = scoped
		}
	}
	cfg := Config(cloneMap(src))

	if c, ok := v.(Configurable); ok {
		if defaults := c.DefaultConfig(); len(defaults) > 0 {
			if err := fillMissing(cfg, defaults); err != nil {
				return nil, fmt.Errorf("%w: merge default config: %w", ErrConfiguration, err)
			}
		}
	}

	return cfg, nil
}

// mergeParams returns the pass parameters completed by the rule's own parameters.
// Pass parameters take precedence, including explicit zero values; neither input is
// modified and the result shares no maps with them.
func mergeParams(pass, rule Params) (Params, error) {
	out := Params(cloneMap(pass))
	if len(rule) == 0 {
		return out, nil
	}
	if err := fillMissing(out, rule); err != nil {
		return nil, fmt.Errorf("%w: merge params: %w", ErrConfiguration, err)
	}
	return out, nil
}

// fillMissing merges a deep copy of src into dst without overwriting values dst holds.
// WithoutDereference keeps false, 0 and "" in dst from being treated as unset.
func fillMissing[M ~map[string]any](dst M, src M) error {
	copied := M(cloneMap(src))
	return mergo.Merge(&dst, copied, mergo.WithoutDereference)
}

func asConfig(v any) (Config, bool) {
	switch c := v.(type) {
	case Config:
		return c, true
	case map[string]any:
		return Config(c), true
	default:
		return nil, false
	}
}

// cloneMap deep-copies nested maps and slices; other values are copied as is.
func cloneMap[M ~map[string]any](src M) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Config:
		return Config(cloneMap(t))
	case Params:
		return Params(cloneMap(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
