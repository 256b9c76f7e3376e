package validation

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/dmitrymomot/validationkit/pkg/async"
)

// invocation is one validator of a rule, resolved and configured for the current pass.
type invocation struct {
	ref       ValidatorRef
	validator Validator
	config    Config
}

// execution is a rule prepared for dispatch: field values read, validators resolved.
type execution struct {
	rule        *Rule
	values      []any
	params      Params
	invocations []invocation
	translator  Translator
}

// prepare resolves everything a rule needs before it runs. Validators are resolved on
// every pass because configuration may differ between calls.
func (e *Engine) prepare(rule *Rule, target Target, params Params) (*execution, error) {
	exec := &execution{
		rule:        rule,
		values:      readValues(target, rule.Fields),
		params:      params,
		invocations: make([]invocation, 0, len(rule.Validators)),
		translator:  e.translator,
	}

	for _, ref := range rule.Validators {
		v, err := resolveValidator(e.registry, ref)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("%w: %q resolved to nil", ErrValidatorContract, ref.name)
		}
		cfg, err := resolveConfig(rule, ref, v)
		if err != nil {
			return nil, err
		}
		exec.invocations = append(exec.invocations, invocation{ref: ref, validator: v, config: cfg})
	}

	return exec, nil
}

// async reports whether any validator of the rule is asynchronous.
func (x *execution) async() bool {
	for _, inv := range x.invocations {
		if inv.validator.IsAsync() {
			return true
		}
	}
	return false
}

// gateConfig is the config a runIf gate sees: the resolved config of a single-validator
// rule, or a copy of the declared rule config when validators get different scopes.
func (x *execution) gateConfig() Config {
	if len(x.invocations) == 1 {
		return Config(cloneMap(x.invocations[0].config))
	}
	return Config(cloneMap(x.rule.Config))
}

// run invokes all validators of the rule and collects failures in declaration order.
// Asynchronous validators are started together before any outcome is awaited.
// Panics while rendering messages are reported as contract violations.
func (x *execution) run(ctx context.Context) (res FieldResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = FieldResult{}
			err = fmt.Errorf("%w: rule %v panicked: %v\n%s", ErrValidatorContract, x.rule.Fields, r, debug.Stack())
		}
	}()

	futures := make([]*async.Future[bool], len(x.invocations))
	for i, inv := range x.invocations {
		if inv.validator.IsAsync() {
			futures[i] = async.Async(ctx, inv, x.invoke)
		}
	}

	failures := make([]Failure, 0)
	for i, inv := range x.invocations {
		var (
			ok  bool
			err error
		)
		if futures[i] != nil {
			ok, err = futures[i].AwaitContext(ctx)
		} else {
			ok, err = x.invoke(ctx, inv)
		}
		if err != nil {
			return FieldResult{}, err
		}
		if !ok {
			failures = append(failures, x.failure(ctx, inv))
		}
	}

	return FieldResult{
		Fields:   x.rule.Fields,
		CustomID: x.rule.CustomID,
		Result:   failures,
		Params:   x.params,
	}, nil
}

// invoke calls a single validator, converting panics into contract violations.
func (x *execution) invoke(ctx context.Context, inv invocation) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%w: validator %q panicked: %v\n%s", ErrValidatorContract, validatorName(inv.ref), r, debug.Stack())
		}
	}()

	ok, err = inv.validator.Validate(ctx, Input{
		Values: x.values,
		Config: inv.config,
		Params: x.params,
	})
	if err != nil {
		return false, fmt.Errorf("validator %q: %w", validatorName(inv.ref), err)
	}
	return ok, nil
}

// failure builds the failing entry: the rule message wins over the validator default,
// and no message at all yields a bare failure.
func (x *execution) failure(ctx context.Context, inv invocation) Failure {
	message := x.rule.Message
	if message == "" {
		message = inv.validator.Message()
	}
	if message == "" {
		return Failure{}
	}
	return Failure{
		Message:  FormatMessage(ctx, message, x.values, inv.config, x.translator),
		Rendered: true,
	}
}

func validatorName(ref ValidatorRef) string {
	if ref.name == "" {
		return "inline"
	}
	return ref.name
}
