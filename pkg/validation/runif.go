package validation

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// GateFunc decides whether a rule runs. It receives the values of the gate's field paths
// followed by the rule's config and the pass parameters.
type GateFunc func(values []any, cfg Config, params Params) bool

// RunIf is a precondition evaluated right before a rule is dispatched.
type RunIf struct {
	fields     []string
	fn         GateFunc
	expression string

	once    sync.Once
	program *vm.Program
	err     error
}

// RunIfFields gates a rule on every named field holding a truthy value.
func RunIfFields(paths ...string) *RunIf {
	return &RunIf{fields: paths}
}

// RunIfFunc gates a rule on fn. The current values of paths are passed to fn positionally,
// followed by the resolved config (validator defaults included) and the pass parameters.
// Rules with several validators pass the declared rule config instead.
func RunIfFunc(fn GateFunc, paths ...string) *RunIf {
	return &RunIf{fields: paths, fn: fn}
}

// RunIfExpr gates a rule on a boolean expr-lang expression. The expression can read
// field values with get("path"), and also sees params and config:
//
//	validation.RunIfExpr(`get("account.type") == "business" && params.strict`)
func RunIfExpr(expression string) *RunIf {
	return &RunIf{expression: expression}
}

// Fields returns the field paths the gate reads.
func (g *RunIf) Fields() []string {
	if g == nil {
		return nil
	}
	return g.fields
}

// Expression returns the gate expression, if any.
func (g *RunIf) Expression() string {
	if g == nil {
		return ""
	}
	return g.expression
}

// evaluate reports whether the rule may run. Panics in user predicates are converted
// into ErrGateEvaluation.
func (g *RunIf) evaluate(target Target, cfg Config, params Params) (ok bool, err error) {
	if g == nil {
		return true, nil
	}

	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: %v", ErrGateEvaluation, r)
		}
	}()

	switch {
	case g.expression != "":
		return g.evaluateExpr(target, cfg, params)
	case g.fn != nil:
		return g.fn(readValues(target, g.fields), cfg, params), nil
	case len(g.fields) == 0:
		return false, ErrInvalidGate
	default:
		for _, path := range g.fields {
			if !truthy(target.Get(path)) {
				return false, nil
			}
		}
		return true, nil
	}
}

func (g *RunIf) evaluateExpr(target Target, cfg Config, params Params) (bool, error) {
	g.once.Do(func() {
		g.program, g.err = expr.Compile(g.expression,
			expr.Env(gateEnv(func(string) any { return nil }, nil, nil)),
			expr.DisableBuiltin("get"),
			expr.AsBool(),
		)
	})
	if g.err != nil {
		return false, fmt.Errorf("%w: compile %q: %w", ErrInvalidGate, g.expression, g.err)
	}

	out, err := expr.Run(g.program, gateEnv(target.Get, cfg, params))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrGateEvaluation, err)
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression %q returned %T", ErrGateEvaluation, g.expression, out)
	}
	return result, nil
}

// gateEnv is the expression environment. get shadows the expr builtin of the same name.
func gateEnv(get func(string) any, cfg Config, params Params) map[string]any {
	if cfg == nil {
		cfg = Config{}
	}
	if params == nil {
		params = Params{}
	}
	return map[string]any{
		"get":    get,
		"params": map[string]any(params),
		"config": map[string]any(cfg),
	}
}

func readValues(target Target, paths []string) []any {
	values := make([]any, len(paths))
	for i, path := range paths {
		values[i] = target.Get(path)
	}
	return values
}

// truthy mirrors loose truthiness: nil, false, zero numbers, empty strings and
// empty collections are falsy.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	default:
		return true
	}
}
