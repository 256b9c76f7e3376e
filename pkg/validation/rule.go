package validation

import "context"

// Config holds validator configuration. A rule that combines several validators may
// key its Config by validator name; see resolveConfig.
type Config map[string]any

// Params holds free-form parameters passed to validators and runIf predicates.
type Params map[string]any

// Target is the object being validated. Paths are dot separated ("address.city").
type Target interface {
	Get(path string) any
}

// Subscription identifies a field observer registered on an Observable.
type Subscription uint64

// Observable is a Target that notifies about field changes.
type Observable interface {
	Target
	Observe(path string, fn func()) Subscription
	Unobserve(sub Subscription)
}

// Validatable is a Target that declares its own validation rules.
type Validatable interface {
	Target
	Validations() []Declaration
}

// ObservableValidatable is required for realtime validation.
type ObservableValidatable interface {
	Validatable
	Observable
}

// Input is everything a validator receives for a single invocation.
type Input struct {
	// Values holds the current field values in declaration order.
	Values []any
	Config Config
	Params Params
}

// Value returns the first field value, which is what single-field validators need.
func (in Input) Value() any {
	if len(in.Values) == 0 {
		return nil
	}
	return in.Values[0]
}

// Validator is the capability a registry entry must expose.
type Validator interface {
	Validate(ctx context.Context, in Input) (bool, error)
	// IsAsync reports whether Validate may block and should run off the pass goroutine.
	IsAsync() bool
	// Message returns the default failure message template, or "" for none.
	Message() string
}

// Configurable is implemented by validators that ship default configuration.
// Defaults fill keys missing from the rule's configuration.
type Configurable interface {
	DefaultConfig() Config
}

// PredicateFunc is an inline validator declared directly on a rule.
type PredicateFunc func(in Input) bool

// ValidatorRef references a validator either by registry name or as an inline predicate.
type ValidatorRef struct {
	name string
	fn   PredicateFunc
}

// Named references a validator registered under name.
func Named(name string) ValidatorRef {
	return ValidatorRef{name: name}
}

// Func wraps an inline predicate. Inline predicates are synchronous and have no
// default message.
func Func(fn PredicateFunc) ValidatorRef {
	return ValidatorRef{fn: fn}
}

// Name returns the registry name, or "" for inline predicates.
func (r ValidatorRef) Name() string {
	return r.name
}

// IsZero reports whether the reference points at nothing.
func (r ValidatorRef) IsZero() bool {
	return r.name == "" && r.fn == nil
}

// Declaration is either a canonical Rule or a Shorthand.
type Declaration interface {
	declaration()
}

// Rule is the canonical rule declaration.
type Rule struct {
	// ID is required only when other rules depend on this one.
	ID         string
	Fields     []string
	Validators []ValidatorRef
	// Message overrides the validators' default message templates.
	Message string
	// CustomID aliases the rule in results, independent of the inspected fields.
	CustomID  string
	Config    Config
	RunIf     *RunIf
	DependsOn []string
	Realtime  bool
	Params    Params
}

func (Rule) declaration() {}

// Shorthand maps a single validator name to the fields it validates:
//
//	validation.Shorthand{"not_empty": {"name", "email"}}
type Shorthand map[string][]string

func (Shorthand) declaration() {}
