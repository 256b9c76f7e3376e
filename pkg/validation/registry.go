package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry resolves validator names to validators.
type Registry interface {
	Resolve(name string) (Validator, error)
}

// ValidatorRegistry is a concurrency-safe Registry. Entries are stored untyped and
// checked for the Validator capability on resolution, so a registry can be shared
// with other providers living under the same names.
type ValidatorRegistry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *ValidatorRegistry {
	return &ValidatorRegistry{entries: make(map[string]any)}
}

// Register stores entry under name, replacing any previous registration.
func (r *ValidatorRegistry) Register(name string, entry any) error {
	if name == "" {
		return errors.Join(ErrInvalidValidator, errors.New("empty validator name"))
	}
	if entry == nil {
		return errors.Join(ErrInvalidValidator, fmt.Errorf("nil entry for %q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry
	return nil
}

// MustRegister works like Register but panics on error.
func (r *ValidatorRegistry) MustRegister(name string, entry any) {
	if err := r.Register(name, entry); err != nil {
		panic(err)
	}
}

// Resolve implements Registry.
func (r *ValidatorRegistry) Resolve(name string) (Validator, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValidatorNotFound, name)
	}

	v, ok := entry.(Validator)
	if !ok {
		return nil, errors.Join(ErrConfiguration, fmt.Errorf("%w: %q (%T) does not implement Validator", ErrValidatorContract, name, entry))
	}
	return v, nil
}

// Names returns the registered names in lexical order.
func (r *ValidatorRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidatorFunc is the signature of a registry validator implementation.
type ValidatorFunc func(ctx context.Context, in Input) (bool, error)

// ValidatorOption configures a validator built with NewValidator.
type ValidatorOption func(*funcValidator)

// WithAsync marks the validator as asynchronous.
func WithAsync() ValidatorOption {
	return func(v *funcValidator) { v.async = true }
}

// WithMessage sets the default failure message template.
func WithMessage(message string) ValidatorOption {
	return func(v *funcValidator) { v.message = message }
}

// WithDefaultConfig sets configuration used for keys the rule leaves out.
func WithDefaultConfig(cfg Config) ValidatorOption {
	return func(v *funcValidator) { v.defaults = cfg }
}

// NewValidator adapts fn to the Validator interface.
func NewValidator(fn ValidatorFunc, opts ...ValidatorOption) Validator {
	v := &funcValidator{fn: fn}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type funcValidator struct {
	fn       ValidatorFunc
	async    bool
	message  string
	defaults Config
}

func (v *funcValidator) Validate(ctx context.Context, in Input) (bool, error) {
	return v.fn(ctx, in)
}

func (v *funcValidator) IsAsync() bool         { return v.async }
func (v *funcValidator) Message() string       { return v.message }
func (v *funcValidator) DefaultConfig() Config { return v.defaults }

// inlineValidator wraps a PredicateFunc declared on a rule.
type inlineValidator struct {
	fn PredicateFunc
}

func (v inlineValidator) Validate(_ context.Context, in Input) (bool, error) {
	return v.fn(in), nil
}

func (inlineValidator) IsAsync() bool   { return false }
func (inlineValidator) Message() string { return "" }

// resolveValidator turns a reference into a callable validator.
func resolveValidator(reg Registry, ref ValidatorRef) (Validator, error) {
	if ref.fn != nil {
		return inlineValidator{fn: ref.fn}, nil
	}
	if ref.name == "" {
		return nil, ErrMissingValidator
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %q (no registry configured)", ErrValidatorNotFound, ref.name)
	}
	return reg.Resolve(ref.name)
}
