package validation_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/observable"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// spy records every invocation of a validator.
type spy struct {
	calls  atomic.Int32
	mu     sync.Mutex
	inputs []validation.Input
}

func (s *spy) record(in validation.Input) {
	s.calls.Add(1)
	s.mu.Lock()
	s.inputs = append(s.inputs, in)
	s.mu.Unlock()
}

func (s *spy) count() int {
	return int(s.calls.Load())
}

func (s *spy) last() validation.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.inputs) == 0 {
		return validation.Input{}
	}
	return s.inputs[len(s.inputs)-1]
}

// fixed returns a validator with a constant outcome, observed by s.
func (s *spy) fixed(ok bool, opts ...validation.ValidatorOption) validation.Validator {
	return validation.NewValidator(func(_ context.Context, in validation.Input) (bool, error) {
		s.record(in)
		return ok, nil
	}, opts...)
}

func newRegistry(t *testing.T, validators map[string]validation.Validator) *validation.ValidatorRegistry {
	t.Helper()
	reg := validation.NewRegistry()
	for name, v := range validators {
		require.NoError(t, reg.Register(name, v))
	}
	return reg
}

func rule(id string, fields []string, validators ...string) validation.Rule {
	r := validation.Rule{ID: id, Fields: fields}
	for _, name := range validators {
		r.Validators = append(r.Validators, validation.Named(name))
	}
	return r
}

func form(values map[string]any, decls ...validation.Declaration) *observable.Object {
	return observable.New(values, observable.WithValidations(decls...))
}
