package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	noop := validation.NewValidator(func(context.Context, validation.Input) (bool, error) { return true, nil })

	t.Run("register and resolve", func(t *testing.T) {
		reg := validation.NewRegistry()
		require.NoError(t, reg.Register("b", noop))
		require.NoError(t, reg.Register("a", noop))

		v, err := reg.Resolve("a")
		require.NoError(t, err)
		assert.Same(t, noop, v)
		assert.Equal(t, []string{"a", "b"}, reg.Names())
	})

	t.Run("invalid registrations", func(t *testing.T) {
		reg := validation.NewRegistry()
		assert.ErrorIs(t, reg.Register("", noop), validation.ErrInvalidValidator)
		assert.ErrorIs(t, reg.Register("x", nil), validation.ErrInvalidValidator)
		assert.Panics(t, func() { reg.MustRegister("", noop) })
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := validation.NewRegistry().Resolve("missing")
		assert.ErrorIs(t, err, validation.ErrValidatorNotFound)
		assert.ErrorIs(t, err, validation.ErrConfiguration)
	})

	t.Run("entry without validator capability", func(t *testing.T) {
		reg := validation.NewRegistry()
		reg.MustRegister("service", struct{ Name string }{"mailer"})

		_, err := reg.Resolve("service")
		assert.ErrorIs(t, err, validation.ErrValidatorContract)
		assert.ErrorIs(t, err, validation.ErrConfiguration)
	})
}

func TestNewValidator(t *testing.T) {
	t.Parallel()

	v := validation.NewValidator(
		func(context.Context, validation.Input) (bool, error) { return false, nil },
		validation.WithAsync(),
		validation.WithMessage("invalid {0}"),
		validation.WithDefaultConfig(validation.Config{"min": 1}),
	)

	assert.True(t, v.IsAsync())
	assert.Equal(t, "invalid {0}", v.Message())

	c, ok := v.(validation.Configurable)
	require.True(t, ok)
	assert.Equal(t, validation.Config{"min": 1}, c.DefaultConfig())

	plain := validation.NewValidator(func(context.Context, validation.Input) (bool, error) { return true, nil })
	assert.False(t, plain.IsAsync())
	assert.Empty(t, plain.Message())
}
