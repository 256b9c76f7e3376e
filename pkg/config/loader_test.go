package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/config"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type requiredConfig struct {
	Required string `env:"VALIDATION_TEST_REQUIRED,required"`
}

type singletonConfig struct {
	Value string `env:"VALIDATION_TEST_SINGLETON" envDefault:"default"`
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("VALIDATION_REALTIME_DEBOUNCE")

		var cfg validation.EnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 300*time.Millisecond, cfg.RealtimeDebounce)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("VALIDATION_REALTIME_DEBOUNCE", "1s")

		var cfg validation.EnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, time.Second, cfg.RealtimeDebounce)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("VALIDATION_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *validation.EnvConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("VALIDATION_TEST_SINGLETON", "first")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("VALIDATION_TEST_SINGLETON", "second")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()
	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VALIDATION_REALTIME_DEBOUNCE", "10ms")
	config.ResetCache()

	var before validation.EnvConfig
	require.NoError(t, config.Load(&before))
	assert.Equal(t, 10*time.Millisecond, before.RealtimeDebounce)

	require.NoError(t, config.LoadEnv("testdata/.env.realtime"))

	var after validation.EnvConfig
	require.NoError(t, config.Load(&after))
	assert.Equal(t, 750*time.Millisecond, after.RealtimeDebounce)

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/.env.missing"), config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
