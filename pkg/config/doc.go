// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env after reading an optional
// .env file through github.com/joho/godotenv. Parsed values are cached per type, so
// repeated calls are cheap and always observe the same configuration:
//
//	type EngineConfig struct {
//		RealtimeDebounce time.Duration `env:"VALIDATION_REALTIME_DEBOUNCE" envDefault:"300ms"`
//	}
//
//	var cfg EngineConfig
//	config.MustLoad(&cfg)
//
// LoadEnv reads additional .env files and invalidates the cache; ResetCache only
// invalidates it.
package config
