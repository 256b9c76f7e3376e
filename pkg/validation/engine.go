package validation

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// DefaultRealtimeDebounce is used when neither the engine nor the rule sets an interval.
const DefaultRealtimeDebounce = 300 * time.Millisecond

// RealtimeDebounceKey is the rule config key overriding the engine debounce interval.
// Values are milliseconds (any numeric type) or duration strings ("250ms").
const RealtimeDebounceKey = "realtime_debounce"

// Engine schedules and executes validation rules. It holds no per-pass state and is
// safe for concurrent use.
type Engine struct {
	registry   Registry
	translator Translator
	logger     *slog.Logger
	debounce   time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTranslator enables translation of message templates.
func WithTranslator(tr Translator) Option {
	return func(e *Engine) {
		e.translator = tr
	}
}

// WithLogger sets the engine logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRealtimeDebounce sets the default realtime debounce interval.
// Non-positive values are ignored.
func WithRealtimeDebounce(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.debounce = d
		}
	}
}

// WithEnvConfig applies configuration loaded from the environment.
func WithEnvConfig(cfg EnvConfig) Option {
	return func(e *Engine) {
		WithRealtimeDebounce(cfg.RealtimeDebounce)(e)
	}
}

// New creates an engine resolving named validators through registry.
func New(registry Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		logger:   logger.Discard(),
		debounce: DefaultRealtimeDebounce,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnvConfig is the engine configuration read from the environment, see config.Load.
type EnvConfig struct {
	RealtimeDebounce time.Duration `env:"VALIDATION_REALTIME_DEBOUNCE" envDefault:"300ms"`
}
