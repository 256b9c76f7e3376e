package validation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// ResultHandler receives realtime validation outcomes. Exactly one of res and err is set.
type ResultHandler func(res *ObjectResult, err error)

// StartRealtimeValidation re-runs each rule marked Realtime whenever one of its fields
// changes. Changes within the rule's debounce interval are coalesced into one run, which
// is a one-rule pass with its own dependency state. Rules gated out by runIf (or blocked
// by dependencies, which can never resolve in a one-rule pass) do not report.
//
// The returned stop function removes every observer registered by this call, cancels
// pending and in-flight runs and discards their results. Once it returns, no new
// onResult call starts. It is safe to call repeatedly, including from onResult.
func (e *Engine) StartRealtimeValidation(ctx context.Context, target ObservableValidatable, onResult ResultHandler, params Params) (stop func(), err error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if onResult == nil {
		return nil, errors.Join(ErrConfiguration, errors.New("validation: nil realtime result handler"))
	}

	rules, err := Normalize(target.Validations())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &realtimeSession{
		engine:   e,
		target:   target,
		params:   params,
		onResult: onResult,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range rules {
		rule := rules[i]
		if !rule.Realtime {
			continue
		}

		d := newDebouncer(e.debounceFor(&rule), func() { s.run(rule) })
		s.debouncers = append(s.debouncers, d)
		for _, field := range rule.Fields {
			s.subs = append(s.subs, target.Observe(field, d.Trigger))
		}
	}

	e.logger.DebugContext(ctx, "realtime validation started",
		logger.Component("realtime"),
		"rules", len(s.debouncers),
		"observers", len(s.subs),
	)
	return s.stop, nil
}

type realtimeSession struct {
	engine   *Engine
	target   ObservableValidatable
	params   Params
	onResult ResultHandler
	ctx      context.Context
	cancel   context.CancelFunc

	subs       []Subscription
	debouncers []*debouncer
	once       sync.Once

	stopped atomic.Bool
	// deliverMu serializes onResult calls; delivering is set while one is running.
	deliverMu  sync.Mutex
	delivering atomic.Bool
}

func (s *realtimeSession) run(rule Rule) {
	if s.isStopped() {
		return
	}

	res, err := s.engine.run(s.ctx, s.target, []Rule{rule}, s.params)
	if err == nil && len(res.Result) == 0 {
		return
	}

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	// Results of runs overtaken by stop are dropped.
	if s.isStopped() {
		return
	}
	if err != nil {
		s.engine.logger.ErrorContext(s.ctx, "realtime validation failed",
			logger.Component("realtime"),
			logger.RuleID(rule.ID),
			logger.Fields(rule.Fields),
			logger.Error(err),
		)
	}

	s.delivering.Store(true)
	defer s.delivering.Store(false)
	s.onResult(res, err)
}

func (s *realtimeSession) isStopped() bool {
	return s.stopped.Load()
}

func (s *realtimeSession) stop() {
	s.once.Do(func() {
		s.stopped.Store(true)
		// Wait for a delivery that passed the stop check, unless stop runs inside it.
		if !s.delivering.Load() {
			s.deliverMu.Lock()
			s.deliverMu.Unlock()
		}

		for _, d := range s.debouncers {
			d.Stop()
		}
		for _, sub := range s.subs {
			s.target.Unobserve(sub)
		}
		s.cancel()

		s.engine.logger.DebugContext(context.Background(), "realtime validation stopped", logger.Component("realtime"))
	})
}
