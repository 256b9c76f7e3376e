package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// Validate runs every rule declared by target and aggregates the outcome.
// A pass either resolves with a complete result or fails with the first error raised
// by a rule declaration, a validator or a runIf gate; partial results are never returned.
func (e *Engine) Validate(ctx context.Context, target Validatable, params Params) (*ObjectResult, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	return e.ValidateRules(ctx, target, target.Validations(), params)
}

// ValidateRules validates target against an explicit rule set.
func (e *Engine) ValidateRules(ctx context.Context, target Target, decls []Declaration, params Params) (*ObjectResult, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	rules, err := Normalize(decls)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, target, rules, params)
}

// completion reports a finished rule back to the pass loop.
type completion struct {
	rule   *Rule
	result FieldResult
	err    error
}

// pass holds the state of one validation pass. It is owned by the goroutine running
// the pass loop; asynchronous rules only talk to it through the done channel.
type pass struct {
	engine *Engine
	target Target
	params Params
	log    *slog.Logger

	pending   []*Rule
	running   int
	queue     []completion
	done      chan completion
	completed []FieldResult
	deps      map[string]bool
}

func (e *Engine) run(ctx context.Context, target Target, rules []Rule, params Params) (*ObjectResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	started := time.Now()
	p := &pass{
		engine:    e,
		target:    target,
		params:    params,
		log:       e.logger.With(logger.PassID(uuid.NewString())),
		done:      make(chan completion, len(rules)),
		completed: make([]FieldResult, 0, len(rules)),
		deps:      make(map[string]bool),
	}

	for i := range rules {
		rule := &rules[i]
		if !p.ready(rule) {
			p.pending = append(p.pending, rule)
			continue
		}
		if err := p.dispatch(ctx, rule); err != nil {
			return nil, p.fail(ctx, rule, err)
		}
	}

	for p.running > 0 {
		var c completion
		if len(p.queue) > 0 {
			c, p.queue = p.queue[0], p.queue[1:]
		} else {
			select {
			case c = <-p.done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		p.running--

		if err := p.complete(ctx, c); err != nil {
			return nil, p.fail(ctx, c.rule, err)
		}
	}

	if len(p.pending) > 0 {
		p.log.DebugContext(ctx, "rules blocked by unmet dependencies", "count", len(p.pending))
	}

	result := &ObjectResult{
		Valid:  true,
		Target: target,
		Result: p.completed,
	}
	for _, res := range p.completed {
		if !res.Valid() {
			result.Valid = false
			break
		}
	}

	p.log.DebugContext(ctx, "validation pass finished",
		slog.Bool("valid", result.Valid),
		slog.Int("results", len(result.Result)),
		logger.Duration(time.Since(started)),
	)
	return result, nil
}

// ready reports whether every dependency of rule completed and passed.
func (p *pass) ready(rule *Rule) bool {
	for _, id := range rule.DependsOn {
		if !p.deps[id] {
			return false
		}
	}
	return true
}

// dispatch resolves, gates and starts a rule. Synchronous rules run inline and are
// queued as completed; rules with asynchronous validators run on their own goroutine.
// Resolution precedes the gate, so misconfigured rules fail even when gated out.
func (p *pass) dispatch(ctx context.Context, rule *Rule) error {
	params, err := mergeParams(p.params, rule.Params)
	if err != nil {
		return err
	}

	exec, err := p.engine.prepare(rule, p.target, params)
	if err != nil {
		return err
	}

	ok, err := rule.RunIf.evaluate(p.target, exec.gateConfig(), params)
	if err != nil {
		return err
	}
	if !ok {
		p.log.DebugContext(ctx, "rule skipped by runIf", logger.RuleID(rule.ID), logger.Fields(rule.Fields))
		return nil
	}

	p.running++
	if !exec.async() {
		res, err := exec.run(ctx)
		p.queue = append(p.queue, completion{rule: rule, result: res, err: err})
		return nil
	}

	go func() {
		res, err := exec.run(ctx)
		p.done <- completion{rule: rule, result: res, err: err}
	}()
	return nil
}

// complete records a finished rule and dispatches rules it unblocked.
func (p *pass) complete(ctx context.Context, c completion) error {
	if c.err != nil {
		return c.err
	}

	p.completed = append(p.completed, c.result)

	if id := c.rule.ID; id != "" {
		if _, exists := p.deps[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleID, id)
		}
		p.deps[id] = c.result.Valid()
	}

	var unblocked []*Rule
	remaining := p.pending[:0]
	for _, rule := range p.pending {
		if p.ready(rule) {
			unblocked = append(unblocked, rule)
		} else {
			remaining = append(remaining, rule)
		}
	}
	p.pending = remaining

	for _, rule := range unblocked {
		if err := p.dispatch(ctx, rule); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) fail(ctx context.Context, rule *Rule, err error) error {
	p.log.DebugContext(ctx, "validation pass aborted",
		logger.RuleID(rule.ID),
		logger.Fields(rule.Fields),
		logger.Error(err),
	)
	return err
}
