package validation

import (
	"strconv"
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into one trailing call of fn.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration, fn func()) *debouncer {
	return &debouncer{interval: interval, fn: fn}
}

// Trigger (re)starts the debounce window.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

// Stop cancels a pending call; later triggers are ignored.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// debounceFor returns the rule's debounce interval, falling back to the engine default.
func (e *Engine) debounceFor(rule *Rule) time.Duration {
	if d, ok := parseDebounce(rule.Config[RealtimeDebounceKey]); ok {
		return d
	}
	return e.debounce
}

func parseDebounce(v any) (time.Duration, bool) {
	var d time.Duration
	switch t := v.(type) {
	case time.Duration:
		d = t
	case int:
		d = time.Duration(t) * time.Millisecond
	case int64:
		d = time.Duration(t) * time.Millisecond
	case uint64:
		d = time.Duration(t) * time.Millisecond
	case float64:
		d = time.Duration(t * float64(time.Millisecond))
	case string:
		if ms, err := strconv.ParseFloat(t, 64); err == nil {
			d = time.Duration(ms * float64(time.Millisecond))
		} else if parsed, err := time.ParseDuration(t); err == nil {
			d = parsed
		} else {
			return 0, false
		}
	default:
		return 0, false
	}
	if d < 0 {
		return 0, false
	}
	return d, true
}
