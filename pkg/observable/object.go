package observable

import (
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Object is a concurrency-safe property bag addressed by dot-separated paths.
// It notifies observers when a watched path, one of its parents or one of its
// children is set. It satisfies validation.ObservableValidatable.
type Object struct {
	mu        sync.RWMutex
	values    map[string]any
	observers map[validation.Subscription]observer
	nextID    validation.Subscription
	rules     []validation.Declaration
}

type observer struct {
	path string
	fn   func()
}

// Option configures an Object.
type Option func(*Object)

// WithValidations attaches the rule declarations returned by Validations.
func WithValidations(decls ...validation.Declaration) Option {
	return func(o *Object) {
		o.rules = append(o.rules, decls...)
	}
}

// New creates an object holding a deep copy of values.
func New(values map[string]any, opts ...Option) *Object {
	o := &Object{
		values:    deepCopy(values),
		observers: make(map[validation.Subscription]observer),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validations implements validation.Validatable.
func (o *Object) Validations() []validation.Declaration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.rules)
}

// Get returns the value stored at path, or nil when any segment is missing.
// Nested objects are returned as snapshots; later writes do not show through them.
func (o *Object) Get(path string) any {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var current any = o.values
	for part := range strings.SplitSeq(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = m[part]; !ok {
			return nil
		}
	}
	if m, ok := current.(map[string]any); ok {
		return deepCopy(m)
	}
	return current
}

// Set stores value at path, creating intermediate maps as needed, and notifies
// affected observers synchronously after the lock is released.
func (o *Object) Set(path string, value any) {
	if path == "" {
		return
	}

	o.mu.Lock()
	parts := strings.Split(path, ".")
	current := o.values
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	if m, ok := value.(map[string]any); ok {
		value = deepCopy(m)
	}
	current[parts[len(parts)-1]] = value

	var notify []func()
	for _, obs := range o.observers {
		if related(obs.path, path) {
			notify = append(notify, obs.fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// Observe registers fn to be called whenever path changes.
func (o *Object) Observe(path string, fn func()) validation.Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	o.observers[o.nextID] = observer{path: path, fn: fn}
	return o.nextID
}

// Unobserve removes an observer. Unknown subscriptions are ignored.
func (o *Object) Unobserve(sub validation.Subscription) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.observers, sub)
}

// Observers returns the number of registered observers.
func (o *Object) Observers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.observers)
}

// related reports whether a change at changed affects an observer of watched.
func related(watched, changed string) bool {
	return watched == changed ||
		strings.HasPrefix(watched, changed+".") ||
		strings.HasPrefix(changed, watched+".")
}

func deepCopy(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			v = deepCopy(m)
		}
		dst[k] = v
	}
	return dst
}
