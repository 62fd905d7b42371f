package router

import (
	"context"
	"sort"
	"sync"
)

// Vars holds path variables extracted from the request path, keyed by
// the lower-cased variable name.
type Vars map[string]string

// Get returns the value of a variable and whether it exists.
func (v Vars) Get(name string) (string, bool) {
	val, ok := v[name]
	return val, ok
}

// Scope is a key/value store owned by a Dispatcher and passed by
// reference to every handler it runs, so handlers of a chain (and of later
// cycles) can share state. It is safe for concurrent use.
type Scope struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (s *Scope) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *Scope) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes key.
func (s *Scope) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Keys returns the stored keys in sorted order.
func (s *Scope) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Outcome describes how a dispatch cycle ended.
type Outcome int

const (
	// OutcomeNoMatch means no route matched the request path.
	OutcomeNoMatch Outcome = iota
	// OutcomeGated means a route matched but handlers were disabled.
	OutcomeGated
	// OutcomeVetoed means a before-dispatch hook cancelled the chain.
	OutcomeVetoed
	// OutcomeCompleted means every handler of the chain ran.
	OutcomeCompleted
	// OutcomeHalted means a handler returned ErrStopChain.
	OutcomeHalted
	// OutcomeFailed means a handler failed or could not be resolved.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeGated:
		return "gated"
	case OutcomeVetoed:
		return "vetoed"
	case OutcomeCompleted:
		return "completed"
	case OutcomeHalted:
		return "halted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Context is the state of a single dispatch cycle. A new Context is built
// for every cycle and handed to its handlers, so a handler that navigates
// again starts a nested cycle with its own Context and cannot change the
// path or variables observed by the rest of the outer chain.
type Context struct {
	// ID uniquely identifies the cycle.
	ID string
	// Path is the normalized request path the cycle resolved.
	Path string
	// PreviousPath is the path recorded by the last Navigate call.
	PreviousPath string
	// Route is the winning route, nil when nothing matched.
	Route *Route
	// Vars holds the variables extracted for Route. It is never nil.
	Vars Vars
	// Scope is the dispatcher-wide scope.
	Scope *Scope
	// Outcome is set once the cycle ends.
	Outcome Outcome

	ctx        context.Context
	dispatcher *Dispatcher
}

// Context returns the context.Context the cycle was started with.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// WithContext returns a shallow copy of c carrying ctx. Vars and Scope are
// shared with c.
func (c *Context) WithContext(ctx context.Context) *Context {
	c2 := *c
	c2.ctx = ctx
	return &c2
}

// Matched reports whether a route matched the request path.
func (c *Context) Matched() bool {
	return c.Route != nil
}

// Var returns a single path variable, or "" when it is not set.
func (c *Context) Var(name string) string {
	return c.Vars[name]
}

// Dispatcher returns the dispatcher running the cycle.
func (c *Context) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Navigate starts a nested cycle for uri on the same dispatcher.
func (c *Context) Navigate(uri string, opts ...ExecuteOption) (*Context, error) {
	return c.dispatcher.Navigate(c.Context(), uri, opts...)
}
