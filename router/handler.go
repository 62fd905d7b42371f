package router

import (
	"fmt"
	"sort"
	"sync"
)

// HandlerFunc is a unit of application logic run for a matched route.
// Returning ErrStopChain halts the remaining handlers of the chain; any
// other error aborts the cycle and is returned to the caller.
type HandlerFunc func(c *Context) error

// MiddlewareFunc wraps a handler with additional behavior such as logging
// or panic recovery.
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// Middleware allows MiddlewareFunc to be applied explicitly.
func (mw MiddlewareFunc) Middleware(next HandlerFunc) HandlerFunc {
	return mw(next)
}

// HandlerRef references a handler either directly or by a name looked up
// in a Registry when the chain runs.
type HandlerRef struct {
	name string
	fn   HandlerFunc
}

// Func returns a reference to a direct handler.
func Func(fn HandlerFunc) HandlerRef {
	return HandlerRef{fn: fn}
}

// Named returns a reference to a handler resolved by name at dispatch time.
func Named(name string) HandlerRef {
	return HandlerRef{name: name}
}

// Funcs wraps several direct handlers.
func Funcs(fns ...HandlerFunc) []HandlerRef {
	refs := make([]HandlerRef, 0, len(fns))
	for _, fn := range fns {
		refs = append(refs, Func(fn))
	}
	return refs
}

// Names wraps several named handlers.
func Names(names ...string) []HandlerRef {
	refs := make([]HandlerRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, Named(name))
	}
	return refs
}

// IsNamed reports whether the reference is resolved by name.
func (h HandlerRef) IsNamed() bool {
	return h.fn == nil && h.name != ""
}

// Name returns the handler name for named references.
func (h HandlerRef) Name() string {
	return h.name
}

func (h HandlerRef) String() string {
	if h.IsNamed() {
		return fmt.Sprintf("%q", h.name)
	}
	return "func"
}

func (h HandlerRef) isZero() bool {
	return h.fn == nil && h.name == ""
}

// resolve returns the callable for the reference.
func (h HandlerRef) resolve(reg *Registry) (HandlerFunc, error) {
	if h.fn != nil {
		return h.fn, nil
	}
	if fn, ok := reg.Lookup(h.name); ok {
		return fn, nil
	}
	return nil, fmt.Errorf("router: handler %q: %w", h.name, ErrHandlerNotFound)
}

// Registry maps handler names to handlers for named references.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register stores fn under name, replacing any previous handler.
func (r *Registry) Register(name string, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
}

// Lookup returns the handler registered under name.
// A nil registry has no handlers.
func (r *Registry) Lookup(name string) (HandlerFunc, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[name]
	return fn, ok && fn != nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
