package router

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Route pairs a compiled template with its handler chain.
type Route struct {
	pattern *routePattern
	chain   []HandlerRef
}

// Pattern returns the normalized template, e.g. "/users/{id}".
// The site root is "".
func (r *Route) Pattern() string {
	return r.pattern.template
}

// Handlers returns a copy of the handler chain.
func (r *Route) Handlers() []HandlerRef {
	chain := make([]HandlerRef, len(r.chain))
	copy(chain, r.chain)
	return chain
}

// VarNames returns the variable names in declaration order.
func (r *Route) VarNames() []string {
	names := make([]string, len(r.pattern.varsN))
	copy(names, r.pattern.varsN)
	return names
}

// Regexp returns the compiled matcher expression.
func (r *Route) Regexp() string {
	return r.pattern.regexp.String()
}

// Match reports whether the normalized path matches the route and returns
// the extracted variables.
func (r *Route) Match(path string) (Vars, bool) {
	return r.pattern.match(path)
}

// Build returns a path for the route with the given variable values, given
// as key/value pairs:
//
//	path, err := route.Build("id", "42")
//
// Values must satisfy the variable sub-patterns. Templates with raw
// fragments outside variables return ErrNotBuildable.
func (r *Route) Build(pairs ...string) (string, error) {
	values, err := mapFromPairs(pairs...)
	if err != nil {
		return "", err
	}
	return r.pattern.build(values)
}

// Table maps normalized templates to handler chains. Routes are matched
// in registration order; re-registering a template replaces its chain but
// keeps its position. It is safe for concurrent use.
type Table struct {
	mu          sync.RWMutex
	order       []string
	routes      map[string]*Route
	strictSlash bool
}

// NewTable returns an empty route table.
func NewTable() *Table {
	return &Table{
		routes: make(map[string]*Route),
	}
}

// StrictSlash makes a trailing slash optional for routes registered
// afterwards: "/users/" then also matches "/users" and vice versa.
func (t *Table) StrictSlash(value bool) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.strictSlash = value
	return t
}

// Register stores handlers for the template. Registering without handlers
// is a no-op. The last registration of an identical normalized template
// wins; chains are not merged.
func (t *Table) Register(tpl string, handlers ...HandlerRef) error {
	if len(handlers) == 0 {
		return nil
	}

	for i, h := range handlers {
		if h.isZero() {
			return fmt.Errorf("router: handler %d for %q: %w", i, tpl, ErrInvalidHandler)
		}
	}

	toks, template, err := parsePattern(tpl)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := newRoutePattern(template, toks, patternOptions{strictSlash: t.strictSlash})
	if err != nil {
		return err
	}

	chain := make([]HandlerRef, len(handlers))
	copy(chain, handlers)

	if _, ok := t.routes[template]; !ok {
		t.order = append(t.order, template)
	}
	t.routes[template] = &Route{pattern: p, chain: chain}

	return nil
}

// RegisterAll registers every template with the same handlers. Failing
// templates do not prevent the others from being stored; their errors are
// combined.
func (t *Table) RegisterAll(templates []string, handlers ...HandlerRef) error {
	var errs error
	for _, tpl := range templates {
		errs = multierr.Append(errs, t.Register(tpl, handlers...))
	}
	return errs
}

// Get returns the route registered for a template, normalizing it first.
func (t *Table) Get(tpl string) *Route {
	_, template, err := parsePattern(tpl)
	if err != nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.routes[template]
}

// Routes returns the routes in matching order.
func (t *Table) Routes() []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	routes := make([]*Route, 0, len(t.order))
	for _, tpl := range t.order {
		routes = append(routes, t.routes[tpl])
	}
	return routes
}

// All returns every template with its handler chain.
func (t *Table) All() map[string][]HandlerRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	all := make(map[string][]HandlerRef, len(t.routes))
	for tpl, r := range t.routes {
		all[tpl] = r.Handlers()
	}
	return all
}

// Len returns the number of registered templates.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// mapFromPairs converts variadic key/value strings to a map.
func mapFromPairs(pairs ...string) (map[string]string, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("router: number of parameters must be multiple of 2, got %v", pairs)
	}
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m, nil
}
