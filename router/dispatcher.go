package router

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/vitalvas/navi/navigation"
)

// State is the phase a Dispatcher is in.
type State int

const (
	// StateIdle means no cycle is running.
	StateIdle State = iota
	// StateResolving means a cycle is matching the request path.
	StateResolving
	// StateDispatching means a cycle is running its handler chain.
	StateDispatching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateDispatching:
		return "dispatching"
	default:
		return "unknown"
	}
}

// Dispatcher resolves the current location against its route table and
// runs the handler chain of the winning route.
//
//	d := router.New(router.WithBasePath("/app"))
//	d.HandleFunc("/users/{id:int}", showUser)
//	d.Navigate(ctx, "/app/users/42")
type Dispatcher struct {
	table     *Table
	registry  *Registry
	location  Location
	navigator Navigator
	scroller  Scroller
	logger    *zap.Logger
	scope     *Scope
	newID     func() string

	basePath       string
	selection      SelectionMode
	strictSlash    bool
	scrollOnReload bool

	mu          sync.Mutex
	disabled    bool
	state       State
	current     string
	previous    string
	vars        Vars
	before      []BeforeDispatchFunc
	after       []AfterDispatchFunc
	middlewares []MiddlewareFunc
}

// New returns a dispatcher. Without WithHistory, WithLocation or
// WithNavigator it keeps an in-memory history starting at "/".
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		vars: Vars{},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.location == nil || d.navigator == nil {
		h := navigation.NewHistory("/")
		if d.location == nil {
			d.location = h
		}
		if d.navigator == nil {
			d.navigator = h
		}
		if d.scroller == nil {
			d.scroller = h
		}
	}
	if d.table == nil {
		d.table = NewTable()
	}
	if d.strictSlash {
		d.table.StrictSlash(true)
	}
	if d.registry == nil {
		d.registry = NewRegistry()
	}
	if d.scope == nil {
		d.scope = NewScope()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.newID == nil {
		d.newID = GenerateUUIDv7
	}
	if d.selection == "" {
		d.selection = SelectLast
	}

	return d
}

// --- Registration ---

// Route registers handlers for a template. See Table.Register.
func (d *Dispatcher) Route(tpl string, handlers ...HandlerRef) error {
	return d.table.Register(tpl, handlers...)
}

// RouteAll registers the same handlers for every template.
func (d *Dispatcher) RouteAll(templates []string, handlers ...HandlerRef) error {
	return d.table.RegisterAll(templates, handlers...)
}

// HandleFunc registers direct handlers for a template.
func (d *Dispatcher) HandleFunc(tpl string, fns ...HandlerFunc) error {
	return d.table.Register(tpl, Funcs(fns...)...)
}

// Handle registers a named handler in the registry.
func (d *Dispatcher) Handle(name string, fn HandlerFunc) {
	d.registry.Register(name, fn)
}

// Use appends middleware applied to every handler the chain runs.
func (d *Dispatcher) Use(mwf ...MiddlewareFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.middlewares = append(d.middlewares, mwf...)
}

// Table returns the route table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Registry returns the registry used for named handlers.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Scope returns the scope shared by all handlers.
func (d *Dispatcher) Scope() *Scope {
	return d.scope
}

// BasePath returns the prefix stripped from request paths.
func (d *Dispatcher) BasePath() string {
	return d.basePath
}

// Routes returns the registered routes in matching order.
func (d *Dispatcher) Routes() []*Route {
	return d.table.Routes()
}

// All returns every template with its handler chain.
func (d *Dispatcher) All() map[string][]HandlerRef {
	return d.table.All()
}

// --- Execution ---

// Execute resolves the current location and, unless handlers are gated
// off, runs the handler chain of the winning route. Without options the
// Enable/Disable state decides; SkipHandlers and ForceHandlers override it
// for this call.
//
// Finding no route, a closed gate and a vetoed chain are not errors; the
// returned Context reports them in Outcome.
func (d *Dispatcher) Execute(ctx context.Context, opts ...ExecuteOption) (*Context, error) {
	cfg := newExecuteConfig(opts)

	restore := d.enter(StateResolving)
	defer restore()

	c, err := d.resolve(ctx, d.location.Path())
	if err != nil {
		return nil, err
	}

	return c, d.dispatch(c, cfg)
}

// Navigate records the current path as the previous path, pushes uri to
// the navigator and executes it.
func (d *Dispatcher) Navigate(ctx context.Context, uri string, opts ...ExecuteOption) (*Context, error) {
	d.mu.Lock()
	d.previous = d.current
	d.mu.Unlock()

	if err := d.navigator.Push(uri); err != nil {
		return nil, fmt.Errorf("router: navigate to %q: %w", uri, err)
	}

	return d.Execute(ctx, opts...)
}

// Reload executes the current location again. With WithScrollOnReload it
// then scrolls to the top.
func (d *Dispatcher) Reload(ctx context.Context) (*Context, error) {
	c, err := d.Execute(ctx)
	if err != nil {
		return c, err
	}

	if d.scrollOnReload && d.scroller != nil {
		d.scroller.ScrollToTop()
	}

	return c, nil
}

// Listen executes the current location on every back/forward notification
// until the returned function is called. Failed cycles are logged.
// The previous path is not changed by these cycles.
func (d *Dispatcher) Listen(ctx context.Context, n PopNotifier) (cancel func()) {
	return n.OnPop(func() {
		if _, err := d.Execute(ctx); err != nil {
			d.logger.Warn("pop navigation failed", zap.Error(err))
		}
	})
}

// Match resolves a raw request path without running handlers or touching
// dispatcher state. It returns a nil route when nothing matches.
func (d *Dispatcher) Match(rawPath string) (*Route, Vars, error) {
	path, err := d.normalize(rawPath)
	if err != nil {
		return nil, nil, err
	}
	route, vars := d.match(path)
	return route, vars, nil
}

// Enable lets the next cycles run their handlers.
func (d *Dispatcher) Enable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled = false
}

// Disable stops the next cycles from running handlers. Routes are still
// resolved and PathVariables still reflects the matched route.
func (d *Dispatcher) Disable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled = true
}

// Enabled reports whether handlers run by default.
func (d *Dispatcher) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.disabled
}

// --- Introspection ---

// CurrentPath returns the normalized path of the last resolved cycle.
func (d *Dispatcher) CurrentPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// PreviousPath returns the path that was current when Navigate was last
// called. Back/forward navigation does not change it.
func (d *Dispatcher) PreviousPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.previous
}

// PathVariables returns a copy of the variables of the last resolved cycle.
func (d *Dispatcher) PathVariables() Vars {
	d.mu.Lock()
	defer d.mu.Unlock()
	return maps.Clone(d.vars)
}

// State returns the phase of the innermost running cycle.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// QueryParams returns the decoded query parameters of the current location.
func (d *Dispatcher) QueryParams() map[string]string {
	return ParseQuery(d.location.RawQuery())
}

// QueryParam returns a single query parameter of the current location.
func (d *Dispatcher) QueryParam(name string) (string, bool) {
	v, ok := d.QueryParams()[name]
	return v, ok
}

// --- internals ---

// enter switches to state and returns a function restoring the state that
// was active before, so a nested cycle hands control back to its parent.
func (d *Dispatcher) enter(state State) func() {
	d.mu.Lock()
	prev := d.state
	d.state = state
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		d.state = prev
		d.mu.Unlock()
	}
}

func (d *Dispatcher) setState(state State) {
	d.mu.Lock()
	d.state = state
	d.mu.Unlock()
}

// normalize percent-decodes a raw request path, strips the base path and
// maps the root "/" to "".
func (d *Dispatcher) normalize(raw string) (string, error) {
	path, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("router: %q: %w: %v", raw, ErrInvalidPath, err)
	}

	if d.basePath != "" {
		path = strings.TrimPrefix(path, d.basePath)
	}

	if path == "/" {
		path = ""
	}

	return path, nil
}

// match evaluates every route against path according to the selection
// mode.
func (d *Dispatcher) match(path string) (*Route, Vars) {
	var (
		winner *Route
		vars   Vars
	)

	for _, route := range d.table.Routes() {
		v, ok := route.pattern.match(path)
		if !ok {
			continue
		}

		switch d.selection {
		case SelectFirst:
			return route, v
		case SelectSpecific:
			if winner != nil && compareSpecificity(route.pattern.specificity, winner.pattern.specificity) < 0 {
				continue
			}
		}

		winner, vars = route, v
	}

	if vars == nil {
		vars = Vars{}
	}

	return winner, vars
}

// resolve builds the Context of a new cycle and publishes its path and
// variables for the accessors.
func (d *Dispatcher) resolve(ctx context.Context, raw string) (*Context, error) {
	d.mu.Lock()
	d.vars = Vars{}
	d.mu.Unlock()

	path, err := d.normalize(raw)
	if err != nil {
		return nil, err
	}

	route, vars := d.match(path)

	d.mu.Lock()
	d.current = path
	d.vars = vars
	previous := d.previous
	d.mu.Unlock()

	c := &Context{
		ID:           d.newID(),
		Path:         path,
		PreviousPath: previous,
		Route:        route,
		Vars:         maps.Clone(vars),
		Scope:        d.scope,
		ctx:          ctx,
		dispatcher:   d,
	}

	if route == nil {
		d.logger.Debug("no route matched", zap.String("cycle", c.ID), zap.String("path", path))
	} else {
		d.logger.Debug("route matched",
			zap.String("cycle", c.ID),
			zap.String("path", path),
			zap.String("pattern", route.Pattern()),
			zap.Int("vars", len(vars)),
		)
	}

	return c, nil
}

// gateOpen applies the tri-state gate of a single call.
func (d *Dispatcher) gateOpen(g gate) bool {
	switch g {
	case gateSkip:
		return false
	case gateForce:
		return true
	default:
		return d.Enabled()
	}
}

// dispatch runs the chain of the winning route.
func (d *Dispatcher) dispatch(c *Context, cfg executeConfig) error {
	if c.Route == nil {
		c.Outcome = OutcomeNoMatch
		return nil
	}

	if !d.gateOpen(cfg.gate) {
		c.Outcome = OutcomeGated
		d.logger.Debug("handlers disabled", zap.String("cycle", c.ID), zap.String("path", c.Path))
		return nil
	}

	chain := c.Route.Handlers()

	d.mu.Lock()
	before := append([]BeforeDispatchFunc(nil), d.before...)
	after := append([]AfterDispatchFunc(nil), d.after...)
	middlewares := append([]MiddlewareFunc(nil), d.middlewares...)
	d.mu.Unlock()

	for _, fn := range before {
		if !fn(c, chain) {
			c.Outcome = OutcomeVetoed
			d.logger.Debug("dispatch vetoed", zap.String("cycle", c.ID), zap.String("path", c.Path))
			return nil
		}
	}

	d.setState(StateDispatching)

	c.Outcome = OutcomeCompleted

	for i, ref := range chain {
		fn, err := ref.resolve(d.registry)
		if err != nil {
			c.Outcome = OutcomeFailed
			d.logger.Warn("handler lookup failed", zap.String("cycle", c.ID), zap.Stringer("handler", ref), zap.Error(err))
			return err
		}

		err = applyMiddleware(fn, middlewares)(c)
		if err == nil {
			continue
		}

		if errors.Is(err, ErrStopChain) {
			c.Outcome = OutcomeHalted
			d.logger.Debug("handler chain stopped",
				zap.String("cycle", c.ID),
				zap.Int("handler", i),
				zap.Int("skipped", len(chain)-i-1),
			)
			break
		}

		c.Outcome = OutcomeFailed
		d.logger.Warn("handler failed", zap.String("cycle", c.ID), zap.Stringer("handler", ref), zap.Error(err))
		return fmt.Errorf("router: handler %d (%s) for %q: %w", i, ref, c.Path, err)
	}

	for _, fn := range after {
		fn(c)
	}

	return nil
}

// applyMiddleware wraps the handler with all registered middleware, the
// first registered being the outermost.
func applyMiddleware(handler HandlerFunc, middlewares []MiddlewareFunc) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i].Middleware(handler)
	}
	return handler
}
