package router

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBasePath sets a prefix stripped from every request path before
// matching, e.g. "/app" for an application served below /app.
func WithBasePath(prefix string) Option {
	return func(d *Dispatcher) {
		d.basePath = prefix
	}
}

// WithLocation overrides the source of the current request path.
func WithLocation(l Location) Option {
	return func(d *Dispatcher) {
		d.location = l
	}
}

// WithNavigator overrides the primitive used by Navigate.
func WithNavigator(n Navigator) Option {
	return func(d *Dispatcher) {
		d.navigator = n
	}
}

// WithHistory sets both the Location and the Navigator. When h can also
// scroll, it becomes the Scroller.
func WithHistory(h History) Option {
	return func(d *Dispatcher) {
		d.location = h
		d.navigator = h
		if s, ok := h.(Scroller); ok {
			d.scroller = s
		}
	}
}

// WithScroller sets the Scroller used by Reload.
func WithScroller(s Scroller) Option {
	return func(d *Dispatcher) {
		d.scroller = s
	}
}

// WithScrollOnReload makes Reload scroll to the top after re-executing.
func WithScrollOnReload(value bool) Option {
	return func(d *Dispatcher) {
		d.scrollOnReload = value
	}
}

// WithRegistry sets the registry used to resolve named handlers.
func WithRegistry(reg *Registry) Option {
	return func(d *Dispatcher) {
		d.registry = reg
	}
}

// WithTable makes the dispatcher use an existing route table.
func WithTable(t *Table) Option {
	return func(d *Dispatcher) {
		d.table = t
	}
}

// WithStrictSlash makes trailing slashes optional for routes registered
// through the dispatcher.
func WithStrictSlash(value bool) Option {
	return func(d *Dispatcher) {
		d.strictSlash = value
	}
}

// WithSelection sets the policy used when several routes match.
func WithSelection(mode SelectionMode) Option {
	return func(d *Dispatcher) {
		d.selection = mode
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithIDGenerator overrides how cycle IDs are generated.
// Defaults to GenerateUUIDv7.
func WithIDGenerator(fn func() string) Option {
	return func(d *Dispatcher) {
		d.newID = fn
	}
}

// WithScope sets the scope shared by all handlers.
func WithScope(s *Scope) Option {
	return func(d *Dispatcher) {
		d.scope = s
	}
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// See RFC 9562, section 5.4.
func GenerateUUIDv4() string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. IDs of later cycles sort
// after earlier ones.
//
// See RFC 9562, section 5.7.
func GenerateUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// gate is the tri-state handler switch of a single cycle.
type gate int

const (
	gateDefault gate = iota
	gateSkip
	gateForce
)

// executeConfig holds per-call options of Execute and Navigate.
type executeConfig struct {
	gate gate
}

// ExecuteOption configures a single Execute or Navigate call.
type ExecuteOption func(*executeConfig)

// SkipHandlers resolves the route but does not run its handlers,
// regardless of Enable/Disable.
func SkipHandlers() ExecuteOption {
	return func(c *executeConfig) {
		c.gate = gateSkip
	}
}

// ForceHandlers runs the handlers even when the dispatcher is disabled.
func ForceHandlers() ExecuteOption {
	return func(c *executeConfig) {
		c.gate = gateForce
	}
}

func newExecuteConfig(opts []ExecuteOption) executeConfig {
	var cfg executeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
