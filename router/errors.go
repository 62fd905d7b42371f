package router

import "errors"

// ErrInvalidPattern is returned when a route template or one of its
// variable sub-patterns cannot be compiled. Registration fails fast and
// the route is not stored.
var ErrInvalidPattern = errors.New("invalid route pattern")

// ErrInvalidHandler is returned when a route is registered with an empty
// handler reference.
var ErrInvalidHandler = errors.New("invalid handler reference")

// ErrHandlerNotFound is returned when a named handler cannot be found in
// the registry at dispatch time. It aborts the current cycle.
var ErrHandlerNotFound = errors.New("handler is not registered")

// ErrInvalidPath is returned when the request path cannot be
// percent-decoded.
var ErrInvalidPath = errors.New("request path cannot be decoded")

// ErrNotBuildable is returned by Route.Build when the template contains
// raw matching fragments outside of variables.
var ErrNotBuildable = errors.New("route template cannot be built")

// ErrStopChain is returned by a handler to prevent the remaining handlers
// of the chain from running. It is not an error for the caller: the
// after-dispatch hooks still run and Execute returns nil.
var ErrStopChain = errors.New("stop handler chain")

// ErrPanic wraps a value recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")
