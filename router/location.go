package router

// Location provides the current address of the host.
type Location interface {
	// Path returns the path component, possibly percent-encoded.
	Path() string
	// RawQuery returns the query component without the leading '?'.
	RawQuery() string
}

// Navigator pushes a new address without reloading the page.
type Navigator interface {
	Push(uri string) error
}

// History is both a Location and a Navigator.
type History interface {
	Location
	Navigator
}

// Scroller scrolls the viewport back to the top.
type Scroller interface {
	ScrollToTop()
}

// PopNotifier announces back/forward navigation performed by the user.
type PopNotifier interface {
	// OnPop registers fn and returns a function that removes it.
	OnPop(fn func()) (cancel func())
}

// PathFunc adapts a function returning the request path to a Location
// with an empty query.
type PathFunc func() string

// Path calls f.
func (f PathFunc) Path() string {
	return f()
}

// RawQuery returns "".
func (f PathFunc) RawQuery() string {
	return ""
}
