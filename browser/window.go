//go:build js && wasm

package browser

import (
	"errors"
	"strings"
	"sync"
	"syscall/js"
)

// ErrNoHistory is returned by Push when the page has no History API.
var ErrNoHistory = errors.New("browser: history API is not available")

// Window exposes window.location and window.history as the Location,
// Navigator, Scroller and PopNotifier of a dispatcher.
type Window struct {
	win js.Value
}

// NewWindow returns a Window bound to the global object.
func NewWindow() *Window {
	return &Window{win: js.Global()}
}

// Path returns location.pathname.
func (w *Window) Path() string {
	return w.win.Get("location").Get("pathname").String()
}

// RawQuery returns location.search without the leading '?'.
func (w *Window) RawQuery() string {
	return strings.TrimPrefix(w.win.Get("location").Get("search").String(), "?")
}

// Origin returns location.origin.
func (w *Window) Origin() string {
	return w.win.Get("location").Get("origin").String()
}

// Push adds uri to the session history without loading it.
func (w *Window) Push(uri string) error {
	history := w.win.Get("history")
	if history.IsUndefined() || history.Get("pushState").IsUndefined() {
		return ErrNoHistory
	}

	history.Call("pushState", js.Null(), "", uri)
	return nil
}

// ScrollToTop scrolls the viewport to the origin.
func (w *Window) ScrollToTop() {
	w.win.Call("scrollTo", 0, 0)
}

// OnPop calls fn on every popstate event. fn runs on its own goroutine so
// it may block.
func (w *Window) OnPop(fn func()) (cancel func()) {
	return listen(w.win, "popstate", func(js.Value) {
		go fn()
	})
}

// listen adds an event listener to target and returns a function that
// removes it and releases the callback.
func listen(target js.Value, event string, fn func(ev js.Value)) (cancel func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb)
			cb.Release()
		})
	}
}
