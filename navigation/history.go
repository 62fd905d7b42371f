package navigation

import (
	"fmt"
	"net/url"
	"sync"
)

// History is an in-memory session history. It is safe for concurrent use;
// pop listeners are called without holding the lock, so they may use the
// history themselves.
type History struct {
	mu        sync.Mutex
	entries   []*url.URL
	index     int
	listeners map[int]func()
	nextID    int
	scrolls   int
}

// NewHistory returns a history with a single entry. An unparsable initial
// address is replaced with "/".
func NewHistory(initial string) *History {
	u, err := url.Parse(initial)
	if err != nil || initial == "" {
		u = &url.URL{Path: "/"}
	}

	return &History{
		entries:   []*url.URL{u},
		listeners: make(map[int]func()),
	}
}

// Push adds uri after the current entry and drops every forward entry.
// Relative references are resolved against the current entry.
func (h *History) Push(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("navigation: invalid address %q: %w", uri, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	u = h.entries[h.index].ResolveReference(u)
	h.entries = append(h.entries[:h.index+1], u)
	h.index++

	return nil
}

// Replace swaps the current entry for uri.
func (h *History) Replace(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("navigation: invalid address %q: %w", uri, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[h.index] = h.entries[h.index].ResolveReference(u)

	return nil
}

// Back moves one entry back. It reports false at the first entry.
func (h *History) Back() bool {
	return h.Go(-1)
}

// Forward moves one entry forward. It reports false at the last entry.
func (h *History) Forward() bool {
	return h.Go(1)
}

// Go moves delta entries and notifies pop listeners. Moves outside the
// history are ignored and report false.
func (h *History) Go(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if delta == 0 || next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next

	listeners := make([]func(), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}

	return true
}

// OnPop registers fn to be called after Back, Forward and Go. Listeners
// run in registration order.
func (h *History) OnPop(fn func()) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Path returns the percent-encoded path of the current entry.
func (h *History) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].EscapedPath()
}

// RawQuery returns the query of the current entry without the '?'.
func (h *History) RawQuery() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].RawQuery
}

// URL returns the current entry.
func (h *History) URL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].String()
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Index returns the position of the current entry.
func (h *History) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// ScrollToTop records a scroll request.
func (h *History) ScrollToTop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrolls++
}

// Scrolls returns how many times ScrollToTop was called.
func (h *History) Scrolls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scrolls
}
