//go:build js && wasm

package browser

import (
	"context"
	"strings"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/vitalvas/navi/navigation"
	"github.com/vitalvas/navi/router"
)

// InterceptClicks turns plain left clicks on same-origin anchors carrying
// attr into dispatcher navigation. The nearest enclosing anchor decides.
// An empty attr means navigation.DefaultLinkAttr.
func InterceptClicks(ctx context.Context, d *router.Dispatcher, attr string, logger *zap.Logger) (cancel func()) {
	if attr == "" {
		attr = navigation.DefaultLinkAttr
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	win := js.Global()
	origin := win.Get("location").Get("origin").String()

	return listen(win.Get("document"), "click", func(ev js.Value) {
		if !plainClick(ev) {
			return
		}

		a := closestAnchor(ev.Get("target"))
		if a.IsNull() || !a.Call("hasAttribute", attr).Bool() || !a.Call("hasAttribute", "href").Bool() {
			return
		}
		if a.Get("origin").String() != origin {
			return
		}

		ev.Call("preventDefault")

		uri := a.Get("pathname").String() + a.Get("search").String()
		go func() {
			if _, err := d.Navigate(ctx, uri); err != nil {
				logger.Warn("link navigation failed", zap.String("uri", uri), zap.Error(err))
			}
		}()
	})
}

// plainClick reports an unmodified primary-button click nobody handled yet.
func plainClick(ev js.Value) bool {
	if ev.Get("defaultPrevented").Bool() || ev.Get("button").Int() != 0 {
		return false
	}
	for _, key := range []string{"ctrlKey", "metaKey", "shiftKey", "altKey"} {
		if ev.Get(key).Bool() {
			return false
		}
	}
	return true
}

// closestAnchor walks from n up through its ancestors and returns the first
// <a> element, or null.
func closestAnchor(n js.Value) js.Value {
	for !n.IsNull() && !n.IsUndefined() {
		if tag := n.Get("tagName"); tag.Type() == js.TypeString && strings.EqualFold(tag.String(), "a") {
			return n
		}
		n = n.Get("parentNode")
	}
	return js.Null()
}
