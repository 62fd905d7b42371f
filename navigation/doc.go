// Package navigation implements the host side of client-side routing for
// environments without a browser: an in-memory session history that can be
// pushed to and walked back and forward, and link interception over parsed
// HTML documents.
//
// # History
//
// History keeps a list of entries and a cursor, like the browser session
// history:
//
//	h := navigation.NewHistory("/")
//	h.Push("/users/42?tab=posts")
//	h.Path()     // "/users/42"
//	h.RawQuery() // "tab=posts"
//	h.Back()     // notifies OnPop listeners
//
// Push never notifies listeners, Back, Forward and Go do. This mirrors the
// browser, where pushState does not fire popstate.
//
// # Links
//
// FindLink walks from a clicked node up to the nearest anchor element and
// returns its href when the anchor carries the interception attribute:
//
//	doc, _ := navigation.ParseDocument(r)
//	target := navigation.ClickTarget(doc, "avatar")
//	href, ok := navigation.FindLink(target, navigation.DefaultLinkAttr)
package navigation
