package navigation

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultLinkAttr is the attribute that flags an anchor for in-page
// navigation.
const DefaultLinkAttr = "data-navi"

// ParseDocument parses an HTML document.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("navigation: parse document: %w", err)
	}
	return doc, nil
}

// FindLink returns the href of the anchor a click on n would follow when
// that anchor carries attr. The click may land on the anchor itself or on
// any of its descendants; the nearest enclosing anchor decides.
func FindLink(n *html.Node, attr string) (string, bool) {
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode || n.DataAtom != atom.A {
			continue
		}

		href, hasHref := attrValue(n, "href")
		if _, flagged := attrValue(n, attr); !hasHref || !flagged {
			return "", false
		}
		return href, true
	}

	return "", false
}

// ClickTarget returns the element with the given id, or nil.
func ClickTarget(doc *html.Node, id string) *html.Node {
	var found *html.Node

	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attrValue(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})

	return found
}

// Links returns the href of every anchor in doc carrying attr, in document
// order.
func Links(doc *html.Node, attr string) []string {
	var links []string

	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			href, hasHref := attrValue(n, "href")
			if _, flagged := attrValue(n, attr); hasHref && flagged {
				links = append(links, href)
			}
		}
		return true
	})

	return links
}

// walk visits n and its descendants depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
