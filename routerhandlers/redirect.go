package routerhandlers

import (
	"fmt"

	"github.com/vitalvas/navi/router"
)

// Redirect returns a handler that navigates to target and stops the rest
// of the current chain. The target runs as a nested cycle with its own
// context.
func Redirect(target string) router.HandlerFunc {
	return func(c *router.Context) error {
		if _, err := c.Navigate(target); err != nil {
			return fmt.Errorf("redirect to %q: %w", target, err)
		}
		return router.ErrStopChain
	}
}

// RedirectRoute returns a handler that builds the target from a route
// template, filling its variables from the current cycle. The dispatcher
// base path is prepended to the built path.
func RedirectRoute(tpl string) router.HandlerFunc {
	return func(c *router.Context) error {
		route := c.Dispatcher().Table().Get(tpl)
		if route == nil {
			return fmt.Errorf("redirect: route %q is not registered", tpl)
		}

		pairs := make([]string, 0, 2*len(c.Vars))
		for _, name := range route.VarNames() {
			pairs = append(pairs, name, c.Var(name))
		}

		target, err := route.Build(pairs...)
		if err != nil {
			return fmt.Errorf("redirect: %w", err)
		}

		if target == "/" && c.Dispatcher().BasePath() != "" {
			target = ""
		}

		return Redirect(c.Dispatcher().BasePath() + target)(c)
	}
}
