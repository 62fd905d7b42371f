package routerhandlers

import "github.com/vitalvas/navi/router"

// Guard returns a handler that lets the chain continue only when allow
// reports true.
func Guard(allow func(c *router.Context) bool) router.HandlerFunc {
	return func(c *router.Context) error {
		if allow(c) {
			return nil
		}
		return router.ErrStopChain
	}
}

// RequireVar returns a guard that stops the chain unless the path variable
// is present and non-empty.
func RequireVar(name string) router.HandlerFunc {
	return Guard(func(c *router.Context) bool {
		return c.Var(name) != ""
	})
}
