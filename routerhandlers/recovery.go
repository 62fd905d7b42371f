package routerhandlers

import (
	"fmt"

	"github.com/vitalvas/navi/router"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the cycle context and the
	// recovered value when a panic occurs. When nil, no logging is performed.
	LogFunc func(c *router.Context, v any)
}

// Recovery returns a middleware that recovers from panics in downstream
// handlers and reports them as an error wrapping router.ErrPanic.
func Recovery(cfg RecoveryConfig) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) (err error) {
			defer func() {
				if v := recover(); v != nil {
					if cfg.LogFunc != nil {
						cfg.LogFunc(c, v)
					}

					err = fmt.Errorf("%w: %v", router.ErrPanic, v)
				}
			}()

			return next(c)
		}
	}
}
