package routerhandlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitalvas/navi/router"
)

// ErrInvalidTimeout is returned when TimeoutConfig.Duration is not greater
// than zero.
var ErrInvalidTimeout = errors.New("timeout: duration must be greater than zero")

// TimeoutConfig configures the Timeout middleware behaviour.
type TimeoutConfig struct {
	// Duration is the maximum time allowed for the handler to complete.
	// Must be greater than zero.
	Duration time.Duration
}

// Timeout returns a middleware that hands each handler a context that
// expires after the configured duration. When the handler returns after
// the deadline without an error of its own, the run fails with an error
// wrapping context.DeadlineExceeded.
//
// It returns ErrInvalidTimeout if Duration is not greater than zero.
func Timeout(cfg TimeoutConfig) (router.MiddlewareFunc, error) {
	if cfg.Duration <= 0 {
		return nil, ErrInvalidTimeout
	}

	duration := cfg.Duration

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), duration)
			defer cancel()

			if err := next(c.WithContext(ctx)); err != nil {
				return err
			}

			if err := ctx.Err(); errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("timeout: handler exceeded %s: %w", duration, err)
			}

			return nil
		}
	}, nil
}
