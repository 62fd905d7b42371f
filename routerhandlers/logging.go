package routerhandlers

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vitalvas/navi/router"
)

// Logging returns a middleware that logs every handler run. Runs that stop
// the chain are logged at debug level, failures at error level.
func Logging(logger *zap.Logger) router.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("cycle", c.ID),
				zap.String("path", c.Path),
				zap.Duration("duration", time.Since(start)),
			}
			if c.Route != nil {
				fields = append(fields, zap.String("pattern", c.Route.Pattern()))
			}

			switch {
			case err == nil:
				logger.Info("handler completed", fields...)
			case errors.Is(err, router.ErrStopChain):
				logger.Debug("handler stopped chain", fields...)
			default:
				logger.Error("handler failed", append(fields, zap.Error(err))...)
			}

			return err
		}
	}
}
