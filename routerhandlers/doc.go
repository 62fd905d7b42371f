// Package routerhandlers provides middleware and ready-made handlers for
// router handler chains.
//
// # Recovery Middleware
//
// Recovery turns a panicking handler into an error wrapping
// router.ErrPanic, so the cycle fails instead of the whole application:
//
//	d.Use(routerhandlers.Recovery(routerhandlers.RecoveryConfig{
//	    LogFunc: func(c *router.Context, v any) { log.Println(c.Path, v) },
//	}))
//
// # Logging Middleware
//
// Logging writes one zap entry per handler run with the cycle ID, path,
// matched template and duration:
//
//	d.Use(routerhandlers.Logging(logger))
//
// # Timeout Middleware
//
// Timeout bounds the context handed to each handler. Handlers are run
// synchronously, so the deadline is cooperative: a handler that waits on
// c.Context() gives up when it expires and the cycle fails with
// context.DeadlineExceeded.
//
//	mw, err := routerhandlers.Timeout(routerhandlers.TimeoutConfig{Duration: time.Second})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.Use(mw)
//
// # Guard
//
// Guard returns a handler that stops the chain unless a predicate holds:
//
//	d.Route("/admin", router.Func(routerhandlers.Guard(isAdmin)), router.Named("admin"))
//
// # Redirect
//
// Redirect returns a handler that navigates elsewhere and stops the chain:
//
//	d.Route("/old/{id}", router.Func(routerhandlers.Redirect("/new")))
package routerhandlers
