// Package router implements a client-side URI router for single-page
// applications: it maps URI templates to handler chains, resolves the
// current location against them and runs the chain of the winning route.
//
// The package has no browser dependency. The host supplies the current
// location and the navigation primitive through the Location, Navigator,
// Scroller and PopNotifier interfaces; package navigation provides an
// in-memory implementation and package browser binds them to the DOM.
//
// # Dispatcher
//
// Create a dispatcher and register handlers:
//
//	d := router.New(router.WithBasePath("/app"))
//	d.HandleFunc("/", HomeHandler)
//	d.HandleFunc("/users/{id([0-9]+)}", LoadUser, ShowUser)
//	d.Execute(ctx)
//
// Navigate pushes an address and executes it:
//
//	d.Navigate(ctx, "/app/users/42")
//
// # Templates
//
// Templates are matched against the whole request path, case-insensitively.
// The root template "/" is stored as "" and matches the bare site root.
//
// Variables are enclosed in curly braces. By default a variable matches one
// or more characters except '/':
//
//	/users/{id}
//
// A parenthesized sub-pattern right after the name replaces the default:
//
//	/users/{id([0-9]+)}
//	/files/{path(.+)}
//
// Text outside braces is passed to the matcher unchanged, so a template may
// carry raw fragments. Their groups take part in matching but are not
// collected as variables:
//
//	/(en|de)/{page}
//
// Variable names are lower-cased along with the template text; escaped
// characters and sub-pattern bodies keep their case.
//
// # Pattern Macros
//
// Common sub-patterns have names usable with the {name:macro} syntax:
//
//	uuid     - RFC 4122 UUID
//	int      - unsigned integer
//	float    - decimal number
//	slug     - URL-safe slug
//	alpha    - alphabetic characters
//	alphanum - alphanumeric characters
//	date     - ISO 8601 date
//	hex      - hexadecimal string
//
// An unknown macro fails registration.
//
// # Route Selection
//
// Every registered route is evaluated in registration order. By default the
// last matching route wins. WithSelection switches to SelectFirst or to
// SelectSpecific, which ranks literal segments above variables.
//
// # Handlers
//
// A chain holds direct handlers (Func) and named handlers (Named) looked up
// in the Registry when the chain runs:
//
//	d.Handle("layout", RenderLayout)
//	d.Route("/settings", router.Named("layout"), router.Func(ShowSettings))
//
// Every handler receives the cycle Context with the extracted variables and
// the dispatcher-wide Scope. Returning ErrStopChain halts the chain; any
// other error, including a named handler missing from the registry, aborts
// the cycle and is returned by Execute.
//
// # Gating and Hooks
//
// Disable keeps resolving routes but stops handlers from running until
// Enable is called. SkipHandlers and ForceHandlers override this for a
// single call.
//
// OnBeforeDispatch hooks may veto a chain by returning false.
// OnAfterDispatch hooks run once the chain ran to its end or was halted.
//
// # Middleware
//
// Middleware wraps every handler a chain runs:
//
//	d.Use(routerhandlers.Recovery(routerhandlers.RecoveryConfig{}))
package router
