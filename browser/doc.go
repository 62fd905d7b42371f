// Package browser binds a dispatcher to the DOM of the page it runs in.
// It is only built for GOOS=js GOARCH=wasm.
//
//	w := browser.NewWindow()
//	d := router.New(router.WithHistory(w))
//	defer d.Listen(ctx, w)()
//	defer browser.InterceptClicks(ctx, d, navigation.DefaultLinkAttr, logger)()
//	d.Execute(ctx)
package browser
