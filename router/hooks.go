package router

// BeforeDispatchFunc is called after a route matched and the gate is open,
// before the first handler runs. Returning false vetoes the chain: no
// handler runs and the after-dispatch hooks are not called.
type BeforeDispatchFunc func(c *Context, chain []HandlerRef) bool

// AfterDispatchFunc is called once the chain ends, whether every handler
// ran or one of them returned ErrStopChain. It is not called when the
// chain failed.
type AfterDispatchFunc func(c *Context)

// OnBeforeDispatch registers a hook called before every chain.
func (d *Dispatcher) OnBeforeDispatch(fn BeforeDispatchFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.before = append(d.before, fn)
}

// OnAfterDispatch registers a hook called after every chain.
func (d *Dispatcher) OnAfterDispatch(fn AfterDispatchFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.after = append(d.after, fn)
}
