package reactive

// Effect is a side effect attached to a component, re-run when its
// dependency list changes between renders.
//
// Effects do not run during render. The runtime commits them after every
// render pass in two phases: first Teardown on every pending effect (running
// the cleanup of the previous run), then Run on every pending effect. This
// guarantees that a replaced registration is released before its successor
// is applied.
type Effect struct {
	id    uint64
	owner *Owner

	fn      func() Cleanup
	deps    []any
	cleanup Cleanup

	// pending is set when deps changed and cleared by Run.
	pending bool

	disposed bool
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// Pending reports whether the effect is waiting to run.
func (e *Effect) Pending() bool {
	return e.pending && !e.disposed
}

// Teardown runs the cleanup of the previous run if the effect is pending.
func (e *Effect) Teardown() {
	if !e.pending || e.disposed {
		return
	}
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
}

// Run executes the effect body if it is pending.
// The body runs untracked, with the effect's owner as the current owner.
func (e *Effect) Run() {
	if !e.pending || e.disposed {
		return
	}
	e.pending = false
	// Teardown is normally called first by the runtime; this keeps a lone
	// Run from dropping the previous cleanup.
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
	WithOwner(e.owner, func() {
		Untracked(func() {
			e.cleanup = e.fn()
		})
	})
}

// dispose runs the outstanding cleanup and marks the effect dead.
func (e *Effect) dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
}

// UseEffect declares an effect for the rendering component.
//
// fn runs after the first render and again after any render where one of
// deps differs from the previous render (compared with ==; functions and
// other incomparable values always count as changed). With no deps, fn runs
// once after mount. The Cleanup fn returns runs before the next run and when
// the component unmounts.
//
// This is a hook: call it unconditionally during render.
//
// Example:
//
//	reactive.UseEffect(func() reactive.Cleanup {
//	    scope.Update(host, name, payload)
//	    return nil
//	}, host, name, payload)
func UseEffect(fn func() Cleanup, deps ...any) {
	o := mustOwner("UseEffect")
	o.TrackHook(HookEffect)

	if slot := o.UseHookSlot(); slot != nil {
		e := slot.(*Effect)
		if !depsEqual(e.deps, deps) {
			e.fn = fn
			e.deps = copyDeps(deps)
			e.pending = true
		}
		return
	}

	e := &Effect{
		id:      nextID(),
		owner:   o,
		fn:      fn,
		deps:    copyDeps(deps),
		pending: true,
	}
	o.SetHookSlot(e)
	o.mu.Lock()
	o.effects = append(o.effects, e)
	o.mu.Unlock()
}

// OnMount runs fn once after the component first renders.
func OnMount(fn func()) {
	UseEffect(func() Cleanup {
		fn()
		return nil
	})
}

// OnUnmount runs fn when the component unmounts.
func OnUnmount(fn func()) {
	UseEffect(func() Cleanup {
		return fn
	})
}

func copyDeps(deps []any) []any {
	if len(deps) == 0 {
		return nil
	}
	out := make([]any, len(deps))
	copy(out, deps)
	return out
}
