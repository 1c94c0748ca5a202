package reactive

import "github.com/vango-dev/primitives/pkg/vdom"

// contextKey gives each Context a unique identity in owner value maps.
type contextKey struct {
	name string
}

// Context carries a value down the component tree without passing it
// through every intermediate component.
type Context[T any] struct {
	key *contextKey
	def T
}

// CreateContext creates a context whose Use returns def when no Provider is
// above the caller.
func CreateContext[T any](name string, def T) *Context[T] {
	return &Context[T]{key: &contextKey{name: name}, def: def}
}

// Provider returns a node that makes value visible to every component
// rendered beneath it. Nested providers of the same context shadow outer
// ones.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Mount(&provider[T]{ctx: c, value: value, children: children})
}

// Use returns the nearest provided value, or the default.
//
// This is a hook: call it unconditionally during render.
func (c *Context[T]) Use() T {
	v, _ := c.Lookup()
	return v
}

// Lookup returns the nearest provided value and whether one was found.
func (c *Context[T]) Lookup() (T, bool) {
	o := mustOwner("Context.Use")
	o.TrackHook(HookContext)
	if v, ok := o.Value(c.key); ok {
		return v.(T), true
	}
	return c.def, false
}

// Default returns the context's default value.
func (c *Context[T]) Default() T {
	return c.def
}

// Name returns the debug name given to CreateContext.
func (c *Context[T]) Name() string {
	return c.key.name
}

// provider is the component behind Context.Provider. It stores the value on
// its own owner, so descendants see it through the owner chain.
type provider[T any] struct {
	ctx      *Context[T]
	value    T
	children []any
}

func (p *provider[T]) Render() *vdom.VNode {
	CurrentOwner().SetValue(p.ctx.key, p.value)
	return vdom.Fragment(p.children...)
}

// ComponentIdentity keeps providers of different contexts from being
// reconciled into each other.
func (p *provider[T]) ComponentIdentity() any {
	return p.ctx.key
}
