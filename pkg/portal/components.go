package portal

import (
	"github.com/google/uuid"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

var scopeContext = reactive.CreateContext[*Scope]("portal.Scope", nil)

// UseScope returns the Scope of the nearest Provider. It panics with
// ErrNoProvider when there is none.
//
// This is a hook: call it unconditionally during render.
func UseScope() *Scope {
	s := scopeContext.Use()
	if s == nil {
		panic(errors.New(errors.CodeNoProvider))
	}
	return s
}

// LookupScope returns the nearest Provider's Scope, if any.
func LookupScope() (*Scope, bool) {
	s, ok := scopeContext.Lookup()
	return s, ok && s != nil
}

// ProvideScope renders children with s as their portal scope. Use it to
// carry an existing scope into a subtree that is rendered elsewhere.
func ProvideScope(s *Scope, children ...any) *vdom.VNode {
	return scopeContext.Provider(s, children...)
}

// Provider creates a Scope on first render and makes it available to
// every Portal and Host beneath it. Nested providers are independent; the
// nearest one wins.
type Provider struct {
	// Options configure the scope. They are read on first render only.
	Options []ScopeOption

	// Collector receives the scope's metrics while mounted. Nil means
	// DefaultCollector.
	Collector *Collector

	Children []any
}

// Render implements vdom.Component.
func (p Provider) Render() *vdom.VNode {
	ref := reactive.UseRef[*Scope](nil)
	if ref.Current == nil {
		ref.Current = NewScope(p.Options...)
	}
	scope := ref.Current

	collector := p.Collector
	if collector == nil {
		collector = DefaultCollector
	}
	reactive.UseEffect(func() reactive.Cleanup {
		collector.Attach(scope)
		return func() {
			collector.Detach(scope)
		}
	}, collector)

	return scopeContext.Provider(scope, p.Children...)
}

// Portal registers its children with a Host instead of rendering them in
// place. It renders nothing itself.
//
// Several Portals may use the same Name in one Host: the last write wins.
type Portal struct {
	// Name identifies the content within the host. When empty, a unique
	// name is generated once per mounted Portal.
	Name string

	// Host is the target host name. Empty means DefaultHost.
	Host string

	Children []any
}

// Render implements vdom.Component.
func (p Portal) Render() *vdom.VNode {
	scope := UseScope()
	anon := reactive.UseRef("")
	if anon.Current == "" {
		anon.Current = uuid.NewString()
	}

	name := p.Name
	if name == "" {
		name = anon.Current
	}
	host := hostName(p.Host)

	// The payload keeps its identity while the children do, so re-renders
	// with the same children write nothing.
	memo := reactive.UseRef(payloadMemo{})
	if memo.Current.node == nil || !sameChildren(memo.Current.children, p.Children) {
		memo.Current = payloadMemo{children: p.Children, node: vdom.Fragment(p.Children...)}
	}
	payload := memo.Current.node

	reactive.UseEffect(func() reactive.Cleanup {
		scope.Update(host, name, payload)
		return nil
	}, scope, host, name, payload)

	reactive.UseEffect(func() reactive.Cleanup {
		return func() {
			scope.Remove(host, name)
		}
	}, scope, host, name)

	return nil
}

type payloadMemo struct {
	children []any
	node     *vdom.VNode
}

// sameChildren compares child lists element by element. Nodes compare by
// pointer; nested lists are compared the same way.
func sameChildren(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		la, aok := a[i].([]any)
		lb, bok := b[i].([]any)
		if aok || bok {
			if !(aok && bok && sameChildren(la, lb)) {
				return false
			}
			continue
		}
		if !reactive.SameValue(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Host renders the payloads registered for Name in insertion order. It
// renders nothing while the bucket is empty.
type Host struct {
	// Name is the host name. Empty means DefaultHost.
	Name string
}

// Render implements vdom.Component.
func (h Host) Render() *vdom.VNode {
	scope := UseScope()
	name := hostName(h.Name)

	bucket := reactive.Select(scope.Signal(), func(r *Registry) *Bucket {
		return r.Bucket(name)
	})

	reactive.UseEffect(func() reactive.Cleanup {
		scope.acquireHost(name)
		return func() {
			scope.releaseHost(name)
		}
	}, scope, name)

	if bucket.Len() == 0 {
		return nil
	}
	out := vdom.Fragment()
	bucket.Each(func(key string, payload any) {
		out.Children = append(out.Children, keyed(key, payload))
	})
	return out
}

// keyed wraps a payload so each entry keeps its component state across
// inserts and removals of its siblings.
func keyed(key string, payload any) *vdom.VNode {
	f := vdom.Fragment(payload)
	f.Key = key
	return f
}
