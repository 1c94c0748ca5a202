package runtime

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Identifier lets a component choose what makes two renders "the same
// component" for reconciliation. Components at the same position with
// different identities are unmounted and mounted fresh.
type Identifier interface {
	ComponentIdentity() any
}

// Instance is a mounted component with its own owner and render output.
//
// Inside an instance's output, child components are replaced by
// KindComponent nodes whose Comp is the child *Instance.
type Instance struct {
	id     string
	comp   vdom.Component
	ident  any
	owner  *reactive.Owner
	parent *Instance
	depth  int
	tree   *Tree

	children []*Instance
	byPath   map[string]*Instance
	path     string

	// output is the reconciled result of the last render.
	output *vdom.VNode

	// elem is the node the parent last rendered for this instance.
	// sameElem is set when the parent's latest render reused it.
	elem     *vdom.VNode
	sameElem bool

	dirty    atomic.Bool
	disposed atomic.Bool
	detached atomic.Bool
	renders  int

	srcMu   sync.Mutex
	sources []reactive.Source
}

var (
	_ reactive.Listener      = (*Instance)(nil)
	_ reactive.SourceTracker = (*Instance)(nil)
	_ vdom.Component         = (*Instance)(nil)
)

var instanceIDCounter atomic.Uint64

func newInstance(t *Tree, parent *Instance, comp vdom.Component, path string) *Instance {
	parentOwner := t.owner
	depth := 0
	if parent != nil {
		parentOwner = parent.owner
		depth = parent.depth + 1
	}
	inst := &Instance{
		id:     fmt.Sprintf("c%d", instanceIDCounter.Add(1)),
		comp:   comp,
		ident:  identityOf(comp),
		owner:  reactive.NewOwner(parentOwner),
		parent: parent,
		depth:  depth,
		tree:   t,
		path:   path,
	}
	inst.owner.OnCleanup(inst.teardown)
	t.instances.Add(1)
	t.logger.Debug("component mounted", "id", inst.id, "type", typeName(comp), "path", path)
	return inst
}

// ID implements reactive.Listener.
func (i *Instance) ID() uint64 {
	return i.owner.ID()
}

// InstanceID returns the instance's string identifier ("c1", "c2", ...).
func (i *Instance) InstanceID() string {
	return i.id
}

// Component returns the component currently bound to the instance.
func (i *Instance) Component() vdom.Component {
	return i.comp
}

// Owner returns the instance's reactive owner.
func (i *Instance) Owner() *reactive.Owner {
	return i.owner
}

// Renders returns how many times the instance has rendered.
func (i *Instance) Renders() int {
	return i.renders
}

// Children returns the child instances in output order.
func (i *Instance) Children() []*Instance {
	return i.children
}

// MarkDirty schedules the instance for re-render on the next pass.
func (i *Instance) MarkDirty() {
	if i.disposed.Load() {
		return
	}
	if i.dirty.CompareAndSwap(false, true) {
		i.tree.schedule(i)
	}
}

// TrackSource implements reactive.SourceTracker.
func (i *Instance) TrackSource(s reactive.Source) {
	i.srcMu.Lock()
	i.sources = append(i.sources, s)
	i.srcMu.Unlock()
}

func (i *Instance) dropSources() {
	i.srcMu.Lock()
	sources := i.sources
	i.sources = nil
	i.srcMu.Unlock()
	for _, s := range sources {
		s.Unsubscribe(i)
	}
}

// Render implements vdom.Component by returning the composed output, with
// every descendant instance expanded in place.
func (i *Instance) Render() *vdom.VNode {
	return compose(i.output)
}

// render runs the component, reconciles its children and renders them.
//
// A child whose parent handed it the very same node as last time, and that
// is not dirty itself, keeps its previous output. force disables that
// shortcut for the whole subtree; it is set below a component whose
// context values changed.
func (i *Instance) render(force bool) {
	i.dirty.Store(false)
	i.dropSources()

	var out *vdom.VNode
	reactive.WithOwner(i.owner, func() {
		i.owner.StartRender()
		defer i.owner.EndRender()
		reactive.WithListener(i, func() {
			out = i.comp.Render()
		})
	})
	i.renders++
	i.tree.renders.Add(1)

	next := make([]*Instance, 0, len(i.children))
	claimed := make(map[string]bool)
	i.output = i.reconcile(out, "", 0, claimed, &next)

	for _, old := range i.children {
		if !containsInstance(next, old) {
			i.tree.retire(old)
		}
	}
	i.children = next
	i.byPath = make(map[string]*Instance, len(next))
	for _, c := range next {
		i.byPath[c.path] = c
	}

	force = force || i.owner.TakeValuesChanged()
	for _, c := range next {
		if c.disposed.Load() {
			continue
		}
		if !force && c.renders > 0 && c.sameElem && !c.dirty.Load() {
			continue
		}
		c.render(force)
	}
}

// reconcile copies the rendered tree, binding each component node to a
// reused or new child instance. Paths are built from sibling indexes, or
// from keys where nodes have them.
func (i *Instance) reconcile(n *vdom.VNode, parentPath string, index int, claimed map[string]bool, next *[]*Instance) *vdom.VNode {
	if n == nil {
		return nil
	}
	seg := strconv.Itoa(index)
	if n.Key != "" {
		seg = "k:" + n.Key
	}
	path := parentPath + "/" + seg
	if claimed[path] {
		// Duplicate keys among siblings: later ones get a suffix.
		for dup := 1; ; dup++ {
			p := path + "#" + strconv.Itoa(dup)
			if !claimed[p] {
				path = p
				break
			}
		}
	}

	if n.Kind == vdom.KindComponent {
		if n.Comp == nil {
			return nil
		}
		claimed[path] = true
		child := i.byPath[path]
		if child != nil && !child.disposed.Load() && reactive.SameValue(child.ident, identityOf(n.Comp)) {
			child.comp = n.Comp
			child.sameElem = child.elem == n
		} else {
			child = newInstance(i.tree, i, n.Comp, path)
		}
		child.elem = n
		*next = append(*next, child)
		return &vdom.VNode{Kind: vdom.KindComponent, Key: n.Key, Comp: child}
	}

	claimed[path] = true
	c := n.ShallowClone()
	if len(n.Children) > 0 {
		c.Children = make([]*vdom.VNode, 0, len(n.Children))
		for idx, ch := range n.Children {
			if rc := i.reconcile(ch, path, idx, claimed, next); rc != nil {
				c.Children = append(c.Children, rc)
			}
		}
	}
	c.HID = ""
	return c
}

// teardown runs when the instance's owner is disposed.
func (i *Instance) teardown() {
	if i.disposed.Swap(true) {
		return
	}
	i.dropSources()
	i.tree.instances.Add(-1)
	i.tree.logger.Debug("component unmounted", "id", i.id, "type", typeName(i.comp))
}

// attached reports whether the instance is still reachable from the root.
func (i *Instance) attached() bool {
	for cur := i; cur != nil; cur = cur.parent {
		if cur.detached.Load() || cur.disposed.Load() {
			return false
		}
	}
	return true
}

// effects appends the pending effects of the subtree in post-order.
func (i *Instance) effects(out []*reactive.Effect) []*reactive.Effect {
	for _, c := range i.children {
		out = c.effects(out)
	}
	return append(out, i.owner.PendingEffects()...)
}

// compose expands instance placeholders into their outputs.
func compose(n *vdom.VNode) *vdom.VNode {
	if n == nil {
		return nil
	}
	if n.Kind == vdom.KindComponent {
		inst, ok := n.Comp.(*Instance)
		if !ok || inst.disposed.Load() {
			return nil
		}
		out := compose(inst.output)
		if out != nil && out.Key == "" && n.Key != "" {
			out.Key = n.Key
		}
		return out
	}
	c := n.ShallowClone()
	if len(n.Children) > 0 {
		c.Children = make([]*vdom.VNode, 0, len(n.Children))
		for _, ch := range n.Children {
			if cc := compose(ch); cc != nil {
				c.Children = append(c.Children, cc)
			}
		}
	}
	return c
}

// identityOf returns what must match for an instance to be reused.
func identityOf(c vdom.Component) any {
	if id, ok := c.(Identifier); ok {
		return identity{typ: reflect.TypeOf(c), key: id.ComponentIdentity()}
	}
	if f, ok := c.(*vdom.FuncComponent); ok {
		return identity{typ: reflect.TypeOf(c), key: reflect.ValueOf(f.RenderFunc()).Pointer()}
	}
	return identity{typ: reflect.TypeOf(c)}
}

type identity struct {
	typ reflect.Type
	key any
}

func typeName(c vdom.Component) string {
	if c == nil {
		return "<nil>"
	}
	return reflect.TypeOf(c).String()
}

func containsInstance(list []*Instance, inst *Instance) bool {
	for _, c := range list {
		if c == inst {
			return true
		}
	}
	return false
}
