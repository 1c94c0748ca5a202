package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <View>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
	KindTeleport               // Children rendered into a named container
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	case KindTeleport:
		return "Teleport"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// For KindTeleport nodes, Tag holds the target container name.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name, or teleport container
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned after each flush)
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Props {
		if IsEventKey(key) && value != nil {
			return true
		}
	}
	return false
}

// Handler returns the handler registered for event (e.g. "onclick").
func (v *VNode) Handler(event string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[event]
}

// Attr returns the string form of an attribute, or "" when unset.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Props == nil {
		return ""
	}
	value, ok := v.Props[key]
	if !ok || value == nil {
		return ""
	}
	return AttrString(value)
}

// ShallowClone copies the node with fresh Props and Children containers.
// Children pointers are shared.
func (v *VNode) ShallowClone() *VNode {
	if v == nil {
		return nil
	}
	c := *v
	if v.Props != nil {
		c.Props = make(Props, len(v.Props))
		for k, val := range v.Props {
			c.Props[k] = val
		}
	}
	if v.Children != nil {
		c.Children = make([]*VNode, len(v.Children))
		copy(c.Children, v.Children)
	}
	return &c
}

// IsEventKey reports whether a prop key names an event handler.
func IsEventKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "onkeydown", "onpress", etc.
	Handler any    // func(), func(string) or func(float64)
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// RenderFunc returns the wrapped render function.
func (f *FuncComponent) RenderFunc() func() *VNode {
	return f.render
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Mount wraps a component in a KindComponent node.
func Mount(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}

// MountKeyed wraps a component in a keyed KindComponent node.
func MountKeyed(key string, c Component) *VNode {
	n := Mount(c)
	if n != nil {
		n.Key = key
	}
	return n
}
