package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, EventHandler, []any (flattened), or
// anything appendChild accepts.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		applyArg(node, arg)
	}
	return node
}

func applyArg(node *VNode, arg any) {
	switch v := arg.(type) {
	case nil:
		// Ignore nil (allows conditional attributes)
	case Attr:
		applyAttr(node, v)
	case []Attr:
		for _, a := range v {
			applyAttr(node, a)
		}
	case EventHandler:
		if v.Event != "" {
			node.Props[v.Event] = v.Handler
		}
	case []any:
		for _, a := range v {
			applyArg(node, a)
		}
	default:
		appendChild(node, arg)
	}
}

// applyAttr sets an attribute on node. Class values accumulate.
func applyAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	switch a.Key {
	case "key":
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	case "class":
		if s, ok := a.Value.(string); ok {
			if existing, ok := node.Props["class"].(string); ok && existing != "" {
				if s == "" {
					return
				}
				node.Props["class"] = existing + " " + s
				return
			}
		}
	}
	node.Props[a.Key] = a.Value
}

// appendChild appends a child argument to node.
// Accepts *VNode, []*VNode, []any, Component, string and nil.
func appendChild(node *VNode, arg any) {
	switch v := arg.(type) {
	case nil:
		return
	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}
	case []*VNode:
		for _, child := range v {
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
	case []any:
		for _, child := range v {
			appendChild(node, child)
		}
	case Component:
		node.Children = append(node.Children, &VNode{
			Kind: KindComponent,
			Comp: v,
		})
	case string:
		node.Children = append(node.Children, &VNode{
			Kind: KindText,
			Text: v,
		})
	}
}

// Content sectioning elements

func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func A(args ...any) *VNode    { return createElement("a", args) }

// Form elements

func Button(args ...any) *VNode { return createElement("button", args) }

// CustomElement creates an element with a custom tag name.
// Native view trees use it for View, Text and Pressable.
func CustomElement(tag string, args ...any) *VNode {
	return createElement(tag, args)
}
