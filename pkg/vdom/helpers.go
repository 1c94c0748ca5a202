package vdom

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
// A Key attribute among the arguments keys the fragment itself.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}

	for _, child := range children {
		if a, ok := child.(Attr); ok {
			if s, isStr := a.Value.(string); isStr && a.Key == "key" {
				node.Key = s
			}
			continue
		}
		appendChild(node, child)
	}

	return node
}

// Teleport renders children into the named container instead of in place.
// The HTML renderer emits each container once, at the end of <body>.
func Teleport(container string, children ...any) *VNode {
	node := &VNode{
		Kind:     KindTeleport,
		Tag:      container,
		Children: make([]*VNode, 0, len(children)),
	}
	for _, child := range children {
		appendChild(node, child)
	}
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Walk visits node and its descendants depth-first, stopping a branch when
// fn returns false.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// TextContent concatenates the text nodes below node.
func TextContent(node *VNode) string {
	var out []byte
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			out = append(out, n.Text...)
		}
		return true
	})
	return string(out)
}
