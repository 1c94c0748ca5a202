// Package slot implements AsChild: a primitive hands its props to the
// caller's element instead of rendering its own.
package slot

import (
	"strings"

	"github.com/vango-dev/primitives/pkg/vdom"
)

// Apply returns own, or, when asChild is set, the first element child of
// own with own's props merged in. The child keeps its own tag and
// children.
//
// Merge rules follow the child: its attributes win, class and style
// values are joined, and event handlers of the same signature are
// composed so the child's runs first.
func Apply(asChild bool, own *vdom.VNode) *vdom.VNode {
	if !asChild || own == nil {
		return own
	}
	var child *vdom.VNode
	for _, c := range own.Children {
		if c != nil && c.Kind == vdom.KindElement {
			child = c
			break
		}
	}
	if child == nil {
		return own
	}
	return Merge(own.Props, child)
}

// Merge returns a copy of child with props merged in.
func Merge(props vdom.Props, child *vdom.VNode) *vdom.VNode {
	out := child.ShallowClone()
	if out.Props == nil {
		out.Props = make(vdom.Props, len(props))
	}
	for k, v := range props {
		cur, exists := out.Props[k]
		switch {
		case !exists || cur == nil:
			out.Props[k] = v
		case vdom.IsEventKey(k):
			out.Props[k] = compose(cur, v)
		case k == "class":
			out.Props[k] = join(" ", vdom.AttrString(v), vdom.AttrString(cur))
		case k == "style":
			out.Props[k] = join("; ", strings.TrimSuffix(vdom.AttrString(v), ";"), vdom.AttrString(cur))
		}
	}
	return out
}

func join(sep string, parts ...string) string {
	var keep []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, sep)
}

// compose chains two handlers with the same signature, child first. Other
// combinations keep the child's handler.
func compose(child, slot any) any {
	switch c := child.(type) {
	case func():
		if s, ok := slot.(func()); ok {
			return func() { c(); s() }
		}
	case func(string):
		if s, ok := slot.(func(string)); ok {
			return func(v string) { c(v); s(v) }
		}
	case func(float64):
		if s, ok := slot.(func(float64)); ok {
			return func(v float64) { c(v); s(v) }
		}
	}
	return child
}
