package hovercard

import (
	"context"
	"testing"

	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func card(os platform.OS, changes *[]bool, c Content) vdom.Component {
	c.Children = []any{"@vango"}
	return vdom.Func(func() *vdom.VNode {
		return platform.Provider(os, vdom.Mount(portal.Provider{Collector: portal.NewCollector("t"), Children: []any{
			vdom.Mount(Root{
				OpenDelay:    200,
				OnOpenChange: func(v bool) { *changes = append(*changes, v) },
				Children: []any{
					vdom.Mount(Trigger{Children: []any{"profile"}}),
					vdom.Mount(Portal{Children: []any{
						vdom.Mount(Overlay{}),
						vdom.Mount(c),
					}}),
				},
			}),
			vdom.Mount(portal.Host{}),
		}}))
	})
}

func mount(t *testing.T, c vdom.Component) *runtime.Tree {
	t.Helper()
	tree, err := runtime.Mount(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func findBy(tree *runtime.Tree, pred func(*vdom.VNode) bool) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(tree.Output(), func(n *vdom.VNode) bool {
		if found == nil && pred(n) {
			found = n
		}
		return found == nil
	})
	return found
}

func trigger(tree *runtime.Tree) *vdom.VNode {
	return findBy(tree, func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Attr("aria-controls") != "" && vdom.TextContent(n) == "profile"
	})
}

func content(tree *runtime.Tree) *vdom.VNode {
	return findBy(tree, func(n *vdom.VNode) bool { return n.Attr("data-side") != "" })
}

func TestWebHover(t *testing.T) {
	var changes []bool
	tree := mount(t, card(platform.Web, &changes, Content{Side: Top, SideOffset: 4}))

	tr := trigger(tree)
	if tr.Tag != "a" {
		t.Fatalf("trigger tag = %s", tr.Tag)
	}
	if tr.Attr("data-open-delay") != "200" || tr.Attr("data-close-delay") != "300" {
		t.Errorf("delays = %s/%s", tr.Attr("data-open-delay"), tr.Attr("data-close-delay"))
	}
	if content(tree) != nil {
		t.Fatal("card rendered before hover")
	}

	if err := tree.Dispatch(tr.HID, "pointerenter", nil); err != nil {
		t.Fatal(err)
	}
	c := content(tree)
	if c == nil {
		t.Fatal("card not rendered after pointerenter")
	}
	if c.Attr("data-side") != "top" || c.Attr("data-align") != "center" || c.Attr("data-side-offset") != "4" {
		t.Errorf("positioning attrs = %v", c.Props)
	}
	if c.Attr("data-avoid-collisions") != "true" || c.Attr("data-sticky") != "partial" {
		t.Errorf("defaults = avoid %q sticky %q", c.Attr("data-avoid-collisions"), c.Attr("data-sticky"))
	}
	if findBy(tree, func(n *vdom.VNode) bool { return n.Kind == vdom.KindTeleport }) == nil {
		t.Error("web card should be teleported")
	}

	// Entering the open card changes nothing; leaving it closes.
	if err := tree.Dispatch(content(tree).HID, "pointerenter", nil); err != nil {
		t.Fatal(err)
	}
	if err := tree.Dispatch(content(tree).HID, "pointerleave", nil); err != nil {
		t.Fatal(err)
	}
	if content(tree) != nil {
		t.Error("card open after pointer left it")
	}

	if err := tree.Dispatch(trigger(tree).HID, "focus", nil); err != nil {
		t.Fatal(err)
	}
	if err := tree.Dispatch(trigger(tree).HID, "blur", nil); err != nil {
		t.Fatal(err)
	}
	if content(tree) != nil {
		t.Error("card open after blur")
	}
	want := []bool{true, false, true, false}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("changes = %v, want %v", changes, want)
		}
	}
}

func TestNativePressAndOverlay(t *testing.T) {
	var changes []bool
	tree := mount(t, card(platform.Native, &changes, Content{}))

	tr := trigger(tree)
	if tr.Tag != "Pressable" {
		t.Fatalf("trigger tag = %s", tr.Tag)
	}
	if err := tree.Dispatch(tr.HID, "press", nil); err != nil {
		t.Fatal(err)
	}
	if content(tree) == nil {
		t.Fatal("card not in host after press")
	}
	if content(tree).Handler("onpointerenter") != nil {
		t.Error("native card has pointer handlers")
	}

	ov := findBy(tree, func(n *vdom.VNode) bool { return n.Attr("data-part") == "overlay" })
	if err := tree.Dispatch(ov.HID, "press", nil); err != nil {
		t.Fatal(err)
	}
	if content(tree) != nil {
		t.Error("overlay press did not close the card")
	}
	if len(changes) != 2 {
		t.Errorf("changes = %v", changes)
	}
}

func TestContentOptions(t *testing.T) {
	var changes []bool
	off := false
	tree := mount(t, card(platform.Web, &changes, Content{
		Align:            End,
		AvoidCollisions:  &off,
		Insets:           Insets{Top: 8, Left: 2},
		Sticky:           "always",
		HideWhenDetached: true,
		ForceMount:       true,
	}))
	// ForceMount on Content alone does not bypass a closed Portal.
	if content(tree) != nil {
		t.Fatal("content mounted through closed portal")
	}
	if err := tree.Dispatch(trigger(tree).HID, "focus", nil); err != nil {
		t.Fatal(err)
	}
	c := content(tree)
	for attr, want := range map[string]string{
		"data-align":              "end",
		"data-avoid-collisions":   "false",
		"data-collision-padding":  "8 0 0 2",
		"data-sticky":             "always",
		"data-hide-when-detached": "true",
		"data-state":              "open",
	} {
		if got := c.Attr(attr); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
}
