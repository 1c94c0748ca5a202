package alertdialog

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
	"github.com/vango-dev/primitives/pkg/vdom"
)

type events struct {
	actions, cancels, escapes int
	changes                   []bool
}

func dialog(os platform.OS, ev *events) vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		return platform.Provider(os, vdom.Mount(portal.Provider{Collector: portal.NewCollector("t"), Children: []any{
			vdom.Mount(Root{
				OnOpenChange: func(v bool) { ev.changes = append(ev.changes, v) },
				Children: []any{
					vdom.Mount(Trigger{Children: []any{"Delete account"}}),
					vdom.Mount(Portal{Children: []any{
						vdom.Mount(Overlay{}),
						vdom.Mount(Content{
							OnEscapeKeyDown: func() { ev.escapes++ },
							Children: []any{
								vdom.Mount(Title{Children: []any{"Are you sure?"}}),
								vdom.Mount(Description{Children: []any{"This cannot be undone."}}),
								vdom.Mount(Cancel{OnPress: func() { ev.cancels++ }, Children: []any{"Cancel"}}),
								vdom.Mount(Action{OnPress: func() { ev.actions++ }, Children: []any{"Continue"}}),
							},
						}),
					}}),
				},
			}),
			vdom.Div(vdom.ID("host"), vdom.Mount(portal.Host{})),
		}}))
	})
}

func find(root *vdom.VNode, pred func(*vdom.VNode) bool) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if found == nil && pred(n) {
			found = n
		}
		return found == nil
	})
	return found
}

func byRole(role string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Attr("role") == role }
}

func byText(text string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Attr("role") == "button" && vdom.TextContent(n) == text
	}
}

func press(t *testing.T, tree *runtime.Tree, os platform.OS, n *vdom.VNode) {
	t.Helper()
	event := "click"
	if os.IsNative() {
		event = "press"
	}
	if n == nil {
		t.Fatal("element not found")
	}
	if err := tree.Dispatch(n.HID, event, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
}

func TestAlertDialogFlow(t *testing.T) {
	for _, os := range platform.All {
		t.Run(string(os), func(t *testing.T) {
			ev := &events{}
			tree, err := runtime.Mount(context.Background(), dialog(os, ev))
			if err != nil {
				t.Fatal(err)
			}
			defer tree.Close()

			if find(tree.Output(), byRole("alertdialog")) != nil {
				t.Fatal("content rendered while closed")
			}
			trigger := find(tree.Output(), byText("Delete account"))
			if trigger.Attr("data-state") != "closed" || trigger.Attr("aria-expanded") != "false" {
				t.Errorf("trigger state = %q", trigger.Attr("data-state"))
			}

			press(t, tree, os, trigger)
			out := tree.Output()
			content := find(out, byRole("alertdialog"))
			if content == nil {
				t.Fatal("content not rendered after opening")
			}
			if content.Attr("aria-modal") != "true" || content.Attr("data-state") != "open" {
				t.Errorf("content attrs: modal=%q state=%q", content.Attr("aria-modal"), content.Attr("data-state"))
			}
			title := find(out, func(n *vdom.VNode) bool { return n.Attr("id") == content.Attr("aria-labelledby") })
			if vdom.TextContent(title) != "Are you sure?" {
				t.Errorf("aria-labelledby does not point at the title")
			}

			host := find(out, func(n *vdom.VNode) bool { return n.Attr("id") == "host" })
			inHost := find(host, byRole("alertdialog")) != nil
			if os.IsNative() != inHost {
				t.Errorf("content in host = %v on %s", inHost, os)
			}
			if !os.IsNative() && find(out, func(n *vdom.VNode) bool { return n.Kind == vdom.KindTeleport }) == nil {
				t.Error("web content should be teleported")
			}

			press(t, tree, os, find(tree.Output(), byText("Continue")))
			if ev.actions != 1 {
				t.Errorf("actions = %d", ev.actions)
			}
			if find(tree.Output(), byRole("alertdialog")) != nil {
				t.Error("dialog still open after action")
			}

			press(t, tree, os, find(tree.Output(), byText("Delete account")))
			press(t, tree, os, find(tree.Output(), byText("Cancel")))
			if ev.cancels != 1 {
				t.Errorf("cancels = %d", ev.cancels)
			}
			want := []bool{true, false, true, false}
			if len(ev.changes) != len(want) {
				t.Fatalf("changes = %v", ev.changes)
			}
			for i := range want {
				if ev.changes[i] != want[i] {
					t.Fatalf("changes = %v, want %v", ev.changes, want)
				}
			}
		})
	}
}

func TestEscapeClosesOnWeb(t *testing.T) {
	ev := &events{}
	tree, err := runtime.Mount(context.Background(), dialog(platform.Web, ev))
	if err != nil {
		t.Fatal(err)
	}
	defer tree.Close()

	press(t, tree, platform.Web, find(tree.Output(), byText("Delete account")))
	content := find(tree.Output(), byRole("alertdialog"))
	if err := tree.Dispatch(content.HID, "keydown", "Escape"); err != nil {
		t.Fatal(err)
	}
	if ev.escapes != 1 || find(tree.Output(), byRole("alertdialog")) != nil {
		t.Errorf("escapes=%d, dialog still open=%v", ev.escapes, find(tree.Output(), byRole("alertdialog")) != nil)
	}
}

func TestControlledRoot(t *testing.T) {
	open := true
	root := vdom.Func(func() *vdom.VNode {
		return vdom.Mount(Root{Open: &open, Children: []any{
			vdom.Mount(Content{Children: []any{"body"}}),
		}})
	})
	tree, err := runtime.Mount(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	defer tree.Close()
	if find(tree.Output(), byRole("alertdialog")) == nil {
		t.Error("controlled open dialog not rendered")
	}
}

func TestPartOutsideRootPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, errors.New(errors.CodeOutsideRoot)) {
			t.Fatalf("recover() = %v", r)
		}
	}()
	_, _ = runtime.Mount(context.Background(), Trigger{})
}
