package gallery

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func TestNames(t *testing.T) {
	got := strings.Join(Names(), ",")
	if got != "alert-dialog,hover-card,portal,slider" {
		t.Errorf("Names = %s", got)
	}
}

func TestLookupSuggests(t *testing.T) {
	tests := []struct {
		in      string
		suggest string
	}{
		{"sldier", `did you mean "slider"?`},
		{"alert-dialgo", `did you mean "alert-dialog"?`},
		{"completely-unrelated", ""},
	}
	for _, tt := range tests {
		_, err := Lookup(tt.in)
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Code != errors.CodeUnknownStory {
			t.Fatalf("Lookup(%q) err = %v", tt.in, err)
		}
		if e.Suggestion != tt.suggest {
			t.Errorf("Lookup(%q) suggestion = %q, want %q", tt.in, e.Suggestion, tt.suggest)
		}
	}
	if s, err := Lookup("portal"); err != nil || s.Title != "Portal" {
		t.Errorf("Lookup(portal) = %+v, %v", s, err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Story{Name: "slider"})
}

func mount(t *testing.T, name string, os platform.OS) *runtime.Tree {
	t.Helper()
	s, err := Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := s.Mount(context.Background(), os, Options{Collector: portal.NewCollector("gallery_test")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func find(tree *runtime.Tree, attr, value string) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(tree.Output(), func(n *vdom.VNode) bool {
		if found == nil && n.Attr(attr) == value {
			found = n
		}
		return found == nil
	})
	return found
}

func pressEvent(os platform.OS) string {
	if os.IsNative() {
		return "press"
	}
	return "click"
}

func TestPortalStory(t *testing.T) {
	for _, os := range platform.All {
		t.Run(string(os), func(t *testing.T) {
			tree := mount(t, "portal", os)
			for _, want := range []string{"Hello", "World", ""} {
				main := find(tree, "data-host", "main")
				if got := vdom.TextContent(main); got != want {
					t.Fatalf("main host = %q, want %q", got, want)
				}
				if got := vdom.TextContent(find(tree, "data-host", "tooltip")); got != "" {
					t.Fatalf("tooltip host = %q", got)
				}
				if err := tree.Dispatch(find(tree, "data-part", "next").HID, pressEvent(os), nil); err != nil {
					t.Fatal(err)
				}
			}
			if got := vdom.TextContent(find(tree, "data-host", "main")); got != "Hello" {
				t.Errorf("after reset main host = %q", got)
			}
		})
	}
}

func TestEveryStoryMountsOnEveryBackend(t *testing.T) {
	for _, s := range All() {
		for _, os := range platform.All {
			t.Run(s.Name+"/"+string(os), func(t *testing.T) {
				tree := mount(t, s.Name, os)
				if find(tree, "data-story", s.Name) == nil {
					t.Error("story wrapper missing")
				}
				if find(tree, "data-portal-host", portal.DefaultHost) == nil {
					t.Error("default host wrapper missing")
				}
			})
		}
	}
}

func TestAlertDialogStoryCounts(t *testing.T) {
	tree := mount(t, "alert-dialog", platform.Native)
	press := func(pred func(*vdom.VNode) bool) {
		t.Helper()
		var hit *vdom.VNode
		vdom.Walk(tree.Output(), func(n *vdom.VNode) bool {
			if hit == nil && pred(n) {
				hit = n
			}
			return hit == nil
		})
		if hit == nil {
			t.Fatal("element not found")
		}
		if err := tree.Dispatch(hit.HID, "press", nil); err != nil {
			t.Fatal(err)
		}
	}
	press(func(n *vdom.VNode) bool { return n.Attr("aria-haspopup") == "dialog" })
	if find(tree, "role", "alertdialog") == nil {
		t.Fatal("dialog did not open")
	}
	press(func(n *vdom.VNode) bool { return n.Attr("data-part") == "action" })
	if got := vdom.TextContent(find(tree, "data-part", "status")); got != "Deleted 1 times" {
		t.Errorf("status = %q", got)
	}
	if find(tree, "role", "alertdialog") != nil {
		t.Error("dialog still open")
	}
}

func TestSliderStoryKeyboard(t *testing.T) {
	tree := mount(t, "slider", platform.Web)
	if err := tree.Dispatch(find(tree, "data-part", "thumb").HID, "keydown", "ArrowRight"); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(find(tree, "data-part", "value")); got != "Volume 55" {
		t.Errorf("label = %q", got)
	}
}
