package slot

import (
	"testing"

	"github.com/vango-dev/primitives/pkg/vdom"
)

func TestApplyWithoutAsChild(t *testing.T) {
	own := vdom.Div(vdom.Role("group"), vdom.A(vdom.Href("/x")))
	if Apply(false, own) != own {
		t.Error("Apply(false) should return own")
	}
}

func TestApplyMergesIntoChild(t *testing.T) {
	var log []string
	child := vdom.A(
		vdom.Href("/docs"),
		vdom.Class("link"),
		vdom.Role("link"),
		vdom.OnClick(func() { log = append(log, "child") }),
		vdom.Text("Docs"),
	)
	own := vdom.Button(
		vdom.Role("button"),
		vdom.Class("trigger"),
		vdom.StyleAttr("color: red;"),
		vdom.Data("state", "open"),
		vdom.OnClick(func() { log = append(log, "slot") }),
		child,
	)

	got := Apply(true, own)
	if got.Tag != "a" {
		t.Fatalf("Tag = %q", got.Tag)
	}
	tests := []struct{ key, want string }{
		{"href", "/docs"},
		{"role", "link"},
		{"class", "trigger link"},
		{"style", "color: red;"},
		{"data-state", "open"},
	}
	for _, tt := range tests {
		if v := got.Attr(tt.key); v != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, v, tt.want)
		}
	}
	got.Handler("onclick").(func())()
	if len(log) != 2 || log[0] != "child" || log[1] != "slot" {
		t.Errorf("handlers ran %v", log)
	}
	if vdom.TextContent(got) != "Docs" {
		t.Errorf("children lost: %q", vdom.TextContent(got))
	}
	if child.Attr("data-state") != "" {
		t.Error("Apply modified the original child")
	}
}

func TestApplyWithoutElementChild(t *testing.T) {
	own := vdom.Div(vdom.Text("only text"))
	if Apply(true, own) != own {
		t.Error("Apply should fall back to own")
	}
}
