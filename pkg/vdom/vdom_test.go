package vdom

import "testing"

type staticComp struct{ text string }

func (s staticComp) Render() *VNode { return Text(s.text) }

func TestCreateElementArguments(t *testing.T) {
	node := Div(
		ID("root"),
		Class("a", ""),
		Class("b"),
		Key("k1"),
		nil,
		[]Attr{Role("group"), Data("state", "open")},
		OnClick(func() {}),
		"hello",
		Span("x"),
		[]*VNode{P("y"), nil},
		[]any{"z", nil, Data("extra", "1")},
		staticComp{"comp"},
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("kind/tag = %v/%q", node.Kind, node.Tag)
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if got := node.Attr("class"); got != "a b" {
		t.Errorf("class = %q, want %q", got, "a b")
	}
	if got := node.Attr("data-state"); got != "open" {
		t.Errorf("data-state = %q", got)
	}
	if !node.IsInteractive() {
		t.Error("node with onclick should be interactive")
	}
	if got := node.Attr("data-extra"); got != "1" {
		t.Errorf("attr inside []any not applied: data-extra = %q", got)
	}
	if len(node.Children) != 5 {
		t.Fatalf("children = %d, want 5", len(node.Children))
	}
	if node.Children[4].Kind != KindComponent {
		t.Errorf("last child kind = %v, want Component", node.Children[4].Kind)
	}
}

func TestFragmentKeyAndChildren(t *testing.T) {
	f := Fragment(Key("item"), "a", nil, Text("b"))
	if f.Key != "item" {
		t.Errorf("Key = %q", f.Key)
	}
	if len(f.Children) != 2 {
		t.Errorf("children = %d, want 2", len(f.Children))
	}
	if got := TextContent(f); got != "ab" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestTeleport(t *testing.T) {
	n := Teleport("body", Div("content"))
	if n.Kind != KindTeleport || n.Tag != "body" {
		t.Fatalf("teleport = %v/%q", n.Kind, n.Tag)
	}
	if len(n.Children) != 1 {
		t.Errorf("children = %d", len(n.Children))
	}
}

func TestAssignAndFindHIDs(t *testing.T) {
	tree := Div(
		Button(OnClick(func() {}), "one"),
		Span("static"),
		Fragment(Button(OnClick(func() {}), "two")),
	)
	AssignHIDs(tree, NewHIDGenerator())

	nodes := Interactive(tree)
	if len(nodes) != 2 {
		t.Fatalf("interactive = %d, want 2", len(nodes))
	}
	if nodes[0].HID != "h1" || nodes[1].HID != "h2" {
		t.Errorf("hids = %q, %q", nodes[0].HID, nodes[1].HID)
	}
	if got := FindByHID(tree, "h2"); got != nodes[1] {
		t.Error("FindByHID(h2) returned wrong node")
	}
	if FindByHID(tree, "h9") != nil {
		t.Error("FindByHID(h9) should be nil")
	}
}

func TestShallowCloneIsolatesProps(t *testing.T) {
	orig := Div(ID("a"), "child")
	c := orig.ShallowClone()
	c.Props["id"] = "b"
	c.Children = append(c.Children, Text("more"))
	if orig.Attr("id") != "a" {
		t.Error("clone mutated original props")
	}
	if len(orig.Children) != 1 {
		t.Error("clone mutated original children")
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{false, "false"},
		{3, "3"},
		{int64(4), "4"},
		{2.5, "2.5"},
		{50.0, "50"},
	}
	for _, tt := range tests {
		if got := AttrString(tt.in); got != tt.want {
			t.Errorf("AttrString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVKindString(t *testing.T) {
	if KindTeleport.String() != "Teleport" || VKind(99).String() != "Unknown" {
		t.Error("unexpected VKind names")
	}
}
