package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func mount(t *testing.T, c vdom.Component, opts ...Option) *Tree {
	t.Helper()
	tree, err := Mount(context.Background(), c, opts...)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

type counter struct {
	label string
}

func (c counter) Render() *vdom.VNode {
	n := reactive.UseSignal(0)
	return vdom.Button(
		vdom.OnClick(func() { n.Set(n.Peek() + 1) }),
		vdom.Text(fmt.Sprintf("%s:%d", c.label, n.Get())),
	)
}

func TestMountAndDispatch(t *testing.T) {
	tree := mount(t, counter{label: "n"})

	out := tree.Output()
	if got := vdom.TextContent(out); got != "n:0" {
		t.Fatalf("text = %q", got)
	}
	if out.HID != "h1" {
		t.Fatalf("HID = %q", out.HID)
	}

	if err := tree.Dispatch("h1", "click", nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got := vdom.TextContent(tree.Output()); got != "n:1" {
		t.Errorf("after click text = %q", got)
	}
	if err := tree.Dispatch("onclick", "h1", nil); !stderrors.Is(err, ErrNoHandler) {
		t.Errorf("unknown hid err = %v", err)
	}
	if err := tree.Dispatch("h1", "keydown", "Enter"); !stderrors.Is(err, ErrNoHandler) {
		t.Errorf("missing handler err = %v", err)
	}
}

func TestDispatchHandlerTypes(t *testing.T) {
	var gotString string
	var gotFloat float64
	root := vdom.Func(func() *vdom.VNode {
		return vdom.Div(
			vdom.Span(vdom.OnKeyDown(func(k string) { gotString = k })),
			vdom.Span(vdom.On("valuechange", func(v float64) { gotFloat = v })),
			vdom.Span(vdom.On("bad", func(int) {})),
		)
	})
	tree := mount(t, root)

	tests := []struct {
		hid, event string
		value      any
		wantErr    error
	}{
		{"h1", "keydown", "ArrowUp", nil},
		{"h2", "valuechange", "42.5", nil},
		{"h2", "onvaluechange", 7, nil},
		{"h2", "valuechange", "nope", ErrHandlerType},
		{"h3", "bad", nil, ErrHandlerType},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s/%v", tt.hid, tt.event, tt.value), func(t *testing.T) {
			err := tree.Dispatch(tt.hid, tt.event, tt.value)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if tt.wantErr != nil && !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if gotString != "ArrowUp" {
		t.Errorf("string handler got %q", gotString)
	}
	if gotFloat != 7 {
		t.Errorf("float handler got %v", gotFloat)
	}
}

type lifecycle struct {
	name string
	log  *[]string
}

func (l lifecycle) Render() *vdom.VNode {
	reactive.UseEffect(func() reactive.Cleanup {
		*l.log = append(*l.log, "mount "+l.name)
		return func() { *l.log = append(*l.log, "unmount "+l.name) }
	})
	return vdom.Text(l.name)
}

func TestChildrenMountAndUnmount(t *testing.T) {
	var log []string
	show := reactive.NewSignal(true)
	root := vdom.Func(func() *vdom.VNode {
		return vdom.Div(
			vdom.Mount(lifecycle{name: "a", log: &log}),
			vdom.If(show.Get(), vdom.Mount(lifecycle{name: "b", log: &log})),
		)
	})
	tree := mount(t, root)

	if got := vdom.TextContent(tree.Output()); got != "ab" {
		t.Fatalf("text = %q", got)
	}
	if err := tree.Update(func() { show.Set(false) }); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(tree.Output()); got != "a" {
		t.Fatalf("text = %q", got)
	}
	tree.Close()

	want := []string{"mount a", "mount b", "unmount b", "unmount a"}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if tree.Stats().Instances != 0 {
		t.Errorf("instances after close = %d", tree.Stats().Instances)
	}
	if err := tree.Flush(); !stderrors.Is(err, ErrTreeClosed) {
		t.Errorf("Flush after close = %v", err)
	}
}

func TestStatePreservedAcrossParentRender(t *testing.T) {
	tick := reactive.NewSignal(0)
	root := vdom.Func(func() *vdom.VNode {
		return vdom.Div(vdom.Text(fmt.Sprintf("%d", tick.Get())), vdom.Mount(counter{label: "c"}))
	})
	tree := mount(t, root)

	if err := tree.Dispatch("h1", "click", nil); err != nil {
		t.Fatal(err)
	}
	if err := tree.Update(func() { tick.Set(1) }); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(tree.Output()); got != "1c:1" {
		t.Errorf("text = %q, child state lost", got)
	}
}

func TestKeyedChildrenKeepState(t *testing.T) {
	order := reactive.NewSignal([]string{"x", "y"})
	root := vdom.Func(func() *vdom.VNode {
		var items []any
		for _, k := range order.Get() {
			items = append(items, vdom.MountKeyed(k, counter{label: k}))
		}
		return vdom.Div(items...)
	})
	tree := mount(t, root)

	// Click "y" twice.
	for i := 0; i < 2; i++ {
		if err := tree.Dispatch("h2", "click", nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := tree.Update(func() { order.Set([]string{"y", "x"}) }); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(tree.Output()); got != "y:2x:0" {
		t.Errorf("text = %q", got)
	}
}

func TestIdentityChangeRemounts(t *testing.T) {
	var log []string
	swap := reactive.NewSignal(false)
	a := vdom.Func(func() *vdom.VNode {
		reactive.OnUnmount(func() { log = append(log, "a gone") })
		return vdom.Text("a")
	})
	b := vdom.Func(func() *vdom.VNode { return vdom.Text("b") })
	root := vdom.Func(func() *vdom.VNode {
		if swap.Get() {
			return vdom.Mount(b)
		}
		return vdom.Mount(a)
	})
	tree := mount(t, root)
	if err := tree.Update(func() { swap.Set(true) }); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(tree.Output()); got != "b" || len(log) != 1 {
		t.Errorf("text = %q log = %v", got, log)
	}
}

func TestEffectLoopHitsUpdateDepth(t *testing.T) {
	n := reactive.NewSignal(0)
	root := vdom.Func(func() *vdom.VNode {
		v := n.Get()
		reactive.UseEffect(func() reactive.Cleanup {
			n.Set(v + 1)
			return nil
		}, v)
		return vdom.Text(fmt.Sprintf("%d", v))
	})
	tree, err := Mount(context.Background(), root, WithMaxPasses(5))
	if !stderrors.Is(err, ErrUpdateDepth) {
		t.Fatalf("err = %v, want ErrUpdateDepth", err)
	}
	defer tree.Close()
	if tree.Root().Renders() != 5 {
		t.Errorf("renders = %d, want 5", tree.Root().Renders())
	}
}

func TestEffectsCommitChildrenFirst(t *testing.T) {
	var log []string
	child := vdom.Func(func() *vdom.VNode {
		reactive.OnMount(func() { log = append(log, "child") })
		return nil
	})
	root := vdom.Func(func() *vdom.VNode {
		reactive.OnMount(func() { log = append(log, "parent") })
		return vdom.Div(vdom.Mount(child))
	})
	mount(t, root)
	if fmt.Sprint(log) != "[child parent]" {
		t.Errorf("log = %v", log)
	}
}

func TestPanickingMountRunsCleanups(t *testing.T) {
	cleaned := false
	explode := reactive.NewSignal(false)
	boom := vdom.Func(func() *vdom.VNode {
		if explode.Get() {
			panic("boom")
		}
		return nil
	})
	root := vdom.Func(func() *vdom.VNode {
		reactive.UseEffect(func() reactive.Cleanup {
			explode.Set(true)
			return func() { cleaned = true }
		})
		return vdom.Mount(boom)
	})

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("recover() = %v", r)
			}
		}()
		_, _ = Mount(context.Background(), root)
	}()
	if !cleaned {
		t.Error("cleanup did not run after panic")
	}
}

func TestMountNil(t *testing.T) {
	if _, err := Mount(context.Background(), nil); !stderrors.Is(err, ErrNilComponent) {
		t.Errorf("err = %v", err)
	}
}

func TestRootValue(t *testing.T) {
	var got any
	root := vdom.Func(func() *vdom.VNode {
		got, _ = reactive.CurrentOwner().Value("theme")
		return nil
	})
	mount(t, root, WithRootValue("theme", "dark"))
	if got != "dark" {
		t.Errorf("root value = %v", got)
	}
}

func TestSameNodeSkipsChildRender(t *testing.T) {
	tick := reactive.NewSignal(0)
	renders := 0
	child := vdom.Mount(vdom.Func(func() *vdom.VNode {
		renders++
		return vdom.Span("child")
	}))
	root := vdom.Func(func() *vdom.VNode {
		return vdom.Div(vdom.Text(fmt.Sprint(tick.Get())), child)
	})
	tree := mount(t, root)

	for i := 1; i <= 3; i++ {
		if err := tree.Update(func() { tick.Set(i) }); err != nil {
			t.Fatal(err)
		}
	}
	if got := vdom.TextContent(tree.Output()); got != "3child" {
		t.Errorf("text = %q", got)
	}
	if renders != 1 {
		t.Errorf("child renders = %d, want 1", renders)
	}
}

func TestFreshNodeRendersChild(t *testing.T) {
	tick := reactive.NewSignal(0)
	renders := 0
	child := vdom.Func(func() *vdom.VNode {
		renders++
		return nil
	})
	root := vdom.Func(func() *vdom.VNode {
		tick.Get()
		return vdom.Mount(child)
	})
	tree := mount(t, root)
	if err := tree.Update(func() { tick.Set(1) }); err != nil {
		t.Fatal(err)
	}
	if renders != 2 {
		t.Errorf("child renders = %d, want 2", renders)
	}
}

func TestContextChangeRendersSameNode(t *testing.T) {
	ctx := reactive.CreateContext("n", 0)
	value := reactive.NewSignal(1)
	// The consumer sits below an intermediate component, and both nodes
	// are reused on every render.
	consumer := vdom.Mount(vdom.Func(func() *vdom.VNode {
		return vdom.Span(fmt.Sprint(ctx.Use()))
	}))
	middle := vdom.Mount(vdom.Func(func() *vdom.VNode {
		return vdom.Div(consumer)
	}))
	root := vdom.Func(func() *vdom.VNode {
		return ctx.Provider(value.Get(), middle)
	})
	tree := mount(t, root)
	if got := vdom.TextContent(tree.Output()); got != "1" {
		t.Fatalf("text = %q", got)
	}
	if err := tree.Update(func() { value.Set(2) }); err != nil {
		t.Fatal(err)
	}
	if got := vdom.TextContent(tree.Output()); got != "2" {
		t.Errorf("text = %q, want 2", got)
	}
}
