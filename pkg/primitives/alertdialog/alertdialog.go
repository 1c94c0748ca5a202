// Package alertdialog is a modal dialog that interrupts the user with
// important content and expects a response.
//
// Parts: Root, Trigger, Portal, Overlay, Content, Title, Description,
// Cancel and Action. Every part other than Root must render inside a Root.
//
//	vdom.Mount(alertdialog.Root{Children: []any{
//	    vdom.Mount(alertdialog.Trigger{Children: []any{"Delete"}}),
//	    vdom.Mount(alertdialog.Portal{Children: []any{
//	        vdom.Mount(alertdialog.Overlay{}),
//	        vdom.Mount(alertdialog.Content{Children: []any{...}}),
//	    }}),
//	}})
package alertdialog

import (
	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/primitives/controllable"
	"github.com/vango-dev/primitives/pkg/primitives/overlay"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/primitives/slot"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// RootContext is the state a Root shares with its parts.
type RootContext struct {
	Open         bool
	OnOpenChange func(bool)

	ContentID     string
	TitleID       string
	DescriptionID string
}

var rootContext = reactive.CreateContext[*RootContext]("alertdialog.Root", nil)

// UseRootContext returns the enclosing Root's state. It panics outside a
// Root.
//
// This is a hook: call it unconditionally during render.
func UseRootContext() *RootContext {
	ctx := rootContext.Use()
	if ctx == nil {
		panic(errors.New(errors.CodeOutsideRoot).
			WithDetail("AlertDialog compound components cannot be rendered outside the AlertDialog component"))
	}
	return ctx
}

// Root holds the open state.
type Root struct {
	// Open makes the dialog controlled when non-nil.
	Open        *bool
	DefaultOpen bool

	// OnOpenChange is called whenever a part asks to open or close.
	OnOpenChange func(bool)

	AsChild  bool
	Attrs    []any
	Children []any
}

func (r Root) Render() *vdom.VNode {
	os := platform.Use()
	open, setOpen := controllable.UseState(r.Open, r.DefaultOpen, r.OnOpenChange)
	id := reactive.UseID()

	ctx := &RootContext{
		Open:          open,
		OnOpenChange:  setOpen,
		ContentID:     id + "-content",
		TitleID:       id + "-title",
		DescriptionID: id + "-description",
	}
	own := platform.View(os, r.Attrs, r.Children)
	return rootContext.Provider(ctx, slot.Apply(r.AsChild, own))
}

// Trigger opens the dialog.
type Trigger struct {
	OnPress  func()
	Disabled bool
	AsChild  bool
	Attrs    []any
	Children []any
}

func (t Trigger) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()

	var press func()
	if !t.Disabled {
		press = func() {
			if t.OnPress != nil {
				t.OnPress()
			}
			ctx.OnOpenChange(!ctx.Open)
		}
	}
	own := platform.Pressable(os,
		vdom.Role("button"),
		vdom.AriaHasPopup("dialog"),
		vdom.AriaExpanded(ctx.Open),
		vdom.AriaControls(ctx.ContentID),
		vdom.Data("state", overlay.State(ctx.Open)),
		disabled(t.Disabled),
		platform.OnPress(os, press),
		t.Attrs,
		t.Children,
	)
	return slot.Apply(t.AsChild, own)
}

// Portal renders its children outside the Root: into Container on web
// (default "body") or into the portal host HostName on native.
type Portal struct {
	HostName  string
	Container string

	// ForceMount keeps the children mounted while closed.
	ForceMount bool

	Children []any
}

func (p Portal) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	if !ctx.Open && !p.ForceMount {
		return nil
	}
	return overlay.Render(os,
		overlay.Target{HostName: p.HostName, Container: p.Container, Name: ctx.ContentID},
		func(children ...any) *vdom.VNode {
			return rootContext.Provider(ctx, children...)
		},
		p.Children...,
	)
}

// Overlay covers the page behind the dialog. Pressing it does nothing:
// an alert dialog has to be answered.
type Overlay struct {
	ForceMount bool
	AsChild    bool
	Attrs      []any
	Children   []any
}

func (o Overlay) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	if !ctx.Open && !o.ForceMount {
		return nil
	}
	own := platform.View(os,
		vdom.Data("state", overlay.State(ctx.Open)),
		vdom.Data("part", "overlay"),
		o.Attrs,
		o.Children,
	)
	return slot.Apply(o.AsChild, own)
}

// Content is the dialog itself.
type Content struct {
	ForceMount bool

	// OnEscapeKeyDown runs before the dialog closes on Escape (web only).
	OnEscapeKeyDown func()

	AsChild  bool
	Attrs    []any
	Children []any
}

func (c Content) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	if !ctx.Open && !c.ForceMount {
		return nil
	}

	var keydown vdom.EventHandler
	if !os.IsNative() {
		keydown = vdom.OnKeyDown(func(key string) {
			if key != "Escape" {
				return
			}
			if c.OnEscapeKeyDown != nil {
				c.OnEscapeKeyDown()
			}
			ctx.OnOpenChange(false)
		})
	}

	own := platform.View(os,
		vdom.ID(ctx.ContentID),
		vdom.Role("alertdialog"),
		vdom.AriaModal(true),
		vdom.AriaLabelledBy(ctx.TitleID),
		vdom.AriaDescribedBy(ctx.DescriptionID),
		vdom.Data("state", overlay.State(ctx.Open)),
		vdom.TabIndex(-1),
		keydown,
		c.Attrs,
		c.Children,
	)
	return slot.Apply(c.AsChild, own)
}

// Title labels the dialog.
type Title struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (t Title) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	var own *vdom.VNode
	if os.IsNative() {
		own = platform.Text(os, vdom.ID(ctx.TitleID), vdom.Role("heading"), t.Attrs, t.Children)
	} else {
		own = vdom.H2(vdom.ID(ctx.TitleID), t.Attrs, t.Children)
	}
	return slot.Apply(t.AsChild, own)
}

// Description describes the dialog.
type Description struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (d Description) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	var own *vdom.VNode
	if os.IsNative() {
		own = platform.Text(os, vdom.ID(ctx.DescriptionID), d.Attrs, d.Children)
	} else {
		own = vdom.P(vdom.ID(ctx.DescriptionID), d.Attrs, d.Children)
	}
	return slot.Apply(d.AsChild, own)
}

// Cancel closes the dialog without taking the action.
type Cancel struct {
	OnPress  func()
	Disabled bool
	AsChild  bool
	Attrs    []any
	Children []any
}

func (c Cancel) Render() *vdom.VNode {
	return closer(c.OnPress, c.Disabled, c.AsChild, "cancel", c.Attrs, c.Children)
}

// Action confirms the dialog and closes it.
type Action struct {
	OnPress  func()
	Disabled bool
	AsChild  bool
	Attrs    []any
	Children []any
}

func (a Action) Render() *vdom.VNode {
	return closer(a.OnPress, a.Disabled, a.AsChild, "action", a.Attrs, a.Children)
}

// closer renders Cancel and Action: both run OnPress, then toggle.
func closer(onPress func(), isDisabled, asChild bool, part string, attrs, children []any) *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()

	var press func()
	if !isDisabled {
		press = func() {
			if onPress != nil {
				onPress()
			}
			ctx.OnOpenChange(!ctx.Open)
		}
	}
	own := platform.Pressable(os,
		vdom.Role("button"),
		vdom.Data("part", part),
		disabled(isDisabled),
		platform.OnPress(os, press),
		attrs,
		children,
	)
	return slot.Apply(asChild, own)
}

func disabled(d bool) vdom.Attr {
	if !d {
		return vdom.Attr{}
	}
	return vdom.Disabled(true)
}
