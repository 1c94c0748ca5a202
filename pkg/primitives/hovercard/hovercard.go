// Package hovercard shows a preview card while the pointer rests on (or
// keyboard focus is in) a trigger. On native, where there is no hover, a
// press toggles the card.
package hovercard

import (
	"fmt"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/primitives/overlay"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/primitives/slot"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Default delays in milliseconds.
const (
	DefaultOpenDelay  = 700
	DefaultCloseDelay = 300
)

// RootContext is the state a Root shares with its parts.
type RootContext struct {
	Open         bool
	OnOpenChange func(bool)

	OpenDelay  int
	CloseDelay int
	ContentID  string
}

var rootContext = reactive.CreateContext[*RootContext]("hovercard.Root", nil)

// UseRootContext returns the enclosing Root's state. It panics outside a
// Root.
func UseRootContext() *RootContext {
	ctx := rootContext.Use()
	if ctx == nil {
		panic(errors.New(errors.CodeOutsideRoot).
			WithDetail("HoverCard compound components cannot be rendered outside the HoverCard component"))
	}
	return ctx
}

// Root holds the open state. The card starts closed.
type Root struct {
	// OpenDelay and CloseDelay are in milliseconds. The client applies
	// them; they are rendered as data attributes.
	OpenDelay  int
	CloseDelay int

	OnOpenChange func(bool)

	AsChild  bool
	Attrs    []any
	Children []any
}

func (r Root) Render() *vdom.VNode {
	os := platform.Use()
	open := reactive.UseSignal(false)
	id := reactive.UseID()

	openDelay, closeDelay := r.OpenDelay, r.CloseDelay
	if openDelay <= 0 {
		openDelay = DefaultOpenDelay
	}
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}

	onChange := r.OnOpenChange
	ctx := &RootContext{
		Open: open.Get(),
		OnOpenChange: func(v bool) {
			if v == open.Peek() {
				return
			}
			open.Set(v)
			if onChange != nil {
				onChange(v)
			}
		},
		OpenDelay:  openDelay,
		CloseDelay: closeDelay,
		ContentID:  id + "-content",
	}
	own := platform.View(os, r.Attrs, r.Children)
	return rootContext.Provider(ctx, slot.Apply(r.AsChild, own))
}

// Trigger opens the card on hover or focus (web) or toggles it on press
// (native).
type Trigger struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (t Trigger) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()

	show := func() { ctx.OnOpenChange(true) }
	hide := func() { ctx.OnOpenChange(false) }

	args := []any{
		vdom.Data("state", overlay.State(ctx.Open)),
		vdom.Data("open-delay", fmt.Sprint(ctx.OpenDelay)),
		vdom.Data("close-delay", fmt.Sprint(ctx.CloseDelay)),
		vdom.AriaExpanded(ctx.Open),
		vdom.AriaControls(ctx.ContentID),
	}
	if os.IsNative() {
		args = append(args, platform.OnPress(os, func() { ctx.OnOpenChange(!ctx.Open) }))
	} else {
		args = append(args,
			vdom.OnPointerEnter(show),
			vdom.OnPointerLeave(hide),
			vdom.OnFocus(show),
			vdom.OnBlur(hide),
		)
	}

	var own *vdom.VNode
	if os.IsNative() {
		own = platform.Pressable(os, args, t.Attrs, t.Children)
	} else {
		own = vdom.A(args, t.Attrs, t.Children)
	}
	return slot.Apply(t.AsChild, own)
}

// Portal renders the card outside the Root.
type Portal struct {
	HostName   string
	Container  string
	ForceMount bool
	Children   []any
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

// Overlay sits behind the card. Pressing it closes the card unless
// KeepOpen is set.
type Overlay struct {
	OnPress    func()
	KeepOpen   bool
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
	press := func() {
		if o.OnPress != nil {
			o.OnPress()
		}
		if !o.KeepOpen {
			ctx.OnOpenChange(false)
		}
	}
	own := platform.Pressable(os,
		vdom.Data("state", overlay.State(ctx.Open)),
		vdom.Data("part", "overlay"),
		platform.OnPress(os, press),
		o.Attrs,
		o.Children,
	)
	return slot.Apply(o.AsChild, own)
}

// Side is the preferred side of the trigger to render against.
type Side string

const (
	Top    Side = "top"
	Right  Side = "right"
	Bottom Side = "bottom"
	Left   Side = "left"
)

// Align is the preferred alignment against the trigger.
type Align string

const (
	Start  Align = "start"
	Center Align = "center"
	End    Align = "end"
)

// Insets is the collision padding in pixels.
type Insets struct {
	Top, Right, Bottom, Left float64
}

func (i Insets) String() string {
	return fmt.Sprintf("%v %v %v %v", i.Top, i.Right, i.Bottom, i.Left)
}

// Content is the card. Positioning options are passed to the client as
// data attributes; layout itself is not computed here.
type Content struct {
	Side        Side
	Align       Align
	SideOffset  float64
	AlignOffset float64

	// AvoidCollisions defaults to true when nil.
	AvoidCollisions *bool
	Insets          Insets

	// Sticky is "partial" (default) or "always".
	Sticky           string
	HideWhenDetached bool

	ForceMount bool
	AsChild    bool
	Attrs      []any
	Children   []any
}

func (c Content) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	if !ctx.Open && !c.ForceMount {
		return nil
	}

	side, align, sticky := c.Side, c.Align, c.Sticky
	if side == "" {
		side = Bottom
	}
	if align == "" {
		align = Center
	}
	if sticky == "" {
		sticky = "partial"
	}
	avoid := c.AvoidCollisions == nil || *c.AvoidCollisions

	args := []any{
		vdom.ID(ctx.ContentID),
		vdom.Data("state", overlay.State(ctx.Open)),
		vdom.Data("side", string(side)),
		vdom.Data("align", string(align)),
		vdom.Data("side-offset", vdom.AttrString(c.SideOffset)),
		vdom.Data("align-offset", vdom.AttrString(c.AlignOffset)),
		vdom.Data("avoid-collisions", vdom.AttrString(avoid)),
		vdom.Data("collision-padding", c.Insets.String()),
		vdom.Data("sticky", sticky),
		vdom.Data("hide-when-detached", vdom.AttrString(c.HideWhenDetached)),
	}
	if !os.IsNative() {
		args = append(args,
			vdom.OnPointerEnter(func() { ctx.OnOpenChange(true) }),
			vdom.OnPointerLeave(func() { ctx.OnOpenChange(false) }),
		)
	}
	own := platform.View(os, args, c.Attrs, c.Children)
	return slot.Apply(c.AsChild, own)
}
