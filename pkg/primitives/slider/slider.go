// Package slider is a single-thumb range input.
//
// Root carries the value and bounds; Track exposes them to assistive
// technology; Range draws the filled part; Thumb is the draggable handle
// and, on web, handles the keyboard.
package slider

import (
	"fmt"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/primitives/controllable"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/primitives/slot"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Direction is the reading direction.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// RootContext is the state a Root shares with its parts.
type RootContext struct {
	Bounds
	Value         float64
	Disabled      bool
	OnValueChange func(float64)
}

var rootContext = reactive.CreateContext[*RootContext]("slider.Root", nil)

// UseRootContext returns the enclosing Root's state. It panics outside a
// Root.
func UseRootContext() *RootContext {
	ctx := rootContext.Use()
	if ctx == nil {
		panic(errors.New(errors.CodeOutsideRoot).
			WithDetail("Slider compound components cannot be rendered outside the Slider component"))
	}
	return ctx
}

// Root holds the value.
type Root struct {
	// Value makes the slider controlled when non-nil.
	Value        *float64
	DefaultValue float64

	// Min and Max default to 0 and 100 when both are zero. Step defaults
	// to 1.
	Min, Max float64
	Step     float64

	Disabled bool
	Dir      Direction
	Inverted bool

	OnValueChange func(float64)

	AsChild  bool
	Attrs    []any
	Children []any
}

func (r Root) Render() *vdom.VNode {
	os := platform.Use()
	b := Bounds{Min: r.Min, Max: r.Max, Step: r.Step, Dir: r.Dir, Inverted: r.Inverted}.normalize()

	value, setValue := controllable.UseState(r.Value, b.Clamp(r.DefaultValue), r.OnValueChange)
	ctx := &RootContext{
		Bounds:   b,
		Value:    b.Clamp(value),
		Disabled: r.Disabled,
		OnValueChange: func(v float64) {
			if r.Disabled {
				return
			}
			setValue(b.Snap(v))
		},
	}

	args := []any{
		vdom.Role("group"),
		vdom.Data("orientation", "horizontal"),
	}
	if r.Disabled {
		args = append(args, vdom.Data("disabled", ""), vdom.AriaDisabled(true))
	}
	if !os.IsNative() {
		args = append(args, vdom.Prop("dir", string(b.Dir)))
	}
	own := platform.View(os, args, r.Attrs, r.Children)
	return rootContext.Provider(ctx, slot.Apply(r.AsChild, own))
}

// Track is the full extent of the slider.
type Track struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (t Track) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	own := platform.View(os,
		vdom.Role("slider"),
		vdom.AriaDisabled(ctx.Disabled),
		vdom.AriaValueMin(ctx.Min),
		vdom.AriaValueMax(ctx.Max),
		vdom.AriaValueNow(ctx.Value),
		platform.AccessibilityValueAttr(os, platform.AccessibilityValue{Min: ctx.Min, Max: ctx.Max, Now: ctx.Value}),
		vdom.Data("part", "track"),
		t.Attrs,
		t.Children,
	)
	return slot.Apply(t.AsChild, own)
}

// Range is the filled part of the track.
type Range struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (r Range) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()
	args := []any{
		vdom.Role("presentation"),
		vdom.Data("part", "range"),
	}
	if !os.IsNative() {
		start, end := ctx.edges()
		args = append(args, vdom.StyleAttr(fmt.Sprintf("%s: 0%%; %s: %s%%", start, end, vdom.AttrString(100-ctx.Percent(ctx.Value)))))
	}
	own := platform.View(os, args, r.Attrs, r.Children)
	return slot.Apply(r.AsChild, own)
}

// Thumb is the handle. On web it is focusable and moves with the arrow
// keys, Home, End, PageUp and PageDown. On native it answers the
// "increment" and "decrement" accessibility actions.
type Thumb struct {
	AsChild  bool
	Attrs    []any
	Children []any
}

func (t Thumb) Render() *vdom.VNode {
	os := platform.Use()
	ctx := UseRootContext()

	var args []any
	if os.IsNative() {
		args = append(args,
			platform.AccessibilityRole(os, "adjustable"),
			vdom.Data("part", "thumb"),
		)
		if !ctx.Disabled {
			args = append(args, vdom.On("accessibilityaction", func(action string) {
				if next, ok := ctx.Action(ctx.Value, action); ok {
					ctx.OnValueChange(next)
				}
			}))
		}
	} else {
		start, _ := ctx.edges()
		args = append(args,
			vdom.Role("slider"),
			vdom.TabIndex(0),
			vdom.AriaValueMin(ctx.Min),
			vdom.AriaValueMax(ctx.Max),
			vdom.AriaValueNow(ctx.Value),
			vdom.AriaOrientation("horizontal"),
			vdom.AriaDisabled(ctx.Disabled),
			vdom.Data("part", "thumb"),
			vdom.StyleAttr(fmt.Sprintf("%s: %s%%", start, vdom.AttrString(ctx.Percent(ctx.Value)))),
		)
		if !ctx.Disabled {
			args = append(args, vdom.OnKeyDown(func(key string) {
				if next, ok := ctx.Key(ctx.Value, key); ok {
					ctx.OnValueChange(next)
				}
			}))
		}
	}
	own := platform.View(os, args, t.Attrs, t.Children)
	return slot.Apply(t.AsChild, own)
}
