// Package platform selects the rendering backend for primitives and maps
// the backend-neutral View, Text and Pressable elements onto it.
package platform

import (
	"strings"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// OS is a rendering backend.
type OS string

const (
	// Web renders HTML elements.
	Web OS = "web"

	// Native renders View, Text and Pressable elements.
	Native OS = "native"
)

// All lists the supported backends.
var All = []OS{Web, Native}

// ParseOS parses a backend name. The empty string means Web.
func ParseOS(s string) (OS, error) {
	switch OS(strings.ToLower(strings.TrimSpace(s))) {
	case "", Web:
		return Web, nil
	case Native:
		return Native, nil
	}
	return "", errors.New(errors.CodeUnknownBackend).WithMessage("Unknown backend %q", s)
}

var osContext = reactive.CreateContext("platform.OS", Web)

// Provider renders children for backend os.
func Provider(os OS, children ...any) *vdom.VNode {
	return osContext.Provider(os, children...)
}

// Use returns the backend of the nearest Provider, Web by default.
//
// This is a hook: call it unconditionally during render.
func Use() OS {
	return osContext.Use()
}

// IsNative reports whether os is the native backend.
func (os OS) IsNative() bool {
	return os == Native
}

// View is a layout container: <div> on web, <View> on native.
func View(os OS, args ...any) *vdom.VNode {
	if os.IsNative() {
		return vdom.CustomElement("View", args...)
	}
	return vdom.Div(args...)
}

// Text is inline text: <span> on web, <Text> on native.
func Text(os OS, args ...any) *vdom.VNode {
	if os.IsNative() {
		return vdom.CustomElement("Text", args...)
	}
	return vdom.Span(args...)
}

// Pressable is a pressable element: <button type="button"> on web,
// <Pressable> on native.
func Pressable(os OS, args ...any) *vdom.VNode {
	if os.IsNative() {
		return vdom.CustomElement("Pressable", args...)
	}
	return vdom.Button(append([]any{vdom.Type("button")}, args...)...)
}

// OnPress attaches a press handler: click on web, press on native.
func OnPress(os OS, fn func()) vdom.EventHandler {
	if fn == nil {
		return vdom.EventHandler{}
	}
	if os.IsNative() {
		return vdom.OnPress(fn)
	}
	return vdom.OnClick(fn)
}

// AccessibilityRole sets the native accessibilityRole prop. It is
// ignored on web.
func AccessibilityRole(os OS, role string) vdom.Attr {
	if !os.IsNative() {
		return vdom.Attr{}
	}
	return vdom.Prop("accessibilityRole", role)
}

// AccessibilityValue is the native accessibilityValue prop of range
// controls.
type AccessibilityValue struct {
	Min, Max, Now float64
}

// String formats the value as "min=0 max=100 now=50".
func (v AccessibilityValue) String() string {
	return "min=" + vdom.AttrString(v.Min) + " max=" + vdom.AttrString(v.Max) + " now=" + vdom.AttrString(v.Now)
}

// AccessibilityValueAttr sets the native accessibilityValue prop. It is
// ignored on web.
func AccessibilityValueAttr(os OS, v AccessibilityValue) vdom.Attr {
	if !os.IsNative() {
		return vdom.Attr{}
	}
	return vdom.Prop("accessibilityValue", v)
}
