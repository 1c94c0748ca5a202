// Package controllable lets a primitive's state be owned by the caller
// (controlled) or by the primitive itself (uncontrolled).
package controllable

import "github.com/vango-dev/primitives/pkg/reactive"

// UseState returns the current value and a setter.
//
// When prop is non-nil the state is controlled: the value is *prop and the
// setter only reports changes through onChange. Otherwise the state lives
// in the component, starting at defaultValue, and onChange is called after
// each change. onChange may be nil.
//
// This is a hook: call it unconditionally during render.
func UseState[T comparable](prop *T, defaultValue T, onChange func(T)) (T, func(T)) {
	sig := reactive.UseSignal(defaultValue)
	latest := reactive.UseRef[func(T)](nil)
	latest.Current = onChange

	if prop != nil {
		current := *prop
		return current, func(v T) {
			if v != current && latest.Current != nil {
				latest.Current(v)
			}
		}
	}

	return sig.Get(), func(v T) {
		if v == sig.Peek() {
			return
		}
		sig.Set(v)
		if latest.Current != nil {
			latest.Current(v)
		}
	}
}
