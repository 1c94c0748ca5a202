package reactive

import "fmt"

// Ref holds a mutable value that survives re-renders without triggering them.
type Ref[T any] struct {
	Current T
}

// UseRef returns the same *Ref on every render of the calling component.
// initial is used on the first render only.
func UseRef[T any](initial T) *Ref[T] {
	o := mustOwner("UseRef")
	o.TrackHook(HookRef)
	return useSlot(o, func() *Ref[T] {
		return &Ref[T]{Current: initial}
	})
}

// UseID returns an identifier that is unique within the process and stable
// for the lifetime of the calling component. It is suitable for id and
// aria-* attributes.
func UseID() string {
	o := mustOwner("UseID")
	o.TrackHook(HookID)
	return useSlot(o, func() string {
		return fmt.Sprintf("p%d", nextID())
	})
}
