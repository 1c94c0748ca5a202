// Package reactive provides the state primitives components are built on:
// owners (one per mounted component), signals, hooks stored in per-owner
// slots, effects with dependency lists, selectors and context.
//
// Hooks (UseSignal, UseEffect, UseRef, UseID, Select, Context.Use) must be
// called unconditionally while a component renders. The runtime package
// sets the current owner and listener around each render.
package reactive
