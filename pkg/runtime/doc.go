// Package runtime mounts component trees and keeps them up to date.
//
// A Tree owns one root component. Each component gets an Instance with its
// own reactive.Owner, so hooks, effects and context values are scoped to it.
// Rendering happens in passes: dirty instances re-render (re-rendering their
// whole subtree), child components are reconciled by position or key, and
// then effects are committed in two phases:
//
//  1. removed instances are disposed, which runs all of their cleanups
//  2. every pending effect's previous cleanup runs
//  3. every pending effect body runs, children before parents
//
// Effects that write signals schedule another pass. A tree gives up after
// WithMaxPasses passes and returns ErrUpdateDepth.
//
// A Tree is safe for use from multiple goroutines. Every mutation runs under
// the tree's lock, one at a time.
package runtime
