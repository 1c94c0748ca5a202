// Package render writes composed vdom trees as HTML.
//
// Output is deterministic: attributes are sorted, event handlers become
// data-on-<event> markers, and elements that carry a hydration ID get a
// data-hid attribute so a live client can address them.
//
// Teleport nodes are not written in place. Their children are buffered per
// container and emitted once, in first-use order, as
//
//	<div data-portal-container="body">...</div>
//
// after the rest of the output. Document places them at the end of <body>.
//
//	r := render.NewRenderer(render.Config{})
//	html, err := r.RenderToString(tree.Output())
package render
