// Package overlay renders content outside its parent: a teleport on web,
// a portal registration on native.
package overlay

import (
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// DefaultContainer is the web teleport target when none is given.
const DefaultContainer = "body"

// Target says where overlay content goes.
type Target struct {
	// HostName is the portal host used on native. Empty means
	// portal.DefaultHost.
	HostName string

	// Container is the teleport container used on web. Empty means
	// DefaultContainer.
	Container string

	// Name identifies the content within the native host.
	Name string
}

// Render moves children to t. Context does not follow content rendered by
// a native Host, so reprovide wraps the payload with whatever contexts the
// children need; it may be nil.
func Render(os platform.OS, t Target, reprovide func(children ...any) *vdom.VNode, children ...any) *vdom.VNode {
	if !os.IsNative() {
		container := t.Container
		if container == "" {
			container = DefaultContainer
		}
		return vdom.Teleport(container, children...)
	}

	payload := platform.Provider(os, children...)
	if reprovide != nil {
		payload = reprovide(payload)
	}
	return vdom.Mount(portal.Portal{
		Name:     t.Name,
		Host:     t.HostName,
		Children: []any{payload},
	})
}

// State returns the data-state value for an open flag.
func State(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
