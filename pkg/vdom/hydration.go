package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// An element is interactive if it has event handlers (props starting with "on").
// Teleported subtrees are numbered where they appear in the tree.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			n.HID = gen.Next()
		}
		return true
	})
}

// FindByHID returns the node carrying hid, or nil.
func FindByHID(root *VNode, hid string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.HID == hid && hid != "" {
			found = n
			return false
		}
		return true
	})
	return found
}

// Interactive returns the interactive nodes of a tree in document order.
func Interactive(root *VNode) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if n.IsInteractive() {
			out = append(out, n)
		}
		return true
	})
	return out
}
