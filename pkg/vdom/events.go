package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On creates a handler for an arbitrary event name ("press", "valuechange").
func On(name string, handler any) EventHandler { return event(name, handler) }

// Mouse and pointer events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnPointerEnter handles pointerenter events.
func OnPointerEnter(handler any) EventHandler { return event("pointerenter", handler) }

// OnPointerLeave handles pointerleave events.
func OnPointerLeave(handler any) EventHandler { return event("pointerleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events. The handler receives the key name.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// Focus events

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// Native events

// OnPress handles native press events.
func OnPress(handler any) EventHandler { return event("press", handler) }
