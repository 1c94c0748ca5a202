package errors

import "sort"

// Registered error codes.
const (
	// Portal errors (P001-P099)
	CodeNoProvider  = "P001"
	CodeOutsideRoot = "P002"
	CodeReleased    = "P003"

	// Runtime errors (R001-R099)
	CodeUpdateDepth  = "R001"
	CodeNoHandler    = "R002"
	CodeTreeClosed   = "R003"
	CodeHookOutside  = "R004"
	CodeHandlerType  = "R005"
	CodeRenderPanic  = "R006"
	CodeNilComponent = "R007"

	// Gallery errors (G001-G099)
	CodeUnknownStory   = "G001"
	CodeUnknownBackend = "G002"

	// Config errors (C001-C099)
	CodeInvalidConfig = "C001"
	CodeConfigRead    = "C002"
)

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	CodeNoProvider: {
		Category: CategoryPortal,
		Message:  "Portal components must be used within a PortalProvider",
		Detail:   "A Portal or Host was rendered with no portal.Provider above it. Mount one Provider near the root of the tree.",
	},
	CodeOutsideRoot: {
		Category: CategoryPortal,
		Message:  "Compound component rendered outside its Root",
		Detail:   "Parts such as Trigger, Content or Track read state from their Root and must be rendered inside it.",
	},
	CodeReleased: {
		Category: CategoryPortal,
		Message:  "Portal registration already released",
		Detail:   "Update was called on a Registration after Release. Acquire a new registration instead.",
	},
	CodeUpdateDepth: {
		Category: CategoryRuntime,
		Message:  "Maximum update depth exceeded",
		Detail:   "Effects kept scheduling renders after the pass limit. Check for an effect that writes state it also depends on.",
	},
	CodeNoHandler: {
		Category: CategoryRuntime,
		Message:  "Handler not found",
		Detail:   "No element with this hydration ID handles the event. The tree may have re-rendered since the ID was issued.",
	},
	CodeTreeClosed: {
		Category: CategoryRuntime,
		Message:  "Tree closed",
		Detail:   "The component tree was unmounted and can no longer process updates.",
	},
	CodeHookOutside: {
		Category: CategoryRuntime,
		Message:  "Hook called outside component render",
		Detail:   "Hooks such as UseEffect, UseSignal and UseRef must be called while a component renders.",
	},
	CodeHandlerType: {
		Category: CategoryRuntime,
		Message:  "Unsupported handler type",
		Detail:   "Event handlers must be func(), func(string) or func(float64).",
	},
	CodeRenderPanic: {
		Category: CategoryRuntime,
		Message:  "Component panicked during render",
		Detail:   "The tree was disposed and every registered cleanup ran before the panic was reported.",
	},
	CodeNilComponent: {
		Category: CategoryRuntime,
		Message:  "Cannot mount a nil component",
	},
	CodeUnknownStory: {
		Category: CategoryGallery,
		Message:  "Unknown story",
	},
	CodeUnknownBackend: {
		Category: CategoryGallery,
		Message:  "Unknown backend",
		Detail:   "Supported backends are \"web\" and \"native\".",
	},
	CodeInvalidConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Failed to read configuration",
	},
}

// Codes returns all registered error codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template for a code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
