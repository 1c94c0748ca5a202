package runtime

import "github.com/vango-dev/primitives/internal/errors"

var (
	// ErrUpdateDepth is returned when a flush does not settle.
	ErrUpdateDepth = errors.New(errors.CodeUpdateDepth)

	// ErrNoHandler is returned by Dispatch for an unknown hydration ID or
	// an element without a handler for the event.
	ErrNoHandler = errors.New(errors.CodeNoHandler)

	// ErrTreeClosed is returned by operations on a closed Tree.
	ErrTreeClosed = errors.New(errors.CodeTreeClosed)

	// ErrHandlerType is returned when a handler has an unsupported signature.
	ErrHandlerType = errors.New(errors.CodeHandlerType)

	// ErrNilComponent is returned by Mount for a nil root.
	ErrNilComponent = errors.New(errors.CodeNilComponent)
)
