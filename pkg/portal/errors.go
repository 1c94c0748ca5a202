package portal

import "github.com/vango-dev/primitives/internal/errors"

var (
	// ErrNoProvider is raised (as a panic) when a Portal or Host renders
	// without a Provider above it.
	ErrNoProvider = errors.New(errors.CodeNoProvider)

	// ErrReleased is returned when updating a released Registration.
	ErrReleased = errors.New(errors.CodeReleased)
)
