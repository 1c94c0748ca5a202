// Package gallery holds the demo stories served by the preview server, the
// terminal preview and the static exporter.
//
// A story is mounted inside a platform provider and a portal provider,
// with the default portal host rendered after the story, so the same story
// runs on both backends.
package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Story is a named demo.
type Story struct {
	Name        string
	Title       string
	Description string

	// New builds the story's root component.
	New func() vdom.Component
}

// Options configure Mount.
type Options struct {
	// Collector receives portal metrics. Nil means portal.DefaultCollector.
	Collector *portal.Collector

	// Scope options for the story's portal provider.
	Scope []portal.ScopeOption

	Logger  *slog.Logger
	Runtime []runtime.Option
}

var stories = map[string]Story{}

// Register adds a story. It panics on a duplicate name.
func Register(s Story) {
	if _, dup := stories[s.Name]; dup {
		panic(fmt.Sprintf("gallery: story %q registered twice", s.Name))
	}
	stories[s.Name] = s
}

// All returns every story sorted by name.
func All() []Story {
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every story name, sorted.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Name
	}
	return out
}

// maxSuggestDistance bounds how far a typo may be from a suggestion.
const maxSuggestDistance = 3

// Lookup returns the named story. Unknown names return a G001 error that
// suggests the closest story name.
func Lookup(name string) (Story, error) {
	if s, ok := stories[name]; ok {
		return s, nil
	}
	err := errors.New(errors.CodeUnknownStory).WithMessage("Unknown story %q", name)
	if best := suggest(name); best != "" {
		err = err.WithSuggestion(fmt.Sprintf("did you mean %q?", best))
	}
	return Story{}, err
}

func suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range Names() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Root wraps the story for backend os.
func (s Story) Root(os platform.OS, opts Options) vdom.Component {
	scopeOpts := opts.Scope
	if opts.Logger != nil {
		scopeOpts = append([]portal.ScopeOption{portal.WithLogger(opts.Logger)}, scopeOpts...)
	}
	build := s.New
	return vdom.Func(func() *vdom.VNode {
		return platform.Provider(os,
			vdom.Mount(portal.Provider{
				Options:   scopeOpts,
				Collector: opts.Collector,
				Children: []any{
					platform.View(os, vdom.Data("story", s.Name), vdom.MountKeyed(s.Name, build())),
					platform.View(os, vdom.Data("portal-host", portal.DefaultHost), vdom.Mount(portal.Host{})),
				},
			}),
		)
	})
}

// Mount mounts the story on a new runtime tree.
func (s Story) Mount(ctx context.Context, os platform.OS, opts Options) (*runtime.Tree, error) {
	ropts := opts.Runtime
	if opts.Logger != nil {
		ropts = append([]runtime.Option{runtime.WithLogger(opts.Logger)}, ropts...)
	}
	return runtime.Mount(ctx, s.Root(os, opts), ropts...)
}
