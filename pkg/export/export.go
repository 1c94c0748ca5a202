// Package export renders every gallery story for every backend as a
// static HTML page and writes it to a Store: a local directory or an S3
// bucket.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/render"
)

const contentType = "text/html; charset=utf-8"

// Options configure Export.
type Options struct {
	// Prefix is prepended to every key.
	Prefix string

	// Stories defaults to every registered story.
	Stories []gallery.Story

	// Backends defaults to platform.All.
	Backends []platform.OS

	Gallery gallery.Options
	Logger  *slog.Logger
}

// Key returns the object key for a story page.
func Key(prefix, story string, os platform.OS) string {
	return path.Join(prefix, story, string(os)+".html")
}

// Export writes one page per story and backend, plus an index, and
// returns the keys written in order.
func Export(ctx context.Context, store Store, opts Options) ([]string, error) {
	stories := opts.Stories
	if stories == nil {
		stories = gallery.All()
	}
	backends := opts.Backends
	if backends == nil {
		backends = platform.All
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Gallery.Collector == nil {
		// Exported trees are short-lived; keep them off the process-wide
		// collector.
		opts.Gallery.Collector = portal.NewCollector("export")
	}

	var keys []string
	for _, s := range stories {
		for _, os := range backends {
			if err := ctx.Err(); err != nil {
				return keys, err
			}
			body, err := Page(ctx, s, os, opts.Gallery)
			if err != nil {
				return keys, fmt.Errorf("export %s/%s: %w", s.Name, os, err)
			}
			key := Key(opts.Prefix, s.Name, os)
			if err := store.Put(ctx, key, contentType, body); err != nil {
				return keys, err
			}
			logger.Info("exported story", "story", s.Name, "backend", os, "key", key, "bytes", len(body))
			keys = append(keys, key)
		}
	}

	index, err := Index(stories, backends)
	if err != nil {
		return keys, err
	}
	key := path.Join(opts.Prefix, "index.html")
	if err := store.Put(ctx, key, contentType, index); err != nil {
		return keys, err
	}
	return append(keys, key), nil
}

// Page renders a story as a static document.
func Page(ctx context.Context, s gallery.Story, os platform.OS, opts gallery.Options) ([]byte, error) {
	tree, err := s.Mount(ctx, os, opts)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var buf bytes.Buffer
	r := render.NewRenderer(render.Config{OmitHIDs: true, OmitEventMarkers: true})
	err = r.RenderDocument(&buf, render.Document{
		Title: s.Title + " (" + string(os) + ")",
		Body:  tree.Output(),
	})
	return buf.Bytes(), err
}

// Index renders a page linking every exported story. Links are relative
// to the index, which sits at the prefix root.
func Index(stories []gallery.Story, backends []platform.OS) ([]byte, error) {
	var buf bytes.Buffer
	err := render.NewRenderer(render.Config{}).RenderDocument(&buf, render.Document{
		Title: "Primitives gallery",
		Body:  indexBody(stories, backends),
	})
	return buf.Bytes(), err
}
