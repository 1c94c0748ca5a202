package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/render"
	"github.com/vango-dev/primitives/pkg/vdom"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem}` +
	`[data-portal-host],[data-host]{border:1px dashed #999;min-height:1.5rem;margin:.5rem 0;padding:.25rem}` +
	`[role=alertdialog],[data-side]{border:1px solid #333;padding:1rem;margin:.5rem 0}` +
	`[data-part=overlay]{background:#0003}`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sections := make([]any, 0)
	for _, st := range gallery.All() {
		links := make([]any, 0, len(platform.All))
		for _, os := range platform.All {
			links = append(links, vdom.Li(vdom.A(vdom.Href("/stories/"+st.Name+"?backend="+string(os)), string(os))))
		}
		sections = append(sections, vdom.Section(
			vdom.Data("story", st.Name),
			vdom.H3(st.Title),
			vdom.P(st.Description),
			vdom.Nav(vdom.Ul(links...)),
		))
	}
	body := vdom.Main(
		vdom.H1("Primitives"),
		sections,
		vdom.Footer(vdom.A(vdom.Href("/metrics"), "metrics")),
	)
	s.writeDocument(w, render.Document{Title: "Primitives", Body: body, Styles: []string{pageStyle}})
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	story, os, ok := s.resolve(w, r)
	if !ok {
		return
	}
	tree, err := story.Mount(r.Context(), os, s.config.Gallery)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer tree.Close()

	live := "/live/" + url.PathEscape(story.Name) + "?backend=" + string(os)
	s.writeDocument(w, render.Document{
		Title:   story.Title + " (" + string(os) + ")",
		Body:    tree.Output(),
		Styles:  []string{pageStyle},
		LiveURL: live,
	})
}

// resolve reads the story and backend of a request, writing the error
// response itself when either is unknown.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (gallery.Story, platform.OS, bool) {
	story, err := gallery.Lookup(chi.URLParam(r, "story"))
	if err != nil {
		s.fail(w, r, err)
		return gallery.Story{}, "", false
	}
	os := s.config.Backend
	if b := r.URL.Query().Get("backend"); b != "" {
		os, err = platform.ParseOS(b)
		if err != nil {
			s.fail(w, r, err)
			return gallery.Story{}, "", false
		}
	}
	return story, os, true
}

func (s *Server) writeDocument(w http.ResponseWriter, doc render.Document) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewRenderer(render.Config{}).RenderDocument(w, doc); err != nil {
		s.logger.Warn("render failed", "error", err)
	}
}

// fail maps an error to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	msg := err.Error()
	var e *errors.Error
	if stderrors.As(err, &e) {
		msg = e.FormatCompact()
	}
	http.Error(w, msg, status)
}

func statusFor(err error) int {
	var e *errors.Error
	switch {
	case stderrors.As(err, &e) && e.Code == errors.CodeUnknownStory:
		return http.StatusNotFound
	case stderrors.As(err, &e) && e.Code == errors.CodeUnknownBackend:
		return http.StatusBadRequest
	case stderrors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}
