package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/primitives/pkg/render"
	"github.com/vango-dev/primitives/pkg/runtime"
)

// Event is one client event on a live session.
type Event struct {
	HID   string `json:"hid"`
	Event string `json:"event"`
	Value any    `json:"value"`
}

const writeWait = 10 * time.Second

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	story, os, ok := s.resolve(w, r)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		s.logger.Debug("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	tree, err := story.Mount(r.Context(), os, s.config.Gallery)
	if err != nil {
		s.closeWith(conn, websocket.CloseInternalServerErr, err.Error())
		return
	}
	defer tree.Close()

	s.metrics.LiveSessionStarted()
	defer s.metrics.LiveSessionEnded()
	log := s.logger.With("story", story.Name, "backend", string(os))
	log.Debug("live session started")

	renderer := render.NewRenderer(render.Config{})
	if err := s.sendFrame(conn, renderer, tree); err != nil {
		log.Debug("initial frame failed", "error", err)
		return
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("live session read ended", "error", err)
			}
			return
		}

		err := tree.Dispatch(ev.HID, ev.Event, ev.Value)
		s.metrics.LiveEvent(ev.Event, err)
		switch {
		case err == nil:
		case stderrors.Is(err, runtime.ErrNoHandler), stderrors.Is(err, runtime.ErrHandlerType):
			// Stale or bogus events from the client are dropped.
			log.Debug("event dropped", "hid", ev.HID, "event", ev.Event, "error", err)
			continue
		default:
			log.Warn("event failed", "hid", ev.HID, "event", ev.Event, "error", err)
			s.closeWith(conn, websocket.CloseInternalServerErr, "render failed")
			return
		}

		if err := s.sendFrame(conn, renderer, tree); err != nil {
			log.Debug("frame failed", "error", err)
			return
		}
	}
}

func (s *Server) sendFrame(conn *websocket.Conn, renderer *render.Renderer, tree *runtime.Tree) error {
	html, err := renderer.RenderToString(tree.Output())
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, []byte(html))
}

func (s *Server) closeWith(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
