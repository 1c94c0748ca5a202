// Package server serves the story gallery over HTTP.
//
// Routes:
//
//	GET /                    index of stories
//	GET /stories/{story}     a story page; ?backend=web|native
//	GET /live/{story}        websocket: events in, HTML frames out
//	GET /metrics             Prometheus metrics
//	GET /healthz             liveness
//
// A live session mounts its own tree. The client sends JSON events
//
//	{"hid":"h3","event":"click","value":null}
//
// and after each event receives the re-rendered body as one text frame.
package server
