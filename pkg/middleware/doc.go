// Package middleware provides the preview server's HTTP middleware:
// Prometheus request and live-session metrics, OpenTelemetry spans and
// slog request logging.
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(), middleware.Logger(logger), m.Handler)
//
// Route labels use the chi route pattern ("/stories/{story}"), not the raw
// path, so label cardinality stays bounded.
package middleware
