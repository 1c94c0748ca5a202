package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/middleware"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
)

// Config configures a Server.
type Config struct {
	Addr string

	// Backend is used when a request names none.
	Backend platform.OS

	// Metrics mounts /metrics.
	Metrics bool

	// Registry receives the server's metrics. Nil means a fresh registry.
	Registry *prometheus.Registry

	// Gallery options for every mounted story. A nil Collector is replaced
	// by one registered with Registry.
	Gallery gallery.Options

	// ReadTimeout bounds how long a live session waits for the next event.
	ReadTimeout time.Duration

	Logger *slog.Logger
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() Config {
	return Config{
		Addr:        ":7070",
		Backend:     platform.Web,
		Metrics:     true,
		ReadTimeout: 10 * time.Minute,
	}
}

// Server is the gallery server.
type Server struct {
	config   Config
	logger   *slog.Logger
	router   chi.Router
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	upgrader websocket.Upgrader
}

// New creates a Server.
func New(config Config) (*Server, error) {
	if config.Backend == "" {
		config.Backend = platform.Web
	}
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = DefaultConfig().ReadTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if config.Gallery.Collector == nil {
		config.Gallery.Collector = portal.NewCollector("primitives")
	}
	if err := config.Gallery.Collector.Register(registry); err != nil {
		return nil, err
	}
	if config.Gallery.Logger == nil {
		config.Gallery.Logger = logger
	}

	s := &Server{
		config:   config,
		logger:   logger,
		registry: registry,
		metrics:  middleware.NewMetrics(middleware.WithRegistry(registry)),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
		},
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Recoverer)
	r.Use(middleware.Tracing(), middleware.Logger(s.logger), s.metrics.Handler)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/stories/{story}", s.handleStory)
	r.Get("/live/{story}", s.handleLive)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the registry the server's metrics live in.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving gallery", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
