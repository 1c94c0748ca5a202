package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr, backend string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over HTTP",
		Long: `Serve the gallery. Every story page is live: events go to the server
over a websocket and the re-rendered page comes back.

Examples:
  primitives serve
  primitives serve --addr=:8080 --backend=native`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.backend(backend)
			if err != nil {
				return err
			}
			cfg := server.DefaultConfig()
			cfg.Addr = a.cfg.Server.Addr
			if addr != "" {
				cfg.Addr = addr
			}
			cfg.Backend = target
			cfg.Metrics = a.cfg.Server.Metrics
			cfg.Gallery = a.galleryOptions(nil)
			cfg.Logger = a.logger

			s, err := server.New(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	cmd.Flags().StringVarP(&backend, "backend", "b", "", "default backend: web or native")
	return cmd
}
