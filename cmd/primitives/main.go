// Command primitives serves, previews and exports the primitives gallery.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/config"
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every command, filled in before a command runs.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "primitives",
		Short: "Accessible UI primitives for web and native",
		Long: `primitives renders the component gallery: portals, alert dialogs,
hover cards and sliders, each for the web and the native backend.

Configuration is read from primitives.toml in the working directory,
overridden by PRIMITIVES_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		serveCmd(a),
		renderCmd(a),
		previewCmd(a),
		exportCmd(a),
		storiesCmd(a),
		initCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	if cmd.Name() == "init" || cmd.Name() == "version" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	level, err := a.cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// backend resolves a --backend flag, falling back to the configured one.
func (a *app) backend(flag string) (platform.OS, error) {
	if flag == "" {
		flag = a.cfg.Render.Backend
	}
	return platform.ParseOS(flag)
}

// galleryOptions applies the portal and runtime settings to story mounts.
func (a *app) galleryOptions(c *portal.Collector) gallery.Options {
	scope := []portal.ScopeOption{portal.WithLogger(a.logger)}
	if a.cfg.Portal.ReclaimEmptyHosts {
		scope = append(scope, portal.WithReclaimEmptyHosts())
	}
	return gallery.Options{
		Collector: c,
		Scope:     scope,
		Logger:    a.logger,
		Runtime: []runtime.Option{
			runtime.WithLogger(a.logger),
			runtime.WithMaxPasses(a.cfg.Portal.MaxPasses),
		},
	}
}

func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
