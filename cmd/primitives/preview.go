package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/internal/preview"
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/render/termview"
)

func previewCmd(a *app) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "preview <story>",
		Short: "Preview a story interactively in the terminal",
		Long: `Mount a story and drive it from the keyboard.

Keys:
  tab, shift+tab   move focus
  enter, space     press
  arrows           adjust a slider
  esc              close a dialog (web)
  q                quit`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return gallery.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := gallery.Lookup(args[0])
			if err != nil {
				return err
			}
			target, err := a.backend(backend)
			if err != nil {
				return err
			}
			tree, err := story.Mount(cmd.Context(), target, a.galleryOptions(portal.NewCollector("preview")))
			if err != nil {
				return err
			}
			defer tree.Close()
			return preview.Run(cmd.Context(), tree, target, story.Title, termview.Options{TrackWidth: a.cfg.Render.TrackWidth})
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "backend: web or native (default from config)")
	return cmd
}
