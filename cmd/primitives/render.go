package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/pkg/export"
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/render/termview"
)

func renderCmd(a *app) *cobra.Command {
	var backend, format string

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Render one story to stdout",
		Long: `Render a story once and print it, as a static HTML page or as
terminal text.

Examples:
  primitives render slider
  primitives render alert-dialog --backend=native --format=text`,
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
			opts := a.galleryOptions(portal.NewCollector("render"))

			switch format {
			case "html":
				page, err := export.Page(cmd.Context(), story, target, opts)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(page)
				return err
			case "text":
				tree, err := story.Mount(cmd.Context(), target, opts)
				if err != nil {
					return err
				}
				defer tree.Close()
				_, err = fmt.Fprintln(cmd.OutOrStdout(), termview.Render(tree.Output(), termview.Options{TrackWidth: a.cfg.Render.TrackWidth}))
				return err
			default:
				return fmt.Errorf("unknown format %q: want html or text", format)
			}
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "backend: web or native (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or text")
	return cmd
}
