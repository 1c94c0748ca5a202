package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/primitives/pkg/export"
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
)

func exportCmd(a *app) *cobra.Command {
	var (
		dir, bucket, prefix string
		backends            []string
	)

	cmd := &cobra.Command{
		Use:   "export [story...]",
		Short: "Write the gallery as static HTML",
		Long: `Render every story for every backend and write the pages plus an
index. Pages go to a directory, or to an S3 bucket when one is set.
Credentials for S3 come from the AWS_* environment variables.

Examples:
  primitives export --dir=public
  primitives export slider --backend=web
  primitives export --bucket=my-gallery --prefix=v1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec := a.cfg.Export
			if cmd.Flags().Changed("dir") {
				ec.Dir = dir
			}
			if bucket != "" {
				ec.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				ec.Prefix = prefix
			}

			opts := export.Options{
				Prefix:  ec.Prefix,
				Gallery: a.galleryOptions(portal.NewCollector("export")),
				Logger:  a.logger,
			}
			for _, name := range args {
				s, err := gallery.Lookup(name)
				if err != nil {
					return err
				}
				opts.Stories = append(opts.Stories, s)
			}
			for _, b := range backends {
				os, err := platform.ParseOS(b)
				if err != nil {
					return err
				}
				opts.Backends = append(opts.Backends, os)
			}

			var store export.Store = export.DirStore{Dir: ec.Dir}
			where := ec.Dir
			if ec.Bucket != "" {
				client := export.NewS3Client(export.S3Config{Region: ec.Region, Endpoint: ec.Endpoint, PathStyle: ec.PathStyle})
				store = export.NewS3Store(client, ec.Bucket)
				where = "s3://" + ec.Bucket
			}

			keys, err := export.Export(cmd.Context(), store, opts)
			if err != nil {
				return err
			}
			success(cmd, "exported %d pages to %s", len(keys), where)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default from config)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket; overrides --dir")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix (default from config)")
	cmd.Flags().StringSliceVarP(&backends, "backend", "b", nil, "backends to export (default all)")
	return cmd
}
