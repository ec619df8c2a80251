package main

import (
	"github.com/spf13/cobra"

	"omrdata/internal/annotation"
	"omrdata/internal/export"
	"omrdata/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var skipUnclassified bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export the symbols of an annotation file as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			name := cfg.Export.Format
			if cmd.Flags().Changed("format") {
				name = formatFlag
			}
			format, err := export.ParseFormat(name)
			if err != nil {
				return err
			}
			skip := cfg.Export.SkipUnclassified
			if cmd.Flags().Changed("skip-unclassified") {
				skip = skipUnclassified
			}

			path := args[0]
			fileLogger := logging.NewComponentLogger(logger, "export").With(logging.String(logging.FieldFile, path))
			codec, err := ctx.codec(annotation.NewLogSink(fileLogger))
			if err != nil {
				return err
			}
			page, err := readPageFile(codec, path)
			if err != nil {
				return err
			}
			view := export.FromPage(page, export.Options{
				SkipUnclassified: skip,
				Logger:           logger,
				File:             path,
			})
			return export.Write(cmd.OutOrStdout(), format, view)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or yaml (default from config)")
	cmd.Flags().BoolVar(&skipUnclassified, "skip-unclassified", false, "Drop symbols without a recognized shape")
	return cmd
}
