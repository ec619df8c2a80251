package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"omrdata/internal/annotation"
	"omrdata/internal/fileutil"
	"omrdata/internal/logging"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var write bool
	var check bool
	var backup bool
	var dropUnknown bool

	cmd := &cobra.Command{
		Use:   "format FILE...",
		Short: "Rewrite annotation files in canonical form",
		Long: `Decode each annotation file and encode it again: canonical shape names,
coordinates with at most three decimals, attributes in a fixed order and the
configured indentation.

By default the canonical form is printed to stdout. --write replaces files in
place and --check only lists files that are not canonical.

Symbols with an unknown shape lose their shape attribute when re-encoded, so
such files are left untouched by --write unless --drop-unknown is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "format")
			files, err := collectFiles(args, cfg.Annotations.Extension)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var pending int
			for _, path := range files {
				var collector annotation.Collector
				fileLogger := logger.With(logging.String(logging.FieldFile, path))
				codec, err := ctx.codec(annotation.Tee(&collector, annotation.NewLogSink(fileLogger)))
				if err != nil {
					return err
				}
				original, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				page, err := codec.ReadPage(bytes.NewReader(original))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				var canonical bytes.Buffer
				if err := codec.WritePage(&canonical, page, cfg.Annotations.Indent); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				changed := !bytes.Equal(original, canonical.Bytes())

				switch {
				case check:
					if changed {
						pending++
						fmt.Fprintln(out, path)
					}
				case write:
					if !changed {
						continue
					}
					if unknown := countUnknown(collector.Diagnostics()); unknown > 0 && !dropUnknown {
						logging.WarnWithContext(fileLogger, "not rewriting file with unknown shapes", "format.skipped",
							logging.Int("unknown_shapes", unknown),
							logging.String(logging.FieldImpact, "file left unchanged"),
							logging.String(logging.FieldErrorHint, "fix or alias the shape names, or pass --drop-unknown"),
						)
						pending++
						continue
					}
					if backup {
						if err := fileutil.CopyFile(path, path+".bak"); err != nil {
							return fmt.Errorf("backup %s: %w", path, err)
						}
					}
					if err := fileutil.ReplaceFile(path, func(w io.Writer) error {
						_, err := w.Write(canonical.Bytes())
						return err
					}); err != nil {
						return err
					}
					fmt.Fprintf(out, "formatted %s\n", path)
				default:
					if _, err := out.Write(canonical.Bytes()); err != nil {
						return err
					}
				}
			}

			if check && pending > 0 {
				return fmt.Errorf("%d of %d files are not in canonical form", pending, len(files))
			}
			if write && pending > 0 {
				return fmt.Errorf("%d files skipped because of unknown shapes", pending)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Replace files with their canonical form")
	cmd.Flags().BoolVar(&check, "check", false, "List files that are not in canonical form and fail if any")
	cmd.Flags().BoolVar(&backup, "backup", false, "With --write, keep the original as FILE.bak")
	cmd.Flags().BoolVar(&dropUnknown, "drop-unknown", false, "With --write, rewrite files even if unknown shapes are dropped")
	cmd.MarkFlagsMutuallyExclusive("write", "check")
	return cmd
}

func countUnknown(diags []annotation.Diagnostic) int {
	var n int
	for _, d := range diags {
		if d.Kind == annotation.KindUnknownShape {
			n++
		}
	}
	return n
}
