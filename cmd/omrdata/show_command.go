package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"omrdata/internal/annotation"
	"omrdata/internal/export"
	"omrdata/internal/geometry"
	"omrdata/internal/logging"
	"omrdata/internal/shape"
	"omrdata/internal/symbol"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var tableOutput bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Display the symbols of an annotation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			path := args[0]
			fileLogger := logging.NewComponentLogger(logger, "show").With(logging.String(logging.FieldFile, path))
			codec, err := ctx.codec(annotation.NewLogSink(fileLogger))
			if err != nil {
				return err
			}
			page, err := readPageFile(codec, path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, export.FromPage(page, export.Options{File: path}))
			}
			if tableOutput {
				printSymbolTable(cmd, page)
				return nil
			}

			out := cmd.OutOrStdout()
			if page.Source != "" {
				fmt.Fprintf(out, "Source: %s\n", page.Source)
			}
			for _, top := range page.Symbols {
				_ = symbol.Walk(top, "", func(_ string, depth int, r *symbol.Record) error {
					fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), r)
					return nil
				})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tableOutput, "table", false, "Show one row per symbol")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output symbols as JSON")
	cmd.MarkFlagsMutuallyExclusive("table", "json")
	return cmd
}

func printSymbolTable(cmd *cobra.Command, page *annotation.Page) {
	var rows [][]string
	for i, top := range page.Symbols {
		root := fmt.Sprintf("Annotations/Symbol[%d]", i)
		_ = symbol.Walk(top, root, func(path string, _ int, r *symbol.Record) error {
			id := ""
			if v, ok := r.LookupID(); ok {
				id = strconv.FormatUint(uint64(v), 10)
			}
			name, label := "-", ""
			if s, ok := r.Shape(); ok {
				name, label = s.String(), shape.Label(s)
			}
			b := geometry.Encode(r.Bounds())
			rows = append(rows, []string{path, id, name, label, strconv.FormatInt(int64(r.Interline()), 10), b.X, b.Y, b.W, b.H})
			return nil
		})
	}
	printTable(cmd,
		[]string{"Path", "ID", "Shape", "Label", "Interline", "X", "Y", "W", "H"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	)
}
