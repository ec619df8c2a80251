package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"omrdata/internal/shape"
)

type shapeRow struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Aliases []string `json:"aliases,omitempty"`
}

func newShapesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "shapes [TERM]",
		Short: "List known shape names, optionally fuzzy filtered by TERM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := ctx.shapeCodec()
			if err != nil {
				return err
			}
			vocab := codec.Vocabulary()
			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			matches := vocab.Filter(term)
			entries := make([]shapeRow, 0, len(matches))
			for _, s := range matches {
				entries = append(entries, shapeRow{Name: s.String(), Label: shape.Label(s), Aliases: vocab.Aliases(s)})
			}

			if jsonOutput {
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No shape matches %q\n", term)
				if hint := codec.Suggest(term); hint != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Did you mean %s?\n", hint)
				}
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Name, e.Label, strings.Join(e.Aliases, ", ")})
			}
			printTable(cmd, []string{"Shape", "Label", "Aliases"}, rows, nil)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output shapes as JSON")
	return cmd
}
