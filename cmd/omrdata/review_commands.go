package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"omrdata/internal/review"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Inspect findings recorded by validate --record",
	}

	reviewCmd.AddCommand(newReviewRunsCommand(ctx))
	reviewCmd.AddCommand(newReviewListCommand(ctx))
	reviewCmd.AddCommand(newReviewClearCommand(ctx))

	return reviewCmd
}

func newReviewRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				runs, err := store.Runs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					if runs == nil {
						runs = []review.Run{}
					}
					return writeJSON(cmd, runs)
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No review runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.StartedAt.Local().Format(time.DateTime),
						string(run.Status),
						strconv.Itoa(run.Files),
						strconv.Itoa(run.Symbols),
						strconv.Itoa(run.FailedFiles),
						strconv.Itoa(run.Findings),
					})
				}
				printTable(cmd,
					[]string{"Run", "Started", "Status", "Files", "Symbols", "Broken", "Findings"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output runs as JSON")
	return cmd
}

func newReviewListCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var all bool
	var kind string
	var file string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List findings of the latest run, or of --run ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				filter := review.FindingFilter{RunID: runID, Kind: review.Kind(kind), File: file}
				if filter.RunID == "" && !all {
					latest, err := store.LatestRun(cmd.Context())
					if err != nil {
						return err
					}
					if latest == nil {
						fmt.Fprintln(cmd.OutOrStdout(), "No review runs recorded")
						return nil
					}
					filter.RunID = latest.ID
				} else if filter.RunID != "" {
					if _, err := store.GetRun(cmd.Context(), filter.RunID); err != nil {
						if errors.Is(err, review.ErrRunNotFound) {
							return fmt.Errorf("unknown run %q (see 'omrdata review runs')", filter.RunID)
						}
						return err
					}
				}

				findings, err := store.Findings(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if jsonOutput {
					if findings == nil {
						findings = []review.Finding{}
					}
					return writeJSON(cmd, findings)
				}
				if len(findings) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No findings")
					return nil
				}
				rows := make([][]string, 0, len(findings))
				for _, f := range findings {
					id := ""
					if f.SymbolID != nil {
						id = strconv.FormatUint(uint64(*f.SymbolID), 10)
					}
					rows = append(rows, []string{f.File, f.SymbolPath, string(f.Kind), f.ShapeToken, f.Suggestion, id})
				}
				printTable(cmd,
					[]string{"File", "Path", "Kind", "Token", "Suggestion", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run id to list (default: latest run)")
	cmd.Flags().BoolVar(&all, "all", false, "List findings of every run")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (unknown_shape, missing_shape, structural)")
	cmd.Flags().StringVar(&file, "file", "", "Filter by annotation file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output findings as JSON")
	cmd.MarkFlagsMutuallyExclusive("run", "all")
	return cmd
}

func newReviewClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded run and finding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *review.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d review runs\n", removed)
				return nil
			})
		},
	}
}
