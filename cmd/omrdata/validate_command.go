package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"omrdata/internal/annotation"
	"omrdata/internal/logging"
	"omrdata/internal/review"
	"omrdata/internal/symbol"
)

type fileReport struct {
	File          string   `json:"file"`
	Symbols       int      `json:"symbols"`
	UnknownShapes int      `json:"unknown_shapes"`
	MissingShapes int      `json:"missing_shapes"`
	Diagnostics   []string `json:"diagnostics,omitempty"`
	Errors        []string `json:"errors,omitempty"`

	diagnostics []annotation.Diagnostic
	errs        []error
}

func (r fileReport) status() string {
	switch {
	case len(r.errs) > 0:
		return "broken"
	case len(r.diagnostics) > 0:
		return "drift"
	default:
		return "ok"
	}
}

type validateReport struct {
	RunID       string       `json:"run_id,omitempty"`
	Files       []fileReport `json:"files"`
	Symbols     int          `json:"symbols"`
	Diagnostics int          `json:"diagnostics"`
	FailedFiles int          `json:"failed_files"`
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var keepGoing bool
	var record bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Decode annotation files and report shape drift and structural errors",
		Long: `Decode every annotation file named on the command line, walking directories
for files with the configured extension.

Unknown or missing shapes are reported as warnings and never fail the run.
Structural errors (missing Bounds, malformed numbers, broken XML) fail the
file. Without --keep-going validation stops at the first broken file.`,
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
			files, err := collectFiles(args, cfg.Annotations.Extension)
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}
			var store *review.Store
			var run *review.Run
			if record {
				store, err = review.Open(cfg.Paths.ReviewDB)
				if err != nil {
					return fmt.Errorf("open review database: %w", err)
				}
				defer store.Close()
				run, err = store.BeginRun(runCtx)
				if err != nil {
					return fmt.Errorf("begin review run: %w", err)
				}
				runCtx = logging.WithRunID(runCtx, run.ID)
			}
			logger = logging.WithContext(runCtx, logging.NewComponentLogger(logger, "validate"))
			started := time.Now()
			logger.Info("validation started",
				logging.Int("files", len(files)),
				logging.Bool("keep_going", keepGoing),
				logging.Bool("record", record),
			)

			report := validateReport{Files: make([]fileReport, 0, len(files))}
			for _, path := range files {
				fr, err := validateFile(ctx, logger, path, keepGoing)
				if err != nil {
					return err
				}
				report.Files = append(report.Files, fr)
				report.Symbols += fr.Symbols
				report.Diagnostics += len(fr.diagnostics)
				if len(fr.errs) > 0 {
					report.FailedFiles++
					if !keepGoing {
						break
					}
				}
			}

			logger.Info("validation finished",
				logging.Int("files", len(report.Files)),
				logging.Int("failed_files", report.FailedFiles),
				logging.Duration("elapsed", time.Since(started)),
			)

			if run != nil {
				report.RunID = run.ID
				if err := recordReport(runCtx, store, run.ID, report); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				printValidateReport(cmd, report)
			}

			if report.FailedFiles > 0 {
				return fmt.Errorf("validation failed: %d of %d files have structural errors", report.FailedFiles, len(report.Files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Decode past broken symbols and files")
	cmd.Flags().BoolVar(&record, "record", false, "Record findings in the review database")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	return cmd
}

func validateFile(ctx *commandContext, logger *slog.Logger, path string, lenient bool) (fileReport, error) {
	fr := fileReport{File: path}
	fileLogger := logger.With(logging.String(logging.FieldFile, path))

	var collector annotation.Collector
	codec, err := ctx.codec(annotation.Tee(&collector, annotation.NewLogSink(fileLogger)))
	if err != nil {
		return fr, err
	}

	var page *annotation.Page
	doc, err := readDocumentFile(path)
	switch {
	case err != nil:
		fr.errs = []error{err}
	case lenient:
		page, fr.errs = codec.DecodeDocumentLenient(doc)
	default:
		if page, err = codec.DecodeDocument(doc); err != nil {
			fr.errs = []error{err}
		}
	}

	if page != nil {
		for _, top := range page.Symbols {
			_ = symbol.Walk(top, "", func(string, int, *symbol.Record) error {
				fr.Symbols++
				return nil
			})
		}
	}
	fr.diagnostics = collector.Diagnostics()
	for _, d := range fr.diagnostics {
		if d.Kind == annotation.KindUnknownShape {
			fr.UnknownShapes++
		} else {
			fr.MissingShapes++
		}
		fr.Diagnostics = append(fr.Diagnostics, d.String())
	}
	for _, e := range fr.errs {
		fr.Errors = append(fr.Errors, e.Error())
		logging.ErrorWithContext(fileLogger, "annotation file is structurally broken", "validate.structural",
			logging.Error(e),
			logging.String(logging.FieldErrorHint, "fix the element at the reported path; the file cannot be used until then"),
		)
	}
	return fr, nil
}

func recordReport(ctx context.Context, store *review.Store, runID string, report validateReport) error {
	for _, fr := range report.Files {
		for _, d := range fr.diagnostics {
			if _, err := store.AddFinding(ctx, review.FindingFromDiagnostic(runID, fr.File, d)); err != nil {
				return fmt.Errorf("record finding: %w", err)
			}
		}
		for _, e := range fr.errs {
			if _, err := store.AddFinding(ctx, review.FindingFromError(runID, fr.File, e)); err != nil {
				return fmt.Errorf("record finding: %w", err)
			}
		}
	}
	_, err := store.FinishRun(ctx, runID, review.RunStats{
		Files:       len(report.Files),
		Symbols:     report.Symbols,
		FailedFiles: report.FailedFiles,
	})
	if err != nil {
		return fmt.Errorf("finish review run: %w", err)
	}
	return nil
}

func printValidateReport(cmd *cobra.Command, report validateReport) {
	rows := make([][]string, 0, len(report.Files))
	for _, fr := range report.Files {
		rows = append(rows, []string{
			fr.File,
			strconv.Itoa(fr.Symbols),
			strconv.Itoa(fr.UnknownShapes),
			strconv.Itoa(fr.MissingShapes),
			strconv.Itoa(len(fr.errs)),
			fr.status(),
		})
	}
	printTable(cmd,
		[]string{"File", "Symbols", "Unknown", "Missing", "Errors", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	)

	out := cmd.OutOrStdout()
	for _, fr := range report.Files {
		for _, e := range fr.Errors {
			fmt.Fprintf(out, "error: %s: %s\n", fr.File, e)
		}
	}
	fmt.Fprintf(out, "Validated %d files: %d symbols, %d diagnostics, %d broken\n",
		len(report.Files), report.Symbols, report.Diagnostics, report.FailedFiles)
	if report.RunID != "" {
		fmt.Fprintf(out, "Recorded review run %s\n", report.RunID)
	}
}
