package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const runColumns = `r.id, r.started_at, r.finished_at, r.files, r.symbols, r.failed_files, r.status,
    (SELECT COUNT(1) FROM findings f WHERE f.run_id = r.id)`

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run        Run
		startedRaw sql.NullString
		finished   sql.NullString
		status     string
	)
	if err := scanner.Scan(
		&run.ID,
		&startedRaw,
		&finished,
		&run.Files,
		&run.Symbols,
		&run.FailedFiles,
		&status,
		&run.Findings,
	); err != nil {
		return nil, err
	}
	run.StartedAt = parseTime(startedRaw)
	run.FinishedAt = parseTime(finished)
	run.Status = RunStatus(status)
	return &run, nil
}

// BeginRun records a new running validation pass and returns it.
func (s *Store) BeginRun(ctx context.Context) (*Run, error) {
	id := uuid.NewString()
	if _, err := s.execWithRetry(ctx,
		`INSERT INTO runs (id, started_at, status) VALUES (?, ?, ?)`,
		id, formatTime(time.Now()), RunStatusRunning,
	); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return s.GetRun(ctx, id)
}

// FinishRun stores the run totals and its final status.
func (s *Store) FinishRun(ctx context.Context, runID string, stats RunStats) (*Run, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Finished() {
		return nil, fmt.Errorf("%w: %s", ErrRunFinished, runID)
	}
	status := RunStatusPassed
	if stats.FailedFiles > 0 {
		status = RunStatusFailed
	}
	if _, err := s.execWithRetry(ctx,
		`UPDATE runs SET finished_at = ?, files = ?, symbols = ?, failed_files = ?, status = ? WHERE id = ?`,
		formatTime(time.Now()), stats.Files, stats.Symbols, stats.FailedFiles, status, runID,
	); err != nil {
		return nil, fmt.Errorf("finish run: %w", err)
	}
	return s.GetRun(ctx, runID)
}

// GetRun fetches a run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs r WHERE r.id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently begun run, or nil when there is none.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs r ORDER BY r.rowid DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// Runs lists runs newest first. A limit <= 0 returns every run.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + runColumns + ` FROM runs r ORDER BY r.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}
