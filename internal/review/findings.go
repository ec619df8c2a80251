package review

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const findingColumns = "id, run_id, file, symbol_path, kind, shape_token, suggestion, symbol_id, message, created_at"

func scanFinding(scanner interface{ Scan(dest ...any) error }) (*Finding, error) {
	var (
		f          Finding
		kind       string
		token      sql.NullString
		suggestion sql.NullString
		symbolID   sql.NullInt64
		createdRaw sql.NullString
	)
	if err := scanner.Scan(
		&f.ID,
		&f.RunID,
		&f.File,
		&f.SymbolPath,
		&kind,
		&token,
		&suggestion,
		&symbolID,
		&f.Message,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	f.Kind = Kind(kind)
	f.ShapeToken = token.String
	f.Suggestion = suggestion.String
	if symbolID.Valid {
		id := uint32(symbolID.Int64)
		f.SymbolID = &id
	}
	f.CreatedAt = parseTime(createdRaw)
	return &f, nil
}

// AddFinding appends f to its run. The run must exist and still be running.
func (s *Store) AddFinding(ctx context.Context, f Finding) (*Finding, error) {
	if strings.TrimSpace(f.RunID) == "" || strings.TrimSpace(f.File) == "" || f.Kind == "" {
		return nil, fmt.Errorf("%w: run, file and kind are required", ErrInvalidFinding)
	}
	run, err := s.GetRun(ctx, f.RunID)
	if err != nil {
		return nil, err
	}
	if run.Finished() {
		return nil, fmt.Errorf("%w: %s", ErrRunFinished, f.RunID)
	}

	f.CreatedAt = time.Now().UTC()
	res, err := s.execWithRetry(ctx,
		`INSERT INTO findings (
            run_id, file, symbol_path, kind, shape_token, suggestion, symbol_id, message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.RunID,
		f.File,
		f.SymbolPath,
		string(f.Kind),
		nullableString(f.ShapeToken),
		nullableString(f.Suggestion),
		nullableID(f.SymbolID),
		f.Message,
		formatTime(f.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert finding: %w", err)
	}
	if f.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &f, nil
}

// Findings lists findings matching filter in insertion order.
func (s *Store) Findings(ctx context.Context, filter FindingFilter) ([]Finding, error) {
	ctx = ensureContext(ctx)
	var (
		clauses []string
		args    []any
	)
	if filter.RunID != "" {
		clauses = append(clauses, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.File != "" {
		clauses = append(clauses, "file = ?")
		args = append(args, filter.File)
	}
	query := `SELECT ` + findingColumns + ` FROM findings`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list findings: %w", err)
	}
	defer rows.Close()

	var findings []Finding
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}
		findings = append(findings, *f)
	}
	return findings, rows.Err()
}
