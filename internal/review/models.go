package review

import (
	"time"
)

// RunStatus is the lifecycle state of a validation run.
type RunStatus string

const (
	// RunStatusRunning marks a run that has not been finished.
	RunStatusRunning RunStatus = "running"
	// RunStatusPassed marks a run in which every file decoded.
	RunStatusPassed RunStatus = "passed"
	// RunStatusFailed marks a run with at least one structurally broken file.
	RunStatusFailed RunStatus = "failed"
)

// Kind classifies a finding.
type Kind string

const (
	KindUnknownShape Kind = "unknown_shape"
	KindMissingShape Kind = "missing_shape"
	// KindStructural marks a file or symbol that could not be decoded at all.
	KindStructural Kind = "structural"
)

// Run summarizes one validation pass.
type Run struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Files       int       `json:"files"`
	Symbols     int       `json:"symbols"`
	FailedFiles int       `json:"failed_files"`
	Findings    int       `json:"findings"`
	Status      RunStatus `json:"status"`
}

// Finished reports whether FinishRun has been called for the run.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// Finding is one flagged symbol or file.
type Finding struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	File       string    `json:"file"`
	SymbolPath string    `json:"symbol_path,omitempty"`
	Kind       Kind      `json:"kind"`
	ShapeToken string    `json:"shape_token,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	SymbolID   *uint32   `json:"symbol_id,omitempty"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RunStats are the totals recorded when a run finishes.
type RunStats struct {
	Files       int
	Symbols     int
	FailedFiles int
}

// FindingFilter narrows Findings. Zero values match everything.
type FindingFilter struct {
	RunID string
	Kind  Kind
	File  string
	Limit int
}
