package review

import "errors"

var (
	// ErrRunNotFound reports a run id that is not in the database.
	ErrRunNotFound = errors.New("review run not found")
	// ErrRunFinished reports an attempt to modify a run after FinishRun.
	ErrRunFinished = errors.New("review run already finished")
	// ErrInvalidFinding reports a finding without a run, file, or kind.
	ErrInvalidFinding = errors.New("invalid finding")
)
