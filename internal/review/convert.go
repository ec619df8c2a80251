package review

import (
	"errors"

	"omrdata/internal/annotation"
)

// FindingFromDiagnostic converts a decode diagnostic into a finding of run.
func FindingFromDiagnostic(runID, file string, d annotation.Diagnostic) Finding {
	f := Finding{
		RunID:      runID,
		File:       file,
		SymbolPath: d.Path,
		Kind:       KindMissingShape,
		ShapeToken: d.Token,
		Suggestion: d.Suggestion,
		Message:    d.String(),
	}
	if d.Kind == annotation.KindUnknownShape {
		f.Kind = KindUnknownShape
	}
	if d.HasID {
		id := d.ID
		f.SymbolID = &id
	}
	return f
}

// FindingFromError converts a structural decode failure into a finding of run.
// The symbol path is taken from an *annotation.DecodeError when err carries one.
func FindingFromError(runID, file string, err error) Finding {
	f := Finding{RunID: runID, File: file, Kind: KindStructural}
	if err != nil {
		f.Message = err.Error()
	}
	var decodeErr *annotation.DecodeError
	if errors.As(err, &decodeErr) {
		f.SymbolPath = decodeErr.Path
	}
	return f
}
