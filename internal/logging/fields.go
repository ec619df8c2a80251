package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering (e.g. "annotation.unknown_shape").
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldFile is the annotation file being processed.
	FieldFile = "file"
	// FieldSymbolPath locates a symbol element within its file.
	FieldSymbolPath = "symbol_path"
	// FieldSymbolID is the stable id of a symbol, when assigned.
	FieldSymbolID = "symbol_id"
	// FieldBounds is the rendered bounding box of a symbol.
	FieldBounds = "bounds"
	// FieldShapeToken is a shape token as it appeared in the source file.
	FieldShapeToken = "shape_token"
	// FieldSuggestion is the closest known shape name for an unknown token.
	FieldSuggestion = "suggestion"
	// FieldRunID correlates every line of one validation run.
	FieldRunID = "run_id"
)
