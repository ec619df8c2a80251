// Package logging assembles the structured slog loggers used by omrdata.
//
// It owns the console and JSON handlers, level parsing, the optional JSON log
// file tee, and the attribute helpers every package uses so that warnings
// about annotation files carry the same keys (file, symbol_path, shape_token)
// whether they are read by a human on a terminal or by a log processor.
//
// Prefer these constructors over hand-rolled slog setup. NewNop is available
// for tests and wiring code that must not fail.
package logging
