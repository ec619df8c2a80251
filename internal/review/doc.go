// Package review persists validation runs and their findings in SQLite so that
// flagged annotations can be located and fixed after the run that found them.
//
// A run is opened with BeginRun, receives one Finding per diagnostic or
// structural failure, and is closed with FinishRun. Findings keep the file,
// the symbol path inside that file, the offending shape token and the
// suggested replacement, which is enough to jump straight to the element.
//
// The database is a worklist rather than an archive. Schema changes bump the
// version in schema.go; users clear the database to adopt the new schema.
package review
