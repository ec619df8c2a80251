// Package main hosts the omrdata CLI entrypoint and command graph.
//
// The Cobra-based command tree validates, canonicalizes, inspects and exports
// symbol annotation files, and queries the review database that validation
// runs record their findings in. It centralizes configuration resolution,
// logger construction and codec wiring so subcommands only deal with files
// and output.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
