// Package config loads, normalizes, and validates omrdata configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OMRDATA_LOG_LEVEL. The Config type gathers the review database location,
// logging settings, legacy shape aliases, and output conventions for
// annotation files in one place.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
