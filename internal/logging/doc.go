// Package logging provides structured logging utilities for clip2drive.
//
// It centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package. Setup
// installs a text handler with millisecond-precision timestamps, and the
// attribute constructors (Operation, Service, Status, Err, ...) keep
// attribute names uniform across packages.
//
// The package also owns Stamp, the filename timestamp format shared by the
// upload pipeline.
package logging
