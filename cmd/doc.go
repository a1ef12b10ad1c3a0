// Package cmd implements the command-line interface for clip2drive.
//
// This package provides the following commands:
//   - share: Upload the clipboard as a Markdown note and copy the share link
//   - version: Display version information
//
// The share command is the default command when no subcommand is specified,
// so a hotkey binding can invoke the bare binary. Its --auth-only flag runs
// the Google authorization flow and exits without uploading.
package cmd
