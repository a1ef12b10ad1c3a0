// Package pipeline orchestrates a single clipboard capture: read the
// clipboard, normalize the text for Markdown, derive a filename, upload to
// the configured Drive folder, grant link access, and write the share link
// back to the clipboard.
//
// The pipeline is strictly sequential; one process run performs exactly one
// capture. Failures after the upload has started are logged and swallowed so
// the process still exits normally, leaving the clipboard untouched.
package pipeline
