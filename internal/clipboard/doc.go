// Package clipboard wraps system clipboard access for text content.
//
// Only text is supported; an empty or whitespace-only clipboard reads as
// ErrEmpty so callers can fail before making any network call.
package clipboard
