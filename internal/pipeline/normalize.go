package pipeline

import "strings"

// Normalize prepares clipboard text for upload as Markdown: every horizontal
// tab becomes two spaces and every bullet character (•) becomes a
// hyphen-minus. The transformation is idempotent.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\t", "  ")
	return strings.ReplaceAll(s, "•", "-")
}
