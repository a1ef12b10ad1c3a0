package clipboard

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmpty signals that the clipboard holds no text content.
var ErrEmpty = errors.New("clipboard is empty")

// Service reads and writes the system clipboard.
type Service struct{}

// New creates a clipboard service.
func New() *Service {
	return &Service{}
}

// Read returns the clipboard's text content. It fails when the platform has
// no clipboard support or the content is empty.
func (s *Service) Read() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}

	return text, nil
}

// Write replaces the clipboard content with text.
func (s *Service) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	return nil
}
