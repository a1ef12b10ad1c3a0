package namegen

import "fmt"

// generateRequest is the payload sent to the generation service.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the subset of the service response that is consumed.
type generateResponse struct {
	Response string `json:"response"`
}

// GenerateError represents an error that occurred while asking the local
// generation service for a filename
type GenerateError struct {
	// Op is the step that failed (e.g., "request", "decode")
	Op string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *GenerateError) Error() string {
	return fmt.Sprintf("namegen %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *GenerateError) Unwrap() error {
	return e.Err
}
