package namegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/teemow/clip2drive/internal/logging"
)

const (
	// DefaultName is returned whenever the generation service cannot
	// supply a usable name.
	DefaultName = "Note"

	// Model is the fixed model identifier requested from the service.
	Model = "llama3.2"

	// requestTimeout bounds the synchronous generation call so a stuck
	// service cannot stall the pipeline.
	requestTimeout = 5 * time.Second
)

// Client asks a local text-generation service for a short descriptive
// filename. The service is optional; callers always get a usable name back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the generation service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Generate returns a short descriptive name for content. It never fails:
// any service failure is logged and the fixed default name is returned.
func (c *Client) Generate(ctx context.Context, content string) string {
	name, err := c.generate(ctx, content)
	if err != nil {
		slog.Warn("filename generation failed, using default name",
			logging.Service("namegen"), logging.Err(err))
		return DefaultName
	}
	return name
}

func (c *Client) generate(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(
		"Suggest a short descriptive name of 30 characters or less for a note with the following content. Reply with the name only.\n\n%s",
		content)

	body, err := json.Marshal(generateRequest{
		Model:  Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", &GenerateError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", &GenerateError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerateError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GenerateError{Op: "request", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", &GenerateError{Op: "decode", Err: err}
	}

	name := Sanitize(gr.Response)
	if name == "" {
		return "", &GenerateError{Op: "decode", Err: fmt.Errorf("response contained no usable name")}
	}

	// The 30-character limit in the prompt is advisory; the sanitized
	// suggestion is used as-is.
	return name, nil
}

// Sanitize turns a raw suggestion into a filename fragment: double quotes
// are stripped, surrounding whitespace trimmed, and interior whitespace runs
// collapsed into single hyphens.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, `"`, "")
	return strings.Join(strings.Fields(s), "-")
}
