package namegen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateReturnsSanitizedName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("request body was not JSON: %v", err)
		}
		if req.Model != Model {
			t.Errorf("model = %q, want %q", req.Model, Model)
		}
		if req.Stream {
			t.Error("stream = true, want non-streaming request")
		}

		json.NewEncoder(w).Encode(generateResponse{Response: ` "Meeting Notes"  `})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	name := client.Generate(context.Background(), "agenda for tomorrow")
	if name != "Meeting-Notes" {
		t.Errorf("Generate() = %q, want %q", name, "Meeting-Notes")
	}
}

func TestGenerateServiceUnreachable(t *testing.T) {
	// A closed server guarantees a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	if name := client.Generate(context.Background(), "anything"); name != DefaultName {
		t.Errorf("Generate() = %q, want %q when service is unreachable", name, DefaultName)
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if name := client.Generate(context.Background(), "anything"); name != DefaultName {
		t.Errorf("Generate() = %q, want %q for malformed JSON", name, DefaultName)
	}
}

func TestGenerateMissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"done": true}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if name := client.Generate(context.Background(), "anything"); name != DefaultName {
		t.Errorf("Generate() = %q, want %q for missing response field", name, DefaultName)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if name := client.Generate(context.Background(), "anything"); name != DefaultName {
		t.Errorf("Generate() = %q, want %q for error status", name, DefaultName)
	}
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: `  "" `})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if name := client.Generate(context.Background(), "anything"); name != DefaultName {
		t.Errorf("Generate() = %q, want %q when sanitizing leaves nothing", name, DefaultName)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Notes", "Notes"},
		{"surrounding whitespace", "  Shopping List \n", "Shopping-List"},
		{"quotes stripped", `"Project Plan"`, "Project-Plan"},
		{"whitespace collapsed", "a  b\t\tc", "a-b-c"},
		{"only quotes", `""`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
