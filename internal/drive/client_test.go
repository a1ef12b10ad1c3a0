package drive

import (
	"context"
	"strings"
	"testing"
	"time"

	drive "google.golang.org/api/drive/v3"
)

func TestConvertToFileInfo(t *testing.T) {
	createdTime := "2023-01-01T10:00:00Z"

	driveFile := &drive.File{
		Id:          "file123",
		Name:        "Note-2023-01-01-10-00-00-000.md",
		MimeType:    "text/markdown",
		Size:        42,
		CreatedTime: createdTime,
		WebViewLink: "https://drive.google.com/file/d/file123/view",
		Parents:     []string{"folder1"},
	}

	fileInfo := convertToFileInfo(driveFile)

	if fileInfo.ID != "file123" {
		t.Errorf("Expected ID file123, got %s", fileInfo.ID)
	}
	if fileInfo.Name != "Note-2023-01-01-10-00-00-000.md" {
		t.Errorf("Expected note filename, got %s", fileInfo.Name)
	}
	if fileInfo.MimeType != "text/markdown" {
		t.Errorf("Expected MimeType text/markdown, got %s", fileInfo.MimeType)
	}
	if fileInfo.Size != 42 {
		t.Errorf("Expected Size 42, got %d", fileInfo.Size)
	}
	if fileInfo.WebViewLink != "https://drive.google.com/file/d/file123/view" {
		t.Errorf("Expected WebViewLink, got %s", fileInfo.WebViewLink)
	}
	if len(fileInfo.Parents) != 1 || fileInfo.Parents[0] != "folder1" {
		t.Errorf("Expected parents [folder1], got %v", fileInfo.Parents)
	}

	expectedCreated, _ := time.Parse(time.RFC3339, createdTime)
	if !fileInfo.CreatedTime.Equal(expectedCreated) {
		t.Errorf("Expected CreatedTime %v, got %v", expectedCreated, fileInfo.CreatedTime)
	}
}

func TestConvertToFileInfoInvalidTimestamp(t *testing.T) {
	fileInfo := convertToFileInfo(&drive.File{Id: "f", CreatedTime: "not-a-time"})
	if !fileInfo.CreatedTime.IsZero() {
		t.Errorf("Expected zero CreatedTime for invalid timestamp, got %v", fileInfo.CreatedTime)
	}
}

func TestConvertToPermission(t *testing.T) {
	perm := convertToPermission(&drive.Permission{
		Id:   "perm123",
		Type: "anyone",
		Role: "reader",
	})

	if perm.ID != "perm123" {
		t.Errorf("Expected ID perm123, got %s", perm.ID)
	}
	if perm.Type != "anyone" {
		t.Errorf("Expected Type anyone, got %s", perm.Type)
	}
	if perm.Role != "reader" {
		t.Errorf("Expected Role reader, got %s", perm.Role)
	}
}

func TestAnyoneWithLink(t *testing.T) {
	opts := AnyoneWithLink()
	if opts.Type != "anyone" || opts.Role != "reader" {
		t.Errorf("AnyoneWithLink() = %+v, want anyone/reader", opts)
	}
}

func TestNewClientRequiresHTTPClient(t *testing.T) {
	if _, err := NewClient(context.Background(), nil); err == nil {
		t.Error("NewClient(nil) = nil error, want error")
	}
}

func TestUploadFileValidation(t *testing.T) {
	c := &Client{}

	if _, err := c.UploadFile(context.Background(), "", strings.NewReader("x"), nil); err == nil {
		t.Error("UploadFile with empty name = nil error, want error")
	}
	if _, err := c.UploadFile(context.Background(), "note.md", nil, nil); err == nil {
		t.Error("UploadFile with nil content = nil error, want error")
	}
}

func TestShareFileValidation(t *testing.T) {
	c := &Client{}

	if _, err := c.ShareFile(context.Background(), "", AnyoneWithLink()); err == nil {
		t.Error("ShareFile with empty fileID = nil error, want error")
	}
	if _, err := c.ShareFile(context.Background(), "file123", nil); err == nil {
		t.Error("ShareFile with nil options = nil error, want error")
	}
	if _, err := c.ShareFile(context.Background(), "file123", &ShareOptions{Role: "reader"}); err == nil {
		t.Error("ShareFile without type = nil error, want error")
	}
	if _, err := c.ShareFile(context.Background(), "file123", &ShareOptions{Type: "anyone"}); err == nil {
		t.Error("ShareFile without role = nil error, want error")
	}
}
