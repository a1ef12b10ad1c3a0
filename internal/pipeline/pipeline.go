package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/teemow/clip2drive/internal/drive"
	"github.com/teemow/clip2drive/internal/logging"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// NameGenerator suggests a filename fragment for content. Implementations
// never fail; they fall back to a default name instead.
type NameGenerator interface {
	Generate(ctx context.Context, content string) string
}

// Uploader creates and shares files on the storage backend.
type Uploader interface {
	UploadFile(ctx context.Context, name string, content io.Reader, options *drive.UploadOptions) (*drive.FileInfo, error)
	ShareFile(ctx context.Context, fileID string, options *drive.ShareOptions) (*drive.Permission, error)
}

// Pipeline turns the current clipboard content into a shared Markdown note
// and copies the share link back to the clipboard.
type Pipeline struct {
	clipboard Clipboard
	names     NameGenerator
	uploader  Uploader
	folderID  string

	now func() time.Time
}

// New creates a pipeline uploading into the given Drive folder.
func New(clipboard Clipboard, names NameGenerator, uploader Uploader, folderID string) *Pipeline {
	return &Pipeline{
		clipboard: clipboard,
		names:     names,
		uploader:  uploader,
		folderID:  folderID,
		now:       time.Now,
	}
}

// Run executes one capture. An empty or unreadable clipboard is a fatal
// error for the run; upload, permission, and link failures are logged and
// swallowed, leaving the clipboard untouched.
func (p *Pipeline) Run(ctx context.Context) error {
	text, err := p.clipboard.Read()
	if err != nil {
		return fmt.Errorf("cannot share clipboard: %w", err)
	}

	content := Normalize(text)
	if strings.TrimSpace(content) == "" {
		return errors.New("clipboard content is empty after normalization")
	}

	name := fmt.Sprintf("%s-%s.md", p.names.Generate(ctx, content), logging.Stamp(p.now()))
	logger := slog.With(logging.Service("drive"), logging.File(name))

	file, err := p.uploader.UploadFile(ctx, name, strings.NewReader(content), &drive.UploadOptions{
		ParentFolders: []string{p.folderID},
		MimeType:      drive.MarkdownMimeType,
	})
	if err != nil {
		logger.Error("upload failed", logging.Operation("upload"), logging.Err(err))
		return nil
	}
	if file.ID == "" {
		logger.Error("upload returned no file id", logging.Operation("upload"))
		return nil
	}

	if _, err := p.uploader.ShareFile(ctx, file.ID, drive.AnyoneWithLink()); err != nil {
		logger.Error("failed to grant link access", logging.Operation("share"), logging.Err(err))
		return nil
	}

	if file.WebViewLink == "" {
		logger.Error("no share link returned for uploaded file", logging.Operation("share"))
		return nil
	}

	if err := p.clipboard.Write(file.WebViewLink); err != nil {
		// The note is already shared; surface the link in the log so the
		// run is not a total loss.
		logger.Error("failed to copy share link",
			logging.Operation("copy"), logging.Err(err), logging.Link(file.WebViewLink))
		return nil
	}

	logger.Info("share link copied to clipboard",
		logging.Status(logging.StatusSuccess), logging.Link(file.WebViewLink))
	return nil
}
