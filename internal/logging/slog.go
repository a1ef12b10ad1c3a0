package logging

import (
	"log/slog"
	"os"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyService   = "service"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyFile      = "file"
	KeyLink      = "link"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// timeLayout renders log timestamps with millisecond precision.
const timeLayout = "2006-01-02 15:04:05.000"

// Setup installs the default logger: a text handler on stderr whose
// timestamps carry millisecond precision.
func Setup() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(timeLayout))
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Service returns a slog attribute for the service name.
func Service(svc string) slog.Attr {
	return slog.String(KeyService, svc)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// File returns a slog attribute for a file name or ID.
func File(name string) slog.Attr {
	return slog.String(KeyFile, name)
}

// Link returns a slog attribute for a share link.
func Link(link string) slog.Attr {
	return slog.String(KeyLink, link)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output, so Err(maybeNilErr) is always safe to pass.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}
