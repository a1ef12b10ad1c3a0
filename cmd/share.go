package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/teemow/clip2drive/internal/clipboard"
	"github.com/teemow/clip2drive/internal/config"
	"github.com/teemow/clip2drive/internal/drive"
	"github.com/teemow/clip2drive/internal/google"
	"github.com/teemow/clip2drive/internal/logging"
	"github.com/teemow/clip2drive/internal/namegen"
	"github.com/teemow/clip2drive/internal/pipeline"
)

// authenticator yields an HTTP client authorized for the Drive API.
type authenticator interface {
	Authenticate(ctx context.Context) (*http.Client, error)
}

// runner executes the clipboard-to-Drive pipeline.
type runner interface {
	Run(ctx context.Context) error
}

func newShareCmd() *cobra.Command {
	var authOnly bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Upload the clipboard as a Markdown note and copy the share link",
		Long: `Read the text content of the system clipboard, upload it as a Markdown file
to the configured Google Drive folder, grant anyone-with-the-link read access,
and replace the clipboard content with the resulting share link.

On first use a browser window opens for Google authorization; the granted
token is stored and reused on subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			auth := google.NewAuthenticator(cfg)
			newRunner := func(client *http.Client) (runner, error) {
				driveClient, err := drive.NewClient(ctx, client)
				if err != nil {
					return nil, fmt.Errorf("failed to create Drive client: %w", err)
				}
				return pipeline.New(
					clipboard.New(),
					namegen.NewClient(cfg.OllamaURL),
					driveClient,
					cfg.FolderID,
				), nil
			}

			return runShare(ctx, auth, newRunner, authOnly)
		},
	}

	cmd.Flags().BoolVar(&authOnly, "auth-only", false, "Authorize access to Google Drive and exit without uploading")
	return cmd
}

// runShare authenticates and, unless authOnly is set, runs the upload
// pipeline. It is separated from the cobra wiring so both halves can be
// exercised with test doubles.
func runShare(ctx context.Context, auth authenticator, newRunner func(*http.Client) (runner, error), authOnly bool) error {
	client, err := auth.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	if authOnly {
		slog.Info("authorization complete", logging.Operation("auth"))
		return nil
	}

	pipe, err := newRunner(client)
	if err != nil {
		return err
	}

	return pipe.Run(ctx)
}
