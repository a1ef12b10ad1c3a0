package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"

	"github.com/teemow/clip2drive/internal/config"
	"github.com/teemow/clip2drive/internal/logging"
)

// authState is the fixed state parameter attached to the authorization URL.
const authState = "clip2drive"

// Authenticator orchestrates the OAuth2 authorization-code grant. A stored
// token is reused when present; otherwise the user's browser is opened and a
// one-shot local listener captures the redirect.
type Authenticator struct {
	conf  *oauth2.Config
	store *TokenStore

	// Replaceable in tests.
	openURL func(url string) error
	listen  func(ctx context.Context) (string, error)
}

// NewAuthenticator builds an authenticator for the given configuration. The
// requested scope is limited to files this tool creates (drive.file), not
// full Drive access.
func NewAuthenticator(cfg config.Config) *Authenticator {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  config.RedirectURL,
		Scopes:       []string{drive.DriveFileScope},
	}

	a := &Authenticator{
		conf:    conf,
		store:   NewTokenStore(cfg.TokenPath),
		openURL: openBrowser,
	}
	a.listen = func(ctx context.Context) (string, error) {
		server, err := newCallbackServer(config.CallbackAddr, authState)
		if err != nil {
			return "", err
		}
		return server.Wait(ctx)
	}
	return a
}

// Authenticate returns an HTTP client authorized for the Drive API. With a
// stored token it completes without opening a browser or starting a
// listener; token refresh is handled transparently by the token source.
func (a *Authenticator) Authenticate(ctx context.Context) (*http.Client, error) {
	record, err := a.store.Load()
	if errors.Is(err, ErrTokenNotFound) {
		token, authErr := a.authorize(ctx)
		if authErr != nil {
			return nil, authErr
		}
		return oauth2.NewClient(ctx, a.conf.TokenSource(ctx, token)), nil
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("using stored token", logging.Operation("auth"))
	return oauth2.NewClient(ctx, a.conf.TokenSource(ctx, record.Token())), nil
}

// authorize runs the browser flow: open the authorization URL, await the
// redirect on the local listener, exchange the code, persist the token.
func (a *Authenticator) authorize(ctx context.Context) (*oauth2.Token, error) {
	url := a.conf.AuthCodeURL(authState, oauth2.AccessTypeOffline)

	slog.Info("opening browser for authorization",
		logging.Operation("auth"),
		slog.String("url", url))
	if err := a.openURL(url); err != nil {
		slog.Warn("failed to open browser, open the URL manually",
			logging.Operation("auth"), logging.Err(err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, config.AuthTimeout)
	defer cancel()

	code, err := a.listen(waitCtx)
	if err != nil {
		return nil, err
	}

	token, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := a.store.Save(NewTokenRecord(token)); err != nil {
		return nil, err
	}

	slog.Info("authorization granted", logging.Operation("auth"), logging.Status(logging.StatusSuccess))
	return token, nil
}

// openBrowser opens url in the user's default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
