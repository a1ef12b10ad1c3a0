package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Build-time defaults, set via -ldflags:
//
//	-X github.com/teemow/clip2drive/internal/config.defaultClientID=...
//
// Environment variables take precedence at runtime.
var (
	defaultClientID     = ""
	defaultClientSecret = ""
	defaultFolderID     = ""
)

const (
	// CallbackAddr is the listen address for the one-shot OAuth callback.
	CallbackAddr = "localhost:3000"

	// RedirectURL must match the redirect URI registered with the OAuth client.
	RedirectURL = "http://localhost:3000/callback"

	// TokenFileName is the token file stored in the user's home directory.
	TokenFileName = ".clip2drive_token.json"

	// DefaultOllamaURL is the local text-generation service used for
	// filename suggestions. The service is optional; see the namegen package.
	DefaultOllamaURL = "http://localhost:11434"

	// AuthTimeout bounds how long the callback listener waits for the user
	// to complete the browser authorization.
	AuthTimeout = 120 * time.Second
)

// Config carries all settings for a single run. It is constructed once at
// startup and passed into each component, so nothing reads credentials from
// globals after this point.
type Config struct {
	// ClientID and ClientSecret identify the OAuth client.
	ClientID     string
	ClientSecret string

	// FolderID is the Google Drive folder that receives uploaded notes.
	FolderID string

	// TokenPath is where the OAuth token record is persisted.
	TokenPath string

	// OllamaURL is the base URL of the local text-generation service.
	OllamaURL string
}

// FromEnv resolves the configuration from the environment, falling back to
// the build-time defaults. It fails if any required credential is missing.
func FromEnv() (Config, error) {
	cfg := Config{
		ClientID:     envOr("CLIENT_ID", defaultClientID),
		ClientSecret: envOr("CLIENT_SECRET", defaultClientSecret),
		FolderID:     envOr("FOLDER_ID", defaultFolderID),
		TokenPath:    filepath.Join(homeDir(), TokenFileName),
		OllamaURL:    DefaultOllamaURL,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all required credentials are present.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("missing OAuth client ID: set CLIENT_ID")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("missing OAuth client secret: set CLIENT_SECRET")
	}
	if c.FolderID == "" {
		return fmt.Errorf("missing Drive folder ID: set FOLDER_ID")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
