// Package config resolves the runtime configuration for clip2drive.
//
// Credentials (OAuth client ID and secret, destination folder ID) come from
// the environment, falling back to values embedded at build time via
// -ldflags. The resulting Config struct is constructed once at startup and
// passed explicitly into each component.
package config
