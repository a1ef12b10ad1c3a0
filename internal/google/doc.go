// Package google provides OAuth2 authentication and token persistence for
// the Google Drive API.
//
// The Authenticator implements the authorization-code grant for a desktop
// app: a stored token is reused when present; otherwise the user's browser
// is opened and a single-use localhost listener captures the redirect. The
// granted token is persisted as a JSON record in the user's home directory
// and is the sole authority for whether re-authorization is needed.
package google
