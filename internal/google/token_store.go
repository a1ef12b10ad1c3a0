package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
)

// ErrTokenNotFound signals that no usable token record exists on disk.
// A missing file and a corrupt file are treated identically.
var ErrTokenNotFound = errors.New("no stored OAuth token")

// TokenRecord is the durable form of a granted authorization. At most one
// record exists at a time; it is overwritten on each new authorization.
type TokenRecord struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Scope        string    `json:"scope,omitempty"`
	TokenType    string    `json:"token_type"`
}

// NewTokenRecord converts a token returned by the OAuth exchange into the
// persisted record form.
func NewTokenRecord(t *oauth2.Token) *TokenRecord {
	record := &TokenRecord{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiryDate:   t.Expiry,
		TokenType:    t.TokenType,
	}
	if scope, ok := t.Extra("scope").(string); ok {
		record.Scope = scope
	}
	return record
}

// Token converts the record back into an oauth2 token for installation into
// a token source.
func (r *TokenRecord) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		Expiry:       r.ExpiryDate,
		TokenType:    r.TokenType,
	}
}

// TokenStore reads and writes the single token record at a fixed path.
type TokenStore struct {
	path string
}

// NewTokenStore creates a token store backed by the file at path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load reads and parses the token file. It returns ErrTokenNotFound for a
// missing file, an unparseable file, or a record without an access token.
func (s *TokenStore) Load() (*TokenRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ErrTokenNotFound
	}

	var record TokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrTokenNotFound
	}
	if record.AccessToken == "" {
		return nil, ErrTokenNotFound
	}

	return &record, nil
}

// Save serializes the record and overwrites the token file. Write failures
// propagate to the caller and are fatal for the run.
func (s *TokenStore) Save(record *TokenRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}
