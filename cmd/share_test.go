package cmd

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

type spyAuthenticator struct {
	calls int
	err   error
}

func (s *spyAuthenticator) Authenticate(ctx context.Context) (*http.Client, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &http.Client{}, nil
}

type spyRunner struct {
	calls int
	err   error
}

func (s *spyRunner) Run(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestRunShareAuthOnlySkipsPipeline(t *testing.T) {
	auth := &spyAuthenticator{}
	pipe := &spyRunner{}
	newRunner := func(*http.Client) (runner, error) { return pipe, nil }

	err := runShare(context.Background(), auth, newRunner, true)
	if err != nil {
		t.Fatalf("runShare returned error: %v", err)
	}
	if auth.calls != 1 {
		t.Errorf("authenticator called %d times, want 1", auth.calls)
	}
	if pipe.calls != 0 {
		t.Errorf("pipeline called %d times, want 0 with --auth-only", pipe.calls)
	}
}

func TestRunShareRunsPipeline(t *testing.T) {
	auth := &spyAuthenticator{}
	pipe := &spyRunner{}
	newRunner := func(*http.Client) (runner, error) { return pipe, nil }

	err := runShare(context.Background(), auth, newRunner, false)
	if err != nil {
		t.Fatalf("runShare returned error: %v", err)
	}
	if pipe.calls != 1 {
		t.Errorf("pipeline called %d times, want 1", pipe.calls)
	}
}

func TestRunShareAuthFailureIsFatal(t *testing.T) {
	auth := &spyAuthenticator{err: errors.New("exchange failed")}
	pipe := &spyRunner{}
	newRunner := func(*http.Client) (runner, error) { return pipe, nil }

	err := runShare(context.Background(), auth, newRunner, false)
	if err == nil {
		t.Fatal("runShare() = nil, want error when authorization fails")
	}
	if pipe.calls != 0 {
		t.Errorf("pipeline called %d times, want 0 after auth failure", pipe.calls)
	}
}

func TestRunSharePipelineErrorPropagates(t *testing.T) {
	auth := &spyAuthenticator{}
	pipe := &spyRunner{err: errors.New("clipboard is empty")}
	newRunner := func(*http.Client) (runner, error) { return pipe, nil }

	if err := runShare(context.Background(), auth, newRunner, false); err == nil {
		t.Fatal("runShare() = nil, want pipeline error to propagate")
	}
}

func TestIsRootFlag(t *testing.T) {
	for _, arg := range []string{"--help", "-h", "--version", "-v"} {
		if !isRootFlag(arg) {
			t.Errorf("isRootFlag(%q) = false, want true", arg)
		}
	}
	if isRootFlag("--auth-only") {
		t.Error("isRootFlag(--auth-only) = true, want false so it reaches the share command")
	}
}
