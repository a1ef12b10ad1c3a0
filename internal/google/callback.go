package google

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// ErrMissingAuthCode signals that the authorization redirect arrived without
// a code parameter.
var ErrMissingAuthCode = errors.New("authorization callback carried no code parameter")

const successPage = `<!DOCTYPE html>
<html><head><title>clip2drive</title></head>
<body><h1>Authorization complete</h1>
<p>clip2drive is now authorized. You can close this window.</p></body></html>`

const failurePage = `<!DOCTYPE html>
<html><head><title>clip2drive</title></head>
<body><h1>Authorization failed</h1>
<p>clip2drive did not receive an authorization code. Close this window and try again.</p></body></html>`

type callbackResult struct {
	code string
	err  error
}

// callbackServer is a single-use HTTP listener that captures the OAuth
// redirect. It accepts exactly one request; Wait shuts the listener down
// once that request arrives or the context expires.
type callbackServer struct {
	server  *http.Server
	ln      net.Listener
	results chan callbackResult
	errs    chan error
}

func newCallbackServer(addr, state string) (*callbackServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start callback listener on %s: %w", addr, err)
	}

	s := &callbackServer{
		ln:      ln,
		results: make(chan callbackResult, 1),
		errs:    make(chan error, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code, err := callbackCode(r, state)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, failurePage)
		} else {
			fmt.Fprint(w, successPage)
		}
		// Only the first redirect resolves the pending authorization.
		select {
		case s.results <- callbackResult{code: code, err: err}:
		default:
		}
	})

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errs <- err
		}
	}()

	return s, nil
}

// Addr returns the address the listener is bound to.
func (s *callbackServer) Addr() string {
	return s.ln.Addr().String()
}

// Wait blocks until the single expected redirect arrives, the listener
// fails, or ctx expires. The listener is closed in all cases.
func (s *callbackServer) Wait(ctx context.Context) (string, error) {
	var res callbackResult
	select {
	case res = <-s.results:
	case err := <-s.errs:
		res = callbackResult{err: fmt.Errorf("callback listener failed: %w", err)}
	case <-ctx.Done():
		res = callbackResult{err: fmt.Errorf("timed out waiting for authorization callback: %w", ctx.Err())}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)

	return res.code, res.err
}

// callbackCode extracts the authorization code from a redirect request. The
// state parameter is validated when the provider echoes one back.
func callbackCode(r *http.Request, state string) (string, error) {
	q := r.URL.Query()
	if got := q.Get("state"); got != "" && got != state {
		return "", fmt.Errorf("authorization state mismatch")
	}
	code := q.Get("code")
	if code == "" {
		return "", ErrMissingAuthCode
	}
	return code, nil
}
