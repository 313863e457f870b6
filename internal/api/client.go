// Package api is the thin REST client for the upstream banking API. Every
// failure mode on a request — unreachable host, non-2xx status, malformed
// JSON — collapses into a single *TransportError so callers degrade uniformly
// regardless of which endpoint misbehaved.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrTransport is the sentinel every request failure matches via errors.Is.
var ErrTransport = errors.New("upstream transport failure")

// TransportError carries the failed operation and its underlying cause.
type TransportError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Client issues GET/POST requests against a single base URL and decodes
// JSON response bodies.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get requests a server-relative path with optional query parameters and
// decodes the JSON response into out. Pass a *json.RawMessage as out to defer
// decoding when the payload shape is not trusted.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &TransportError{Method: http.MethodGet, Path: path, Err: err}
	}

	return c.do(req, path, out)
}

// Post sends body as JSON to a server-relative path and decodes the JSON
// response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Method: http.MethodPost, Path: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Method: http.MethodPost, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: req.Method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{
			Method: req.Method,
			Path:   path,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Method: req.Method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
