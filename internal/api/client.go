// Package api is the typed client for the Fit Guide HTTP API. One method per
// endpoint; every response is decoded into an explicit struct at this
// boundary so malformed payloads fail here instead of at render time.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is overridable via FITGUIDE_API_URL or --api-url.
	DefaultBaseURL = "http://localhost:8000"

	apiPrefix      = "/api/"
	requestTimeout = 10 * time.Second
)

var (
	// ErrUnauthorized marks a rejected or missing token; the caller decides
	// whether to hint at re-login. No refresh is attempted.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrNoProfile marks the API's 404 on profile-gated endpoints before
	// onboarding has run.
	ErrNoProfile = errors.New("profile not set up")
)

// Error is a non-2xx response, carrying the server's error message when the
// body was parseable.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api request failed with status %d", e.StatusCode)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New returns a client with the fixed 10-second timeout. An empty token is
// fine for the public endpoints (login, register, password reset).
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: requestTimeout}
}

func (c *Client) url(path string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return base + apiPrefix + strings.TrimLeft(path, "/")
}

// do executes one JSON round trip. A non-nil out must be a pointer; a nil
// out discards the body. Non-2xx returns *Error with the server message.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// doBinary fetches a raw payload (the monthly report PDF).
func (c *Client) doBinary(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}
	return body, nil
}

// serverMessage pulls the API's "error" (or "message") field out of an
// error body, tolerating non-JSON responses.
func serverMessage(body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	for _, m := range []string{parsed.Error, parsed.Detail, parsed.Message} {
		if m != "" {
			return m
		}
	}
	return ""
}

// noProfile maps the API's profile-missing 404 onto the sentinel so callers
// can route to onboarding instead of reporting a generic failure.
func noProfile(err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w (run `fitguide profile setup`)", ErrNoProfile)
	}
	return err
}
