// ABOUTME: Core request operation shared by every backend call
// ABOUTME: Resolves URLs, attaches identity/API-key headers, and normalizes errors

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Header names fixed by the backend contract.
const (
	apiKeyHeader = "x-carenexa-api-key"
	userIDHeader = "x-user-id"
)

// Identity supplies the user id attached to authenticated requests.
// The session store implements it.
type Identity interface {
	UserID() (string, bool)
}

// Client is the single choke point for backend HTTP calls.
type Client struct {
	baseURL  string
	apiKey   string
	httpc    *http.Client
	identity Identity
	logger   *slog.Logger
}

// New creates a Client for the given backend origin. A trailing slash on
// baseURL is stripped. identity may be nil, in which case no x-user-id
// header is ever attached.
func New(baseURL, apiKey string, identity Identity) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		httpc:    &http.Client{},
		identity: identity,
		logger:   slog.Default().With("component", "api"),
	}
}

// BaseURL returns the resolved backend origin without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL makes a backend-returned file or share URL absolute. Absolute
// URLs pass through; relative paths are joined to the backend origin.
func (c *Client) ResolveURL(ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.baseURL + ref
}

type requestConfig struct {
	jsonBody any
	hasJSON  bool
	rawBody  io.Reader
	header   http.Header
}

// RequestOption customizes a single backend request.
type RequestOption func(*requestConfig)

// WithHeader sets an extra header on the request. Setting x-user-id this
// way suppresses the identity lookup.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.header == nil {
			rc.header = http.Header{}
		}
		rc.header.Set(key, value)
	}
}

// WithRawBody sends the reader as the request body untouched. It is ignored
// when a JSON body is present.
func WithRawBody(r io.Reader) RequestOption {
	return func(rc *requestConfig) {
		rc.rawBody = r
	}
}

func withJSON(v any) RequestOption {
	return func(rc *requestConfig) {
		rc.jsonBody = v
		rc.hasJSON = true
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, out, opts...)
}

// Post issues a POST request. A non-nil jsonBody is serialized and sent as
// application/json; a nil jsonBody leaves the request body untouched.
func (c *Client) Post(ctx context.Context, path string, jsonBody, out any, opts ...RequestOption) error {
	if jsonBody != nil {
		opts = append(opts, withJSON(jsonBody))
	}
	return c.do(ctx, http.MethodPost, path, out, opts...)
}

// Put issues a PUT request with the same body semantics as Post.
func (c *Client) Put(ctx context.Context, path string, jsonBody, out any, opts ...RequestOption) error {
	if jsonBody != nil {
		opts = append(opts, withJSON(jsonBody))
	}
	return c.do(ctx, http.MethodPut, path, out, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, out, opts...)
}

// do is the core request operation. On 2xx the response body is decoded
// into out when possible; bodies that fail to parse are treated as absent,
// not fatal. Every failure returns *Error.
func (c *Client) do(ctx context.Context, method, path string, out any, opts ...RequestOption) error {
	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}

	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	body := rc.rawBody
	if rc.hasJSON {
		encoded, err := json.Marshal(rc.jsonBody)
		if err != nil {
			return &Error{Message: "encoding request body: " + err.Error(), cause: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &Error{Message: "building request: " + err.Error(), cause: err}
	}

	for key, values := range rc.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	if req.Header.Get(userIDHeader) == "" && c.identity != nil {
		if userID, ok := c.identity.UserID(); ok {
			req.Header.Set(userIDHeader, userID)
		}
	}

	if rc.hasJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	// Always ask for fresh data; never serve a cached response.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	// Parse the body regardless of status; tolerate non-JSON bodies.
	var parsed any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			parsed = nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Message: errorMessage(parsed, resp.StatusCode),
			Status:  resp.StatusCode,
			Details: parsed,
		}
	}

	if out != nil && parsed != nil {
		// Lenient decode: a body that does not match the caller's shape is
		// treated as absent, matching the backend's loosely-typed payloads.
		_ = json.Unmarshal(raw, out)
	}

	return nil
}

// errorMessage picks the failure message in priority order: body "message"
// field, body "error" field, the HTTP status text, then a fixed fallback.
func errorMessage(parsed any, status int) string {
	if obj, ok := parsed.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fallbackMessage
}

// Download fetches a backend-generated file (PDF export) by absolute URL.
// File URLs are public, pre-signed by the backend: no identity or API-key
// headers are attached. The caller owns the response body.
func (c *Client) Download(ctx context.Context, fileURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, transportError(err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &Error{
			Message: "failed to download file",
			Status:  resp.StatusCode,
		}
	}

	return resp, nil
}
