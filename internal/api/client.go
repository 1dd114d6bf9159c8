// Package api is the shared REST client for the marketplace backend.
// It centralizes the transport conventions every lookup and submission
// relies on: JSON in and out, the full body read up front, the empty-body
// rule, and the backend's error envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers on the wire, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is a fully drained HTTP response. The body is read eagerly so
// callers can test emptiness and decode without touching the connection.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// ServerError reports whether the status code is in the 5xx range.
func (r *Response) ServerError() bool { return r.StatusCode >= 500 }

// Empty reports whether the body carried no payload at all.
func (r *Response) Empty() bool { return len(bytes.TrimSpace(r.Body)) == 0 }

// DecodeJSON unmarshals the body into out.
func (r *Response) DecodeJSON(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorEnvelope is the backend's failure body shape.
type errorEnvelope struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

// Message extracts the backend's error message from a failure body,
// falling back to "Error <status>" when none is present.
func (r *Response) Message() string {
	var env errorEnvelope
	if err := json.Unmarshal(r.Body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fmt.Sprintf("Error %d", r.StatusCode)
}

// StatusError is a well-formed non-2xx reply from the backend.
type StatusError struct {
	StatusCode int
	Msg        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Msg)
}

// EmptyBodyError marks a reply whose body carried nothing, which the
// backend's contract never allows.
type EmptyBodyError struct{ StatusCode int }

func (e *EmptyBodyError) Error() string {
	return fmt.Sprintf("empty response body (status %d)", e.StatusCode)
}

// Client talks to one marketplace backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout
// defaults to 15 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// Do performs one request and drains the body. The returned error covers
// transport failures only; HTTP-level failures come back in the Response
// for the caller to classify.
func (c *Client) Do(ctx context.Context, method, path string, header http.Header, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

// GetJSON fetches path and decodes a 2xx JSON body into out. Empty bodies
// and non-2xx statuses come back as *EmptyBodyError and *StatusError.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if resp.Empty() {
		return &EmptyBodyError{StatusCode: resp.StatusCode}
	}
	if !resp.OK() {
		return &StatusError{StatusCode: resp.StatusCode, Msg: resp.Message()}
	}
	return resp.DecodeJSON(out)
}
