// Package rest is the live HTTP backend. All requests use a JSON content
// type and a cookie jar so cookie-based session auth survives across calls.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"canopy/internal/api"
	"canopy/internal/logging"
)

// DefaultTimeout bounds a single request round trip
const DefaultTimeout = 30 * time.Second

// Client is the low-level HTTP plumbing shared by all operations
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

// NewClient creates a client for the given base URL. A cookie jar is always
// installed; the backend relies on session cookies for auth.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
	}
}

// WithHeaders merges extra headers into every request
func (c *Client) WithHeaders(headers map[string]string) *Client {
	c.headers = headers
	return c
}

// WithHTTPClient swaps the underlying http.Client (tests)
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient.Jar == nil {
		httpClient.Jar = c.httpClient.Jar
	}
	c.httpClient = httpClient
	return c
}

// errorBody is the shape of non-2xx response bodies
type errorBody struct {
	Message string `json:"message"`
}

// envelope is the canonical `{data, success}` wrapper of 2xx responses
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

// do issues one request and decodes the response body into out (when out is
// non-nil). Errors are classified: transport failures become NetworkError,
// 401 becomes AuthError, any other non-2xx becomes StatusError with the
// server message when present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Debug("Request failed", "method", method, "path", path, "error", err)
		return &api.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &api.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb) // message is optional

		if resp.StatusCode == http.StatusUnauthorized {
			return &api.AuthError{Message: eb.Message}
		}
		return &api.StatusError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// doData decodes the `data` field of an enveloped 2xx response into out
func (c *Client) doData(ctx context.Context, method, path string, body, out any) error {
	var env envelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data from %s: %w", path, err)
	}
	return nil
}
