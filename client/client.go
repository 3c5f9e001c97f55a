// Package client is the typed façade over the Harmonia REST API. Every
// backend operation is one method: it performs exactly one HTTP call and
// returns either the decoded entity or a classified *Error. There are no
// retries, no caching and no request coalescing. The package also carries
// the screen-side state holders (HabitBoard, WaterTracker, CoachChat,
// JournalPad) that apply optimistic mutations and roll them back on failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// defaultInteractiveTimeout bounds ordinary request/response calls.
	defaultInteractiveTimeout = 10 * time.Second
	// defaultUploadTimeout bounds the multipart meal-photo upload.
	defaultUploadTimeout = 60 * time.Second
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	uploader   *http.Client
}

type Option func(*Client)

// WithInteractiveTimeout overrides the timeout for ordinary calls.
func WithInteractiveTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUploadTimeout overrides the timeout for multipart uploads.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) { c.uploader.Timeout = d }
}

// WithTransport swaps the underlying round tripper on both clients, mainly
// for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
		c.uploader.Transport = rt
	}
}

// New builds a client for the given HTTPS origin. The client holds no
// mutable state beyond its configuration and is safe to share across
// goroutines.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultInteractiveTimeout},
		uploader:   &http.Client{Timeout: defaultUploadTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doRead performs one JSON request and returns the raw response. Any failure
// to complete the round trip is a transport error; timeouts included.
func (c *Client) doRead(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, encodeError(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return 0, nil, encodeError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, transportError(err)
	}

	return resp.StatusCode, data, nil
}

// doJSON wraps doRead with the common decode path. A nil out means the
// operation succeeds on any 2xx status without requiring a parseable body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	status, data, err := c.doRead(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if status < 200 || status > 299 {
		return serverError(status, extractDetail(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return decodeError(err)
	}
	return nil
}

// extractDetail pulls the structured {detail} text out of an error body,
// falling back to the {error} shape some middleware writes. Empty when the
// body matches neither.
func extractDetail(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Error
}
