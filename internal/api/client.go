// Package api implements the REST client for the CRM backend. All
// persistence and business rules live behind this API; the client only
// moves JSON and reports failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/config"
	"github.com/leadline-crm/leadline/internal/session"
)

// HTTPError is returned for any non-2xx backend response.
type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Is maps well-known statuses onto the shared sentinel errors so callers
// can use errors.Is without inspecting status codes.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	default:
		return false
	}
}

// Client issues authenticated requests against the CRM backend.
type Client struct {
	httpClient *http.Client
	sess       *session.Session
	baseURL    string
}

// NewClient creates a client for the configured backend. The session may
// be nil for unauthenticated calls (login).
func NewClient(cfg config.API, sess *session.Session) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		sess:    sess,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// WithSession returns a copy of the client that authenticates with the
// given session. Used right after login, before the session is saved.
func (c *Client) WithSession(sess *session.Session) *Client {
	clone := *c
	clone.sess = sess
	return &clone
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to build request URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode request body: %w", marshalErr)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sess.Valid() {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	slog.Debug("backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrAPIConnection, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// decodeErrorMessage extracts the backend's error message, falling back
// to the raw body text.
func decodeErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return string(data)
}
