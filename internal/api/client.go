package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudprep/cloudprep-client/internal/auth"
)

// Client is the typed HTTP+JSON client for the exam-practice API. All
// calls are fire-and-await: no retry, no backoff. Authenticated
// operations take an explicit *auth.Session.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given base URL (e.g. "https://host/api").
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do executes one request. sess may be nil for public endpoints; out may
// be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, sess *auth.Session, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := uuid.New().String()
	req.Header.Set("X-Request-ID", reqID)

	if sess != nil && sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("request_id", reqID).Str("method", method).Str("path", path).Msg("transport failure")
		return &Error{
			Code:    CodeNetwork,
			Message: "Network error. Please check your connection.",
			err:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: CodeNetwork, Message: "Failed to read response.", err: err}
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Code: CodeDecode, Status: resp.StatusCode, Message: "Unexpected response format.", err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, sess *auth.Session, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, sess, nil, out)
}

func (c *Client) post(ctx context.Context, path string, sess *auth.Session, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, sess, body, out)
}

func (c *Client) delete(ctx context.Context, path string, sess *auth.Session, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, sess, nil, out)
}
