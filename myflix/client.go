package myflix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adenw/flixctl/session"
)

// Client talks to the myFlix REST API. It owns the session store and reads it
// for the bearer token and username needed to build requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new myFlix client against the given base URL.
func NewClient(baseURL string, store *session.Store, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("myFlix API URL is required")
	}
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		session: store,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Session returns the session store the client reads and writes.
func (c *Client) Session() *session.Store {
	return c.session
}

// doRequest performs an HTTP request against the API. When withAuth is set
// and a token is resident, the bearer authorization header is attached; a
// missing token never blocks the request client-side, the call goes out
// without the header and the server decides. The raw body is returned for
// any 2xx status.
//
// Both failure modes collapse into ErrRequestFailed: the technical detail
// goes to the log only.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any, withAuth bool) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("url", url).
			Msg("Request never reached the server")
		return nil, ErrRequestFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("url", url).
			Msg("Failed to read response body")
		return nil, ErrRequestFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", url).
			Str("body", string(body)).
			Msg("API request failed")
		return nil, ErrRequestFailed
	}

	return body, nil
}

// decodeBody unmarshals a response body into v. An absent body leaves v at
// its zero value so downstream consumers never deal with nulls; a present
// body that does not decode fails fast instead of propagating an ad hoc
// shape.
func (c *Client) decodeBody(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Error().Err(err).
			Str("body", string(data)).
			Msg("Failed to decode API response")
		return ErrMalformedResponse
	}
	return nil
}
