// Package functions invokes the lingua analysis functions over HTTP.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvocationFailed is the only error Invoke returns; the cause is logged.
var ErrInvocationFailed = stderrors.New("functions: invocation failed")

// DefaultClientInfo is sent as x-client-info unless overridden.
const DefaultClientInfo = "lingo-go/1.0"

// TokenSource supplies the signed-in user's access token, or "" when signed out.
type TokenSource interface {
	AccessToken() string
}

// Client calls functions at {baseURL}/functions/v1/{name}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	session    TokenSource
	clientInfo string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAPIKey sets the anonymous project key sent as apikey and, when signed
// out, as the bearer token.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithSession authorizes calls with the session's access token.
func WithSession(ts TokenSource) Option {
	return func(c *Client) { c.session = ts }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithClientInfo overrides the x-client-info header.
func WithClientInfo(info string) Option {
	return func(c *Client) { c.clientInfo = info }
}

// New creates a Client. The default http.Client has no timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		clientInfo: DefaultClientInfo,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke posts body to the named function and decodes the JSON reply into out.
// Transport errors, non-2xx statuses and undecodable replies all return
// ErrInvocationFailed.
func (c *Client) Invoke(ctx context.Context, name string, body, out interface{}) error {
	requestID := uuid.NewString()
	log := c.log.With().Str("function", name).Str("request_id", requestID).Logger()

	if err := c.invoke(ctx, name, requestID, body, out); err != nil {
		log.Error().Err(err).Msg("function invocation failed")
		return ErrInvocationFailed
	}
	log.Debug().Msg("function invoked")
	return nil
}

func (c *Client) invoke(ctx context.Context, name, requestID string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/functions/v1/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.clientInfo != "" {
		req.Header.Set("x-client-info", c.clientInfo)
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Error != "" {
			return fmt.Errorf("function returned %d: %s", resp.StatusCode, errBody.Error)
		}
		return fmt.Errorf("function returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) bearer() string {
	if c.session != nil {
		if token := c.session.AccessToken(); token != "" {
			return token
		}
	}
	return c.apiKey
}
