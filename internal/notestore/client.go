// Package notestore is the client of the note service RPC API.
//
// Every method is a JSON POST to {Endpoint}/{Method} with a body of the form
// {"authToken": ..., "params": {...}}. The response carries either "result"
// or "error".
package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
)

// Config configures a Client.
type Config struct {
	Endpoint  string
	Token     string
	UserAgent string

	// Retry configuration for transport errors and 5xx responses.
	MaxRetries    int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration

	// SleepOnRateLimit waits out rate limits instead of failing.
	SleepOnRateLimit bool

	// Timeout bounds each HTTP attempt.
	Timeout time.Duration
}

// Client implements domain.NoteService over HTTP.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     domain.Logger
	sleep      func(context.Context, time.Duration) error
	notify     func(string)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithLogger sets the request logger.
func WithLogger(logger domain.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithSleep replaces the wait used between retries.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// WithNotify sets a callback for user-visible notices such as rate limit waits.
func WithNotify(notify func(string)) Option {
	return func(c *Client) { c.notify = notify }
}

// New creates a client. Zero retry settings get defaults.
func New(config Config, opts ...Option) *Client {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = time.Second
	}
	if config.RetryMaxDelay == 0 {
		config.RetryMaxDelay = 10 * time.Second
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "gnote"
	}

	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     log.NopLogger{},
		sleep:      sleepContext,
		notify:     func(string) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint derives the RPC endpoint of a service host.
func Endpoint(host string) string {
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/") + "/edam/json"
	}
	return "https://" + host + "/edam/json"
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Shared returns a client for another note store, sharing transport and settings.
func (c *Client) Shared(noteStoreURL, token string) domain.NoteService {
	clone := *c
	clone.config.Endpoint = noteStoreURL
	clone.config.Token = token
	return &clone
}

type request struct {
	AuthToken string `json:"authToken,omitempty"`
	Params    any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *wireError      `json:"error,omitempty"`
}

// call invokes method and decodes the result into out, which may be nil.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(request{AuthToken: c.config.Token, Params: params})
	if err != nil {
		return fmt.Errorf("notestore: encode %s: %w", method, err)
	}

	for {
		resp, err := c.roundTrip(ctx, method, body)
		if err != nil {
			return err
		}

		if resp.Error != nil {
			err := resp.Error.err()
			var rl *RateLimitError
			if errors.As(err, &rl) && c.config.SleepOnRateLimit {
				c.notify(fmt.Sprintf("Rate Limit Hit: Sleeping %d seconds before continuing", rl.Duration))
				c.logger.Warn("notestore: %s rate limited for %ds", method, rl.Duration)
				if err := c.sleep(ctx, time.Duration(rl.Duration)*time.Second); err != nil {
					return err
				}
				continue
			}
			c.logger.Error("notestore: %s: %v", method, err)
			return err
		}

		if out == nil || len(resp.Result) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("notestore: decode %s: %w", method, err)
		}
		return nil
	}
}

// roundTrip posts body, retrying transport errors and retryable statuses
// with exponential backoff.
func (c *Client) roundTrip(ctx context.Context, method string, body []byte) (*response, error) {
	url := strings.TrimRight(c.config.Endpoint, "/") + "/" + method
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay * time.Duration(1<<uint(attempt-1))
			if delay > c.config.RetryMaxDelay {
				delay = c.config.RetryMaxDelay
			}
			c.logger.Debug("notestore: retrying %s (attempt %d/%d) after %v", method, attempt, c.config.MaxRetries, delay)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("notestore: build request: %w", err)
		}
		reqID := uuid.NewString()
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.config.UserAgent)
		req.Header.Set("X-Request-Id", reqID)

		c.logger.Debug("notestore: %s request %s", method, reqID)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("notestore: %s: %w", method, err)
			if isRetryableError(err) {
				continue
			}
			return nil, lastErr
		}

		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("notestore: read %s response: %w", method, err)
			continue
		}

		var decoded response
		jsonErr := json.Unmarshal(data, &decoded)
		if jsonErr == nil && decoded.Error != nil {
			return &decoded, nil
		}

		if isRetryableStatus(resp.StatusCode) {
			lastErr = &StatusError{StatusCode: resp.StatusCode}
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		if jsonErr != nil {
			return nil, fmt.Errorf("notestore: decode %s response: %w", method, jsonErr)
		}
		return &decoded, nil
	}

	return nil, fmt.Errorf("notestore: all retry attempts failed: %w", lastErr)
}

func isRetryableError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()
	for _, pattern := range []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"TLS handshake timeout",
		"EOF",
		"broken pipe",
		"no such host",
		"network is unreachable",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ domain.NoteService = (*Client)(nil)
