// Package transport is the HTTP plumbing shared by the upstream provider
// clients: one GET, JSON decode, and a circuit breaker per upstream.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	// ErrUnavailable is returned while the breaker is open
	ErrUnavailable = errors.New("upstream unavailable")
)

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// Options configures a Client
type Options struct {
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	UserAgent   string
}

// DefaultOptions mirrors the config defaults
var DefaultOptions = Options{
	Timeout:     10 * time.Second,
	MaxFailures: 5,
	OpenTimeout: 30 * time.Second,
	UserAgent:   "weather-dash/1.0",
}

type Client struct {
	name       string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	userAgent  string
	logger     *slog.Logger
}

// New creates a client for the named upstream
func New(name string, opts Options, logger *slog.Logger) *Client {
	if opts.MaxFailures == 0 {
		opts.MaxFailures = DefaultOptions.MaxFailures
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions.UserAgent
	}

	logger = logger.With("component", "transport", "upstream", name)
	maxFailures := opts.MaxFailures

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Client errors mean our request was wrong, not that upstream is down
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.StatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		name:       name,
		httpClient: &http.Client{Timeout: opts.Timeout},
		breaker:    breaker,
		userAgent:  opts.UserAgent,
		logger:     logger,
	}
}

// GetJSON fetches rawURL and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	c.logger.Debug("fetching", "url", rawURL)

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.get(ctx, rawURL, out)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, err)
		}
		c.logger.Error("upstream request failed", "url", rawURL, "error", err)
		return err
	}

	return nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
