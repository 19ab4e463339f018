package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// HTTPClientConfig holds configuration for the scraper HTTP client
type HTTPClientConfig struct {
	Timeout           time.Duration
	MaxRetries        int
	RetryWaitMin      time.Duration
	RetryWaitMax      time.Duration
	RequestDelay      time.Duration // minimum spacing between requests to the host
	CircuitBreakerMax int           // max consecutive failures before circuit break
	UserAgent         string
}

// DefaultHTTPClientConfig returns recommended defaults
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:           10 * time.Second,
		MaxRetries:        3,
		RetryWaitMin:      200 * time.Millisecond,
		RetryWaitMax:      5 * time.Second,
		RequestDelay:      2 * time.Second,
		CircuitBreakerMax: 5,
		UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	}
}

// ScraperHTTPClient wraps retryablehttp.Client with cooperative rate limiting
// and a circuit breaker. A single limiter is shared by every session so the
// request spacing holds across concurrent pitcher pipelines.
type ScraperHTTPClient struct {
	client            *retryablehttp.Client
	limiter           *rate.Limiter
	userAgent         string
	circuitBreakerMax int
	logger            *logrus.Logger

	// breaker state, shared by concurrent pitcher pipelines
	mu                sync.Mutex
	consecutiveErrors int
	isOpen            bool
	lastError         error
}

// NewScraperHTTPClient creates a new rate-limited HTTP client
func NewScraperHTTPClient(cfg HTTPClientConfig, logger *logrus.Logger) *ScraperHTTPClient {
	if logger == nil {
		logger = logrus.New()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = scraperRetryPolicy()
	retryClient.Logger = nil

	delay := cfg.RequestDelay
	if delay <= 0 {
		delay = time.Nanosecond
	}

	return &ScraperHTTPClient{
		client:            retryClient,
		limiter:           rate.NewLimiter(rate.Every(delay), 1),
		userAgent:         cfg.UserAgent,
		circuitBreakerMax: cfg.CircuitBreakerMax,
		logger:            logger,
	}
}

// Session is a scoped fetch session. All requests made through one session
// share a cookie jar, so server-assigned session state from the first fetch is
// honored by the second. Sessions still share the client's limiter and
// circuit breaker.
type Session struct {
	parent *ScraperHTTPClient
	jar    http.CookieJar
}

// NewSession creates a fresh session with its own cookie jar.
func (c *ScraperHTTPClient) NewSession() (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Session{parent: c, jar: jar}, nil
}

// Close releases the session's cookie state.
func (s *Session) Close() {
	s.jar = nil
}

// Get executes a GET request within the session
func (s *Session) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.parent.userAgent)
	return s.parent.do(req, s.jar)
}

// do executes an HTTP request with rate limiting and circuit breaker
func (c *ScraperHTTPClient) do(req *retryablehttp.Request, jar http.CookieJar) (*http.Response, error) {
	// Check circuit breaker status
	c.mu.Lock()
	if c.isOpen {
		lastError := c.lastError
		c.mu.Unlock()
		return nil, fmt.Errorf("circuit breaker open: %v", lastError)
	}
	c.mu.Unlock()

	// Wait for rate limiter
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	// Attach cookies assigned earlier in the session
	if jar != nil {
		for _, cookie := range jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}

	resp, err := c.client.Do(req)

	// Update circuit breaker state
	if err != nil {
		c.mu.Lock()
		c.consecutiveErrors++
		c.lastError = err
		if c.consecutiveErrors >= c.circuitBreakerMax {
			c.isOpen = true
			c.logger.WithError(err).WithField("consecutive_errors", c.consecutiveErrors).
				Warn("Circuit breaker opened")
		}
		c.mu.Unlock()
		return nil, err
	}

	if jar != nil {
		jar.SetCookies(req.URL, resp.Cookies())
	}

	// Reset circuit breaker on success
	if resp.StatusCode < 500 {
		c.mu.Lock()
		c.consecutiveErrors = 0
		c.isOpen = false
		c.mu.Unlock()
	}

	return resp, nil
}

// Close closes any resources held by the client
func (c *ScraperHTTPClient) Close() error {
	c.client.HTTPClient.CloseIdleConnections()
	return nil
}

// scraperRetryPolicy defines which HTTP responses should trigger a retry
func scraperRetryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			// Retry on network errors
			return true, err
		}

		// Retry on rate limit (429) and server/gateway errors
		if resp.StatusCode == 429 || resp.StatusCode == 500 || resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504 {
			return true, nil
		}

		// Don't retry on other client errors
		return false, nil
	}
}
