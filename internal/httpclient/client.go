package httpclient

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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	// DefaultMaxRetries is the retry budget used by Request.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the fixed wait between attempts.
	DefaultRetryDelay = time.Second
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries an identifier shared by all attempts of one call.
	RequestIDHeader = "X-Request-ID"

	defaultBaseURL   = "http://127.0.0.1:5000"
	defaultUserAgent = "wbgnews/0.1"
	maxErrorBody     = 4 << 10
)

// Observer receives per-attempt instrumentation. It is implemented by
// metrics.ClientMetrics; a nil Observer disables instrumentation.
type Observer interface {
	ObserveAttempt(method, outcome string, elapsed time.Duration)
	ObserveRetry(method string)
	ObserveFailure(method, kind string)
}

// RequestOptions describes a single logical request. The zero value is a GET
// with no body and only the default headers.
type RequestOptions struct {
	Method  string
	Headers http.Header
	Body    []byte
}

// Client issues JSON requests with a bounded, fixed-delay retry loop.
type Client struct {
	baseURL           *url.URL
	http              *http.Client
	userAgent         string
	maxRetries        int
	retryDelay        time.Duration
	timeout           time.Duration
	retryClientErrors bool
	breaker           *gobreaker.CircuitBreaker
	limiter           *rate.Limiter
	logger            *slog.Logger
	observer          Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests inject transports here).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithMaxRetries sets the retry budget used by Request.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelay sets the fixed delay between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.retryDelay = d
		}
	}
}

// WithTimeout bounds each attempt. Zero disables the per-attempt deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithRetryClientErrors makes every non-2xx status retryable, including 4xx.
func WithRetryClientErrors(enabled bool) Option {
	return func(c *Client) { c.retryClientErrors = enabled }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver attaches request instrumentation.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithRateLimit caps outgoing attempts to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithBreaker wraps each logical request (all of its attempts) in a circuit breaker.
func WithBreaker(cfg BreakerConfig) Option {
	return func(c *Client) { c.breaker = newBreaker(cfg, c) }
}

// New builds a Client resolving relative URLs against baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    base,
		http:       &http.Client{},
		userAgent:  defaultUserAgent,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// MaxRetries returns the retry budget used by Request.
func (c *Client) MaxRetries() int {
	return c.maxRetries
}

// Request performs a request with the client's default retry budget and
// decodes a JSON response into dest. A nil dest discards the body.
func (c *Client) Request(ctx context.Context, target string, opts RequestOptions, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.RequestRetries(ctx, target, opts, c.maxRetries, dest)
}

// RequestRetries performs a request allowing up to retries additional attempts
// after the first. Network failures and retryable statuses are retried after a
// fixed delay; JSON decode failures are returned immediately.
func (c *Client) RequestRetries(ctx context.Context, target string, opts RequestOptions, retries int, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if retries < 0 {
		retries = 0
	}
	reqURL, err := c.resolve(target)
	if err != nil {
		return err
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := uuid.NewString()

	run := func() error {
		return c.retryLoop(ctx, reqURL, method, opts, retries, requestID, dest)
	}
	if c.breaker == nil {
		return run()
	}
	_, err = c.breaker.Execute(func() (any, error) { return nil, run() })
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.observeFailure(method, KindCircuitOpen)
		return fmt.Errorf("%s %s: %w", method, reqURL, ErrCircuitOpen)
	}
	return err
}

func (c *Client) retryLoop(ctx context.Context, reqURL *url.URL, method string, opts RequestOptions, retries int, requestID string, dest any) error {
	for {
		err := c.attempt(ctx, reqURL, method, opts, requestID, dest)
		if err == nil {
			return nil
		}
		if retries <= 0 || !c.retryable(ctx, err) {
			c.observeFailure(method, Kind(err))
			return err
		}

		c.logger.Warn("api request failed, retrying",
			slog.String("url", reqURL.String()),
			slog.Int("attempts_left", retries),
			slog.String("request_id", requestID),
			slog.Any("error", err))
		if c.observer != nil {
			c.observer.ObserveRetry(method)
		}

		if err := sleep(ctx, c.retryDelay); err != nil {
			c.observeFailure(method, KindCanceled)
			return fmt.Errorf("retry aborted: %w", err)
		}
		retries--
	}
}

func (c *Client) attempt(ctx context.Context, reqURL *url.URL, method string, opts RequestOptions, requestID string, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{URL: reqURL.String(), Err: err}
		}
	}

	attemptCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header = c.headers(opts.Headers, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observeAttempt(method, KindNetwork, start)
		return &NetworkError{URL: reqURL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		c.observeAttempt(method, KindHTTPStatus, start)
		return &HTTPStatusError{URL: reqURL.String(), Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observeAttempt(method, KindNetwork, start)
		return &NetworkError{URL: reqURL.String(), Err: fmt.Errorf("read body: %w", err)}
	}
	c.observeAttempt(method, "ok", start)

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &JSONParseError{URL: reqURL.String(), Err: err}
	}
	return nil
}

// retryable decides whether err earns another attempt. Cancellation of the
// caller's context always stops the loop.
func (c *Client) retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var (
		netErr    *NetworkError
		statusErr *HTTPStatusError
	)
	switch {
	case errors.As(err, &netErr):
		return true
	case errors.As(err, &statusErr):
		if c.retryClientErrors || statusErr.Status >= 500 {
			return true
		}
		return statusErr.Status == http.StatusRequestTimeout || statusErr.Status == http.StatusTooManyRequests
	default:
		return false
	}
}

// headers merges caller headers over the defaults; the caller wins on conflict.
func (c *Client) headers(custom http.Header, requestID string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("User-Agent", c.userAgent)
	h.Set(RequestIDHeader, requestID)
	for key, values := range custom {
		h[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	return h
}

func (c *Client) resolve(target string) (*url.URL, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, fmt.Errorf("request url is empty")
	}
	rel, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", target, err)
	}
	if rel.IsAbs() {
		return rel, nil
	}
	return c.baseURL.ResolveReference(rel), nil
}

func (c *Client) observeAttempt(method, outcome string, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveAttempt(method, outcome, time.Since(start))
	}
}

func (c *Client) observeFailure(method, kind string) {
	if c.observer != nil {
		c.observer.ObserveFailure(method, kind)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
