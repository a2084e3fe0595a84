package nist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/cwbudde/algo-libs/libs/linelist"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// ErrStatus indicates a non-2xx response from the endpoint.
var ErrStatus = errors.New("nist: unexpected status")

const (
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
	// maxBody caps the response size read into memory.
	maxBody = 64 << 20
)

type config struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     logrus.FieldLogger
}

// Option configures a [Client].
type Option func(*config)

// WithBaseURL overrides the endpoint URL.
func WithBaseURL(u string) Option {
	return func(cfg *config) {
		if u != "" {
			cfg.baseURL = u
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithRateLimit allows at most perSecond requests per second with the given
// burst. A non-positive rate disables pacing.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cfg *config) {
		if perSecond <= 0 {
			cfg.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func defaultConfig() config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return config{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		logger:     discard,
	}
}

// Client fetches LIBS pages. It is safe for concurrent use.
type Client struct {
	cfg config
}

// NewClient returns a client with the given options applied.
func NewClient(opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{cfg: cfg}
}

// Provider returns c as a line-list provider.
func (c *Client) Provider() linelist.Provider {
	return linelist.PayloadProvider{Source: c}
}

// URL returns the query URL for req.
func (c *Client) URL(req plasma.Request) string {
	return QueryURL(c.cfg.baseURL, req)
}

// Payload performs the query for req and returns the response body.
func (c *Client) Payload(ctx context.Context, req plasma.Request) (string, error) {
	if c.cfg.limiter != nil {
		if err := c.cfg.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("nist: rate limit: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	u := c.URL(req)
	log := c.cfg.logger.WithField("url", u)
	log.Debug("nist request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("nist: build request: %w", err)
	}

	start := time.Now()
	resp, err := c.cfg.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("nist: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("nist: read body: %w", err)
	}

	log.WithFields(logrus.Fields{
		"bytes":   len(body),
		"elapsed": time.Since(start),
	}).Debug("nist response")

	return string(body), nil
}
