package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.WordOracle = (*Client)(nil)

// maxDrain bounds how much of a response body is read before closing it.
const maxDrain = 64 << 10

// Client validates candidates against the dictionary API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimiter replaces the limiter built from the settings.
func WithRateLimiter(l *RateLimiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// WithVersion stamps version onto the default User-Agent, giving
// "keyword-solver/<version>". A configured User-Agent is left alone.
func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" && c.userAgent == domain.DefaultUserAgent {
			c.userAgent = domain.DefaultUserAgent + "/" + version
		}
	}
}

// NewClient creates a dictionary client from oracle settings.
func NewClient(settings domain.OracleSettings, opts ...Option) (*Client, error) {
	base, err := url.Parse(settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %w", domain.ErrInvalidInput, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base url %q must be absolute", domain.ErrInvalidInput, settings.BaseURL)
	}

	userAgent := settings.UserAgent
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(base.String(), "/") + "/",
		userAgent:  userAgent,
		httpClient: http.DefaultClient,
		limiter:    NewRateLimiter(settings.MinSpacing),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LookupURL returns the URL requested for candidate.
func (c *Client) LookupURL(candidate string) string {
	return c.baseURL + url.PathEscape(strings.ToLower(candidate))
}

// Validate looks candidate up and classifies the response.
func (c *Client) Validate(ctx context.Context, candidate string) domain.Verdict {
	if ctx.Err() != nil {
		return domain.Cancelled()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		logger.Debug("Dictionary lookup of %s held back: %v", candidate, err)
		return domain.Cancelled()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LookupURL(candidate), nil)
	if err != nil {
		return domain.TransportError(err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Cancelled()
		}
		logger.Debug("GET %s failed: %v", req.URL, err)
		return domain.TransportError(transportMessage(err))
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)
		_ = resp.Body.Close()
	}()

	logger.Debug("GET %s -> %d (%s)", req.URL, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	switch resp.StatusCode {
	case http.StatusOK:
		return domain.Valid()
	case http.StatusNotFound:
		return domain.NotFound()
	case http.StatusTooManyRequests:
		if d, ok := retryAfter(resp.Header.Get(HeaderRetryAfter), time.Now()); ok {
			logger.Warn("Dictionary rate limited, cooling down for %s", d)
			c.limiter.RecordRateLimit(d)
		}
		return domain.RateLimited()
	default:
		return domain.ServiceError(resp.StatusCode, statusText(resp))
	}
}

// statusText returns the reason phrase of resp, e.g. "Internal Server Error".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// transportMessage strips the method and URL that net/http prepends.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
