package fetch

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options configures the outbound HTTP client.
type Options struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	UserAgent    string

	// RatePerSec caps outbound requests per second. Zero disables the limit.
	RatePerSec float64

	// MaxBodySize caps how many body bytes are read back. Zero means 10 MiB.
	MaxBodySize int64

	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// Response is a completed fetch: status, capped body, and a content type
// sniffed from the bytes when the server sent none.
type Response struct {
	Status      int
	Body        []byte
	ContentType string
}

// Client fetches URLs with retries, rate limiting, and a circuit breaker.
// Safe for concurrent use.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	breaker *breaker
	maxBody int64
	log     *zap.Logger
}

const defaultMaxBody = 10 << 20

// NewClient builds a Client from opts. The retryablehttp transport handles
// backoff on transient failures; resty layers headers and request plumbing
// on top of it.
func NewClient(opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = nil

	ua := opts.UserAgent
	if ua == "" {
		ua = "vulpes/0.1"
	}

	hc := resty.NewWithClient(rc.StandardClient()).
		SetDoNotParseResponse(true).
		SetHeader("User-Agent", ua).
		SetHeader("Accept", "text/html,application/xhtml+xml,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")

	var limiter *rate.Limiter
	if opts.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSec), 1)
	}

	maxBody := opts.MaxBodySize
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	return &Client{
		http:    hc,
		limiter: limiter,
		breaker: newBreaker(opts.BreakerThreshold, opts.BreakerCooldown),
		maxBody: maxBody,
		log:     log,
	}
}

// Get fetches rawURL and returns the response regardless of status code.
// Network and protocol failures come back as *Error with a Kind.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, &Error{Kind: KindInvalidURL, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindTransport, Err: err}
		}
	}

	start := time.Now()
	resp, err := c.breaker.execute(func() (*resty.Response, error) {
		return c.http.R().SetContext(ctx).Get(rawURL)
	})
	if err != nil {
		c.log.Warn("fetch failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return nil, &Error{Kind: KindTransport, Err: err}
	}

	raw := resp.RawBody()
	defer raw.Close()

	body, err := io.ReadAll(io.LimitReader(raw, c.maxBody))
	if err != nil {
		return nil, &Error{Kind: KindBody, Err: fmt.Errorf("read body: %w", err)}
	}

	ct := resp.Header().Get("Content-Type")
	if ct == "" {
		ct = mimetype.Detect(body).String()
	}

	c.log.Debug("fetch complete",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return &Response{
		Status:      resp.StatusCode(),
		Body:        body,
		ContentType: ct,
	}, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", rawURL)
	}
	return nil
}
