// internal/engine/static/scraper.go
package static

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/locator/internal/engine"
	"github.com/law-makers/locator/internal/ratelimit"
	urlutil "github.com/law-makers/locator/internal/utils/url"
	"github.com/law-makers/locator/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBodySize caps how much of a response body is read
const DefaultMaxBodySize = 5 * 1024 * 1024

// Scraper performs rate-limited GET requests against static HTML pages.
// Every request waits on the limiter, carries the identifying user agent
// and is bounded by the configured timeout.
type Scraper struct {
	limiter     ratelimit.RateLimiter
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	headers     map[string]string
	maxBodySize int64
}

// New creates a new static Scraper with dependency injection
func New(lim ratelimit.RateLimiter, client *http.Client, timeout time.Duration, ua string) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Scraper{
		limiter:     lim,
		client:      client,
		timeout:     timeout,
		userAgent:   ua,
		maxBodySize: DefaultMaxBodySize,
	}
}

// Name returns the name of this scraper
func (s *Scraper) Name() string {
	return "StaticScraper"
}

// WithHeaders sets extra headers sent with every request.
// User-Agent always comes from the scraper itself.
func (s *Scraper) WithHeaders(h map[string]string) *Scraper {
	s.headers = h
	return s
}

// UserAgent returns the identifying user agent sent with every request
func (s *Scraper) UserAgent() string {
	return s.userAgent
}

// Get retrieves rawURL with params appended to its query string
func (s *Scraper) Get(ctx context.Context, rawURL string, params url.Values) (*models.Page, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target, err := urlutil.WithQuery(rawURL, params)
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeValidation, "failed to build request URL",
			fmt.Errorf("%w: %w", engine.ErrInvalidURL, err)).
			WithDetail("url", rawURL)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, target); err != nil {
			return nil, engine.NewEngineError(engine.ErrCodeTimeout, "rate limiter wait aborted", err).
				WithDetail("url", target)
		}
	}

	start := time.Now()

	log.Debug().
		Str("url", target).
		Str("scraper", s.Name()).
		Msg("Starting fetch")

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeValidation, "failed to create request",
			fmt.Errorf("%w: %w", engine.ErrInvalidURL, err)).
			WithDetail("url", target)
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		code, sentinel := engine.ErrCodeNetworkError, engine.ErrNetworkError
		if errors.Is(err, context.DeadlineExceeded) {
			code, sentinel = engine.ErrCodeTimeout, engine.ErrTimeout
		}
		return nil, engine.NewEngineError(code, "failed to fetch URL", fmt.Errorf("%w: %w", sentinel, err)).
			WithDetail("url", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, engine.NewEngineError(engine.ErrCodeHTTPStatus, "unexpected response status",
			NewStatusError(resp.StatusCode, resp.Status, target)).
			WithDetail("url", target).
			WithDetail("status", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	raw, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodySize))
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeNetworkError, "failed to read response body",
			fmt.Errorf("%w: %w", engine.ErrNetworkError, err)).
			WithDetail("url", target)
	}

	body, err := decodeBody(raw, contentType)
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeParseError, "failed to decode response body",
			fmt.Errorf("%w: %w", engine.ErrParseError, err)).
			WithDetail("url", target)
	}

	responseTime := time.Since(start).Milliseconds()

	log.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Int64("response_time_ms", responseTime).
		Msg("Fetch completed")

	return &models.Page{
		URL:          target,
		StatusCode:   resp.StatusCode,
		ContentType:  contentType,
		Body:         body,
		FetchedAt:    time.Now(),
		ResponseTime: responseTime,
	}, nil
}

// Document parses a fetched page with goquery
func Document(page *models.Page) (*goquery.Document, error) {
	if page == nil {
		return nil, fmt.Errorf("nil page")
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeParseError, "failed to parse HTML",
			fmt.Errorf("%w: %w", engine.ErrParseError, err)).
			WithDetail("url", page.URL)
	}
	return doc, nil
}

// decodeBody converts raw to UTF-8 using the declared or sniffed charset.
// An empty body is a valid, empty page.
func decodeBody(raw []byte, contentType string) ([]byte, error) {
	if len(raw) == 0 {
		return []byte{}, nil
	}
	reader, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}
