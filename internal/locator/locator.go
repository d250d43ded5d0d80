// Package locator runs the registry search pipeline: robots policy check,
// search page fetch, listing extraction, detail enrichment and deduplication.
package locator

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/law-makers/locator/internal/engine"
	"github.com/law-makers/locator/internal/ratelimit"
	"github.com/law-makers/locator/internal/reqctx"
	"github.com/law-makers/locator/internal/robots"
	"github.com/law-makers/locator/pkg/models"
)

// Locator searches one registry source. It is not safe for concurrent use.
type Locator struct {
	source   Source
	fetcher  engine.Fetcher
	gate     robots.Checker
	limiter  ratelimit.RateLimiter
	progress ProgressFunc
}

// Option configures a Locator
type Option func(*Locator)

// WithProgress registers fn to be called as detail pages are processed
func WithProgress(fn ProgressFunc) Option {
	return func(l *Locator) {
		l.progress = fn
	}
}

// WithLimiter lets the Locator slow the limiter down to a site's Crawl-delay
func WithLimiter(lim ratelimit.RateLimiter) Option {
	return func(l *Locator) {
		l.limiter = lim
	}
}

// New creates a Locator for src
func New(src Source, fetcher engine.Fetcher, gate robots.Checker, opts ...Option) *Locator {
	l := &Locator{
		source:  src,
		fetcher: fetcher,
		gate:    gate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the registry this Locator searches
func (l *Locator) Source() Source {
	return l.source
}

// Search runs the pipeline for q and returns the deduplicated records.
// A robots denial yields an empty result, not an error.
func (l *Locator) Search(ctx context.Context, q models.Query) ([]models.Record, error) {
	report, err := l.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	return report.Records, nil
}

// Run is Search returning the full report, including per-record enrichment outcomes
func (l *Locator) Run(ctx context.Context, q models.Query) (*models.Report, error) {
	ctx = reqctx.WithRequestContext(ctx, "search")
	logger := reqctx.Logger(ctx)

	report := &models.Report{
		Query:   q,
		Source:  l.source.Name,
		Records: []models.Record{},
	}

	decision := l.gate.Check(ctx, l.source.BaseURL, l.source.SearchPath)
	if !decision.Allowed {
		logger.Warn().
			Str("source", l.source.Name).
			Str("reason", decision.Reason).
			Msg("Search disallowed by robots policy")
		return report, nil
	}
	report.SearchAllowed = true
	l.applyCrawlDelay(ctx, decision.CrawlDelay)

	logger.Info().
		Str("source", l.source.Name).
		Str("first", q.FirstName).
		Str("last", q.LastName).
		Msg("Searching registry")

	page, err := l.fetcher.Get(ctx, l.source.SearchURL(), l.source.params(q))
	if err != nil {
		return nil, reqctx.NewRequestError(ctx, fmt.Errorf("search %s: %w", l.source.Name, err))
	}

	records, err := l.source.extractor().ExtractHTML(bytes.NewReader(page.Body), q)
	if err != nil {
		return nil, reqctx.NewRequestError(ctx,
			engine.NewEngineError(engine.ErrCodeParseError, "search page", err).WithDetail("url", page.URL))
	}

	report.Outcomes, report.DetailsAllowed = l.enrich(ctx, records)

	report.Records = Dedupe(records)
	report.Duplicates = len(records) - len(report.Records)

	logger.Info().
		Int("records", len(report.Records)).
		Int("duplicates", report.Duplicates).
		Dur("elapsed", time.Since(reqctx.GetRequestContext(ctx).StartTime)).
		Msg("Search completed")

	return report, nil
}

// applyCrawlDelay raises the limiter's spacing for the source host when the
// site asks for a longer Crawl-delay than configured
func (l *Locator) applyCrawlDelay(ctx context.Context, delay time.Duration) {
	if l.limiter == nil || delay <= 0 {
		return
	}
	u, err := url.Parse(l.source.BaseURL)
	if err != nil || u.Host == "" {
		return
	}
	if delay > l.limiter.Delay(u.Host) {
		logger := reqctx.Logger(ctx)
		logger.Debug().
			Str("host", u.Host).
			Dur("crawl_delay", delay).
			Msg("Honouring robots Crawl-delay")
		l.limiter.SetDelay(u.Host, delay)
	}
}
