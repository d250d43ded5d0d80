// Package robots decides whether the locator may fetch a path, based on the
// target site's robots.txt. Every failure mode is treated as a denial.
package robots

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	urlutil "github.com/law-makers/locator/internal/utils/url"
	"github.com/rs/zerolog/log"
	"github.com/temoto/robotstxt"
)

// maxPolicySize bounds how much of a robots.txt body is parsed
const maxPolicySize = 512 * 1024

// Decision is the outcome of a policy check
type Decision struct {
	Allowed    bool
	CrawlDelay time.Duration
	StatusCode int
	Reason     string
}

// Checker is implemented by anything that can answer a policy question
type Checker interface {
	Check(ctx context.Context, base, path string) Decision
}

// Gate fetches and evaluates robots.txt for the configured user agent
type Gate struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// NewGate creates a Gate that identifies itself as userAgent
func NewGate(client *http.Client, userAgent string, timeout time.Duration) *Gate {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Gate{
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Allowed reports whether path on base may be fetched
func (g *Gate) Allowed(ctx context.Context, base, path string) bool {
	return g.Check(ctx, base, path).Allowed
}

// Check fetches robots.txt for base and evaluates path against it
func (g *Gate) Check(ctx context.Context, base, path string) Decision {
	robotsURL := urlutil.RobotsURL(base)

	body, status, err := g.fetch(ctx, robotsURL)
	if err != nil {
		log.Debug().Err(err).Str("url", robotsURL).Msg("robots.txt unreachable, denying")
		return Decision{Allowed: false, StatusCode: status, Reason: err.Error()}
	}
	if status >= 400 {
		log.Debug().Int("status", status).Str("url", robotsURL).Msg("robots.txt returned error status, denying")
		return Decision{Allowed: false, StatusCode: status, Reason: fmt.Sprintf("robots.txt returned HTTP %d", status)}
	}

	data, err := robotstxt.FromString(body)
	if err != nil {
		log.Debug().Err(err).Str("url", robotsURL).Msg("robots.txt unparseable, denying")
		return Decision{Allowed: false, StatusCode: status, Reason: "robots.txt parse error: " + err.Error()}
	}

	decision := Decision{
		Allowed:    data.TestAgent(path, g.userAgent),
		CrawlDelay: data.FindGroup(g.userAgent).CrawlDelay,
		StatusCode: status,
	}
	if !decision.Allowed {
		decision.Reason = fmt.Sprintf("path %s disallowed for %s", path, g.userAgent)
	}

	log.Debug().
		Str("url", robotsURL).
		Str("path", path).
		Bool("allowed", decision.Allowed).
		Dur("crawl_delay", decision.CrawlDelay).
		Msg("Robots policy evaluated")

	return decision
}

func (g *Gate) fetch(ctx context.Context, robotsURL string) (string, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create robots request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPolicySize))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read robots.txt: %w", err)
	}
	return string(raw), resp.StatusCode, nil
}
