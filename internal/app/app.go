// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/law-makers/locator/internal/config"
	"github.com/law-makers/locator/internal/engine/static"
	"github.com/law-makers/locator/internal/locator"
	"github.com/law-makers/locator/internal/ratelimit"
	"github.com/law-makers/locator/internal/robots"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter *ratelimit.DomainLimiter
	HTTPClient  *http.Client
	Fetcher     *static.Scraper
	Gate        *robots.Gate
	Source      locator.Source
	startTime   time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the per-host rate limiter with the politeness delay
//   - Initializes the HTTP client with timeouts and the optional proxy
//   - Creates the fetcher and the robots policy gate
//
// If any step fails, an error is returned and no resources are allocated.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := setupLogger(cfg, os.Stderr)

	rateLimiter := ratelimit.NewDomainLimiter(cfg.RequestDelay)
	logger.Debug().
		Dur("delay", cfg.RequestDelay).
		Msg("Rate limiter initialized")

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", cfg.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: transport,
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Bool("proxy", cfg.Proxy != "").
		Msg("HTTP client initialized")

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: rateLimiter,
		HTTPClient:  httpClient,
		Fetcher:     static.New(rateLimiter, httpClient, cfg.HTTPTimeout, cfg.UserAgent).WithHeaders(cfg.Headers),
		Gate:        robots.NewGate(httpClient, cfg.UserAgent, cfg.HTTPTimeout),
		Source:      locator.NCDOC().WithBaseURL(cfg.BaseURL),
		startTime:   time.Now(),
	}

	logger.Info().
		Str("source", app.Source.Name).
		Str("base_url", app.Source.BaseURL).
		Msg("Application initialized successfully")
	return app, nil
}

// setupLogger sets the global level and writer and returns the logger
func setupLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	// Treat "info" as non-verbose (don't display info logs unless -v is used)
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer = w
	if !cfg.JSONLog {
		logWriter = zerolog.ConsoleWriter{Out: w}
	}

	log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()

	logger := log.Logger
	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")
	return logger
}

// NewLocator builds a Locator for the configured source sharing the
// application's fetcher, gate and limiter
func (a *Application) NewLocator(opts ...locator.Option) *locator.Locator {
	opts = append([]locator.Option{locator.WithLimiter(a.RateLimiter)}, opts...)
	return locator.New(a.Source, a.Fetcher, a.Gate, opts...)
}

// Close releases idle connections held by the HTTP client.
// A context with a timeout should be provided to prevent indefinite blocking.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Info().Msg("Shutting down application")

	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	uptime := time.Since(a.startTime)
	a.Logger.Info().Dur("uptime", uptime).Msg("Application shutdown complete")
	return nil
}
