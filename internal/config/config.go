package config

import (
	"fmt"
	"os"
	"time"

	"github.com/law-makers/locator/internal/utils/headers"
	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP/Scraping
	HTTPTimeout time.Duration
	UserAgent   string
	Proxy       string
	BaseURL     string

	// Extra request headers, e.g. a From: contact address
	Headers map[string]string

	// Politeness delay between requests to one host
	RequestDelay time.Duration

	// Progress bar on stderr during detail enrichment
	Progress bool

	// ConfigFile is the file the values were read from, if any
	ConfigFile string
}

// Default returns a Config populated with the built-in defaults
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		JSONLog:      DefaultJSONLog,
		HTTPTimeout:  DefaultHTTPTimeout,
		UserAgent:    DefaultUserAgent,
		RequestDelay: DefaultRequestDelay,
		Progress:     DefaultProgress,
	}
}

// Load builds a Config by combining defaults, an optional config file, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	explicit := ""
	if cmd != nil {
		if f := cmd.Flag("config"); f != nil {
			explicit = f.Value.String()
		}
	}
	if path := FindFile(explicit); path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := file.apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cmd != nil {
		if err := applyFlags(cmd, cfg); err != nil {
			return nil, err
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(EnvProxy); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelay, err)
		}
		cfg.RequestDelay = d
	}
	return nil
}

// applyFlags copies explicitly set flags onto cfg so flag defaults never
// override the file or environment
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	if f := cmd.Flag("user-agent"); f != nil && f.Changed {
		if s := f.Value.String(); s != "" {
			cfg.UserAgent = s
		}
	}
	if f := cmd.Flag("proxy"); f != nil && f.Changed {
		cfg.Proxy = f.Value.String()
	}
	if f := cmd.Flag("base-url"); f != nil && f.Changed {
		cfg.BaseURL = f.Value.String()
	}
	if f := cmd.Flag("timeout"); f != nil && f.Changed {
		d, err := time.ParseDuration(f.Value.String())
		if err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if f := cmd.Flag("delay"); f != nil && f.Changed {
		d, err := time.ParseDuration(f.Value.String())
		if err != nil {
			return fmt.Errorf("--delay: %w", err)
		}
		cfg.RequestDelay = d
	}
	if extra, err := cmd.Flags().GetStringArray("header"); err == nil && len(extra) > 0 {
		parsed, err := headers.ParseHeaders(extra)
		if err != nil {
			return fmt.Errorf("--header: %w", err)
		}
		cfg.Headers = headers.Merge(cfg.Headers, parsed)
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		cfg.JSONLog = f.Value.String() == "true"
	}
	if f := cmd.Flag("no-progress"); f != nil && f.Value.String() == "true" {
		cfg.Progress = false
	}
	if f := cmd.Flag("quiet"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "error"
		cfg.Progress = false
	}
	if f := cmd.Flag("verbose"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "debug"
	}
	return nil
}
