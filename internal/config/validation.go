package config

import (
	"fmt"
	"net/url"

	urlutil "github.com/law-makers/locator/internal/utils/url"
	"github.com/rs/zerolog"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request delay must be >= 0")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Proxy != "" {
		u, err := url.Parse(c.Proxy)
		if err != nil || u.Host == "" {
			return fmt.Errorf("proxy must be a URL such as http://host:port")
		}
		switch u.Scheme {
		case "http", "https", "socks5", "socks5h":
		default:
			return fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
		}
	}
	if c.BaseURL != "" {
		if err := urlutil.ValidateURL(c.BaseURL); err != nil {
			return fmt.Errorf("base url: %w", err)
		}
	}
	return nil
}
