package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/law-makers/locator/internal/utils/headers"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when an explicitly named config file does not exist
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk configuration. Every field is optional.
type File struct {
	LogLevel  string `yaml:"log_level,omitempty"`
	JSONLog   *bool  `yaml:"json_log,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
	Proxy     string `yaml:"proxy,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	Delay     string `yaml:"delay,omitempty"`
	Progress  *bool  `yaml:"progress,omitempty"`

	Headers map[string]string `yaml:"headers,omitempty"`
}

// LoadFile reads a YAML config file from path
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// FindFile returns path when set, otherwise locator/config.yaml under the
// XDG config directories. It returns "" when no file is found.
func FindFile(path string) string {
	if path != "" {
		return path
	}
	found, err := xdg.SearchConfigFile(filepath.Join(AppName, DefaultConfigFile))
	if err != nil {
		return ""
	}
	return found
}

// apply copies the values set in f onto c
func (f *File) apply(c *Config) error {
	if f == nil {
		return nil
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.JSONLog != nil {
		c.JSONLog = *f.JSONLog
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Proxy != "" {
		c.Proxy = f.Proxy
	}
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Progress != nil {
		c.Progress = *f.Progress
	}
	if len(f.Headers) > 0 {
		lines := make([]string, 0, len(f.Headers))
		for k, v := range f.Headers {
			lines = append(lines, k+": "+v)
		}
		parsed, err := headers.ParseHeaders(lines)
		if err != nil {
			return fmt.Errorf("headers: %w", err)
		}
		c.Headers = headers.Merge(c.Headers, parsed)
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.HTTPTimeout = d
	}
	if f.Delay != "" {
		d, err := time.ParseDuration(f.Delay)
		if err != nil {
			return fmt.Errorf("delay: %w", err)
		}
		c.RequestDelay = d
	}
	return nil
}
