package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvUserAgent, EnvProxy, EnvBaseURL, EnvDelay} {
		t.Setenv(k, "")
	}
}

func newCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "locator"}
	RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(newCmd(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3*time.Second, cfg.RequestDelay)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Progress)
	assert.Empty(t, cfg.Proxy)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
user_agent: FileAgent/1.0
proxy: http://file-proxy:8080
base_url: https://mirror.example
timeout: 45s
delay: 10s
json_log: true
progress: false
`)

	cfg, err := Load(newCmd(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "FileAgent/1.0", cfg.UserAgent)
	assert.Equal(t, "http://file-proxy:8080", cfg.Proxy)
	assert.Equal(t, "https://mirror.example", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10*time.Second, cfg.RequestDelay)
	assert.True(t, cfg.JSONLog)
	assert.False(t, cfg.Progress)

	t.Setenv(EnvUserAgent, "EnvAgent/1.0")
	t.Setenv(EnvDelay, "5s")

	cfg, err = Load(newCmd(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "EnvAgent/1.0", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.RequestDelay)

	cfg, err = Load(newCmd(t, "--config", path, "--user-agent", "FlagAgent/1.0", "--delay", "0s", "--timeout", "2s"))
	require.NoError(t, err)
	assert.Equal(t, "FlagAgent/1.0", cfg.UserAgent)
	assert.Equal(t, time.Duration(0), cfg.RequestDelay)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "http://file-proxy:8080", cfg.Proxy, "unset flags keep file values")
}

func TestLoad_VerboseAndQuiet(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(newCmd(t, "--config", path, "--verbose"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = Load(newCmd(t, "--config", path, "--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Progress)

	cfg, err = Load(newCmd(t, "--config", path, "--no-progress"))
	require.NoError(t, err)
	assert.False(t, cfg.Progress)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		file string
		env  map[string]string
		args []string
	}{
		{name: "bad yaml", file: "timeout: [", args: nil},
		{name: "bad file duration", file: "delay: soon"},
		{name: "bad env delay", env: map[string]string{EnvDelay: "often"}},
		{name: "bad flag timeout", args: []string{"--timeout", "nope"}},
		{name: "zero timeout", args: []string{"--timeout", "0s"}},
		{name: "negative delay", args: []string{"--delay", "-1s"}},
		{name: "proxy scheme", args: []string{"--proxy", "ftp://proxy:21"}},
		{name: "proxy host", args: []string{"--proxy", "localhost"}},
		{name: "relative base url", args: []string{"--base-url", "/opi"}},
		{name: "bad log level", file: "log_level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.file)
			args := append([]string{"--config", path}, tt.args...)

			_, err := Load(newCmd(t, args...))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(newCmd(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestFindFile_Explicit(t *testing.T) {
	assert.Equal(t, "/etc/locator.yaml", FindFile("/etc/locator.yaml"))
}

func TestLoad_SocksProxyAccepted(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(newCmd(t, "--config", path, "--proxy", "socks5://127.0.0.1:9050"))
	require.NoError(t, err)
	assert.Equal(t, "socks5://127.0.0.1:9050", cfg.Proxy)
}

func TestLoad_Headers(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
headers:
  from: records@example.org
  X-Purpose: research
`)

	cfg, err := Load(newCmd(t, "--config", path, "-H", "From: override@example.org"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"From":      "override@example.org",
		"X-Purpose": "research",
	}, cfg.Headers)

	_, err = Load(newCmd(t, "--config", path, "-H", "User-Agent: Other/1.0"))
	assert.Error(t, err)

	bad := writeConfig(t, "headers:\n  Host: elsewhere.example\n")
	_, err = Load(newCmd(t, "--config", bad))
	assert.Error(t, err)
}
