package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/law-makers/locator/internal/config"
	"github.com/law-makers/locator/internal/locator"
	"github.com/law-makers/locator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}

func TestNew_WiresSource(t *testing.T) {
	cfg := config.Default()
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Equal(t, locator.NCDOCBaseURL, a.Source.BaseURL)
	assert.Equal(t, cfg.UserAgent, a.Fetcher.UserAgent())
	assert.Equal(t, cfg.HTTPTimeout, a.HTTPClient.Timeout)
	assert.Equal(t, 3*time.Second, a.RateLimiter.Delay("webapps.doc.state.nc.us"))
}

func TestNew_InvalidProxy(t *testing.T) {
	cfg := config.Default()
	cfg.Proxy = "http://[::1"
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestApplication_NewLocator_EndToEnd(t *testing.T) {
	var (
		mu     sync.Mutex
		agents []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents = append(agents, r.UserAgent())
		mu.Unlock()
		switch r.URL.Path {
		case "/robots.txt":
			fmt.Fprint(w, "User-agent: *\nAllow: /\n")
		case locator.NCDOCSearchPath:
			fmt.Fprint(w, `<table><tr><td>Doe, John A</td><td>00123456</td></tr></table>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.BaseURL = server.URL
	cfg.RequestDelay = 0
	cfg.UserAgent = "TestAgent/1.0"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close(context.Background())

	records, err := a.NewLocator().Search(context.Background(), models.Query{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "00123456", records[0].DocNumber)
	assert.Equal(t, "Doe", records[0].LastName)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, agents, 2)
	for _, ua := range agents {
		assert.Equal(t, "TestAgent/1.0", ua)
	}
}
