package engine

import (
	"context"
	"net/url"

	"github.com/law-makers/locator/pkg/models"
)

// Fetcher is the interface that all page retrieval engines must implement
type Fetcher interface {
	// Get waits for the rate limiter, then retrieves rawURL with params appended.
	// A non-success status is returned as an error.
	Get(ctx context.Context, rawURL string, params url.Values) (*models.Page, error)

	// Name returns the name of the fetcher implementation
	Name() string
}
