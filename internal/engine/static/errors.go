package static

import (
	"errors"
	"fmt"
)

// StatusError reports a response whose HTTP status indicates failure
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

// StatusCoder is an interface for errors that provide an HTTP status code
type StatusCoder interface {
	GetStatusCode() int
}

func (e *StatusError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, e.URL)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

func (e *StatusError) GetStatusCode() int {
	return e.StatusCode
}

// NewStatusError creates a new StatusError
func NewStatusError(statusCode int, status string, url string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Status:     status,
		URL:        url,
	}
}

// StatusCodeOf returns the HTTP status carried anywhere in err's chain, or 0
func StatusCodeOf(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.GetStatusCode()
	}
	return 0
}
