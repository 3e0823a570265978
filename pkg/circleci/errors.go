package circleci

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a response whose status code did not match the status
// the endpoint declared. Body carries the raw response for inspection.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Body       []byte `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// NewAPIError builds an APIError from a raw response body, extracting the
// optional message field when the body parses as JSON.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	// Error bodies are {"message": ...}; anything else leaves Message empty.
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
	}

	return apiErr
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrTokenRequired       = errors.New("API token is required")
	ErrProjectSlugRequired = errors.New("project slug is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
	ErrNoMoreItems         = errors.New("no more items")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
