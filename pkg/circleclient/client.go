// Package circleclient provides the main entry point for creating CircleCI
// API v2 clients.
package circleclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/circleci-client/internal/client"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// New creates a new CircleCI API client.
func New(config *circleci.Config) (circleci.Client, error) {
	if config == nil {
		return nil, circleci.ErrConfigRequired
	}

	if config.Token == "" {
		return nil, circleci.ErrTokenRequired
	}

	if config.BaseURL != "" {
		normalized, err := normalizeBaseURL(config.BaseURL)
		if err != nil {
			return nil, err
		}

		config.BaseURL = normalized
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeBaseURL trims a trailing slash and adds the https scheme when none
// is present.
func normalizeBaseURL(baseURL string) (string, error) {
	normalized := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	if normalized == "https://" || normalized == "http://" {
		return "", circleci.ErrNoHostInURL
	}

	return normalized, nil
}
