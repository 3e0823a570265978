package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/circleci-client/internal/http"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// ProjectsClient implements circleci.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client, slug *circleci.ProjectSlug) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
		slug:       slug,
	}
}

// Get implements circleci.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context) (*circleci.Project, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s", slug)

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project circleci.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}
