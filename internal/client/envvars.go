package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/circleci-client/internal/http"
	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
)

// EnvVarsClient implements circleci.EnvVarsClient.
type EnvVarsClient struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug
}

// NewEnvVarsClient creates a new environment variables client.
func NewEnvVarsClient(httpClient *http.Client, slug *circleci.ProjectSlug) *EnvVarsClient {
	return &EnvVarsClient{
		httpClient: httpClient,
		slug:       slug,
	}
}

// List implements circleci.EnvVarsClient.List. Returned values are masked by
// the server.
func (c *EnvVarsClient) List(ctx context.Context, params *circleci.PageParams) (*circleci.ListResponse[circleci.EnvVar], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/envvar", slug)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing environment variables: %w", err)
	}

	var result circleci.ListResponse[circleci.EnvVar]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing environment variables list response: %w", err)
	}

	return &result, nil
}

// Get implements circleci.EnvVarsClient.Get.
func (c *EnvVarsClient) Get(ctx context.Context, name string) (*circleci.EnvVar, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/envvar/%s", slug, url.PathEscape(name))

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting environment variable: %w", err)
	}

	var envVar circleci.EnvVar
	if err := json.Unmarshal(resp.Body, &envVar); err != nil {
		return nil, fmt.Errorf("parsing environment variable response: %w", err)
	}

	return &envVar, nil
}

// Create implements circleci.EnvVarsClient.Create.
func (c *EnvVarsClient) Create(ctx context.Context, name, value string) (*circleci.EnvVar, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/envvar", slug)
	body := map[string]string{
		"name":  name,
		"value": value,
	}

	resp, err := c.httpClient.Post(ctx, path, body, nethttp.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating environment variable: %w", err)
	}

	var envVar circleci.EnvVar
	if err := json.Unmarshal(resp.Body, &envVar); err != nil {
		return nil, fmt.Errorf("parsing environment variable response: %w", err)
	}

	return &envVar, nil
}

// Delete implements circleci.EnvVarsClient.Delete.
func (c *EnvVarsClient) Delete(ctx context.Context, name string) (*circleci.MessageResponse, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/envvar/%s", slug, url.PathEscape(name))

	resp, err := c.httpClient.Delete(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("deleting environment variable: %w", err)
	}

	var message circleci.MessageResponse
	if err := json.Unmarshal(resp.Body, &message); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &message, nil
}
