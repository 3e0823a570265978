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

// PipelinesClient implements circleci.PipelinesClient.
type PipelinesClient struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug
}

// NewPipelinesClient creates a new pipelines client.
func NewPipelinesClient(httpClient *http.Client, slug *circleci.ProjectSlug) *PipelinesClient {
	return &PipelinesClient{
		httpClient: httpClient,
		slug:       slug,
	}
}

// List implements circleci.PipelinesClient.List. The listing is org-wide and
// does not touch the configured project slug.
func (c *PipelinesClient) List(ctx context.Context, params *circleci.PipelineListParams) (*circleci.ListResponse[circleci.Pipeline], error) {
	resp, err := c.httpClient.Get(ctx, "pipeline", params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing pipelines: %w", err)
	}

	var result circleci.ListResponse[circleci.Pipeline]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pipelines list response: %w", err)
	}

	return &result, nil
}

// Get implements circleci.PipelinesClient.Get.
func (c *PipelinesClient) Get(ctx context.Context, pipelineID string) (*circleci.Pipeline, error) {
	path := fmt.Sprintf("pipeline/%s", url.PathEscape(pipelineID))

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline: %w", err)
	}

	var pipeline circleci.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// GetConfig implements circleci.PipelinesClient.GetConfig.
func (c *PipelinesClient) GetConfig(ctx context.Context, pipelineID string) (*circleci.PipelineConfig, error) {
	path := fmt.Sprintf("pipeline/%s/config", url.PathEscape(pipelineID))

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline config: %w", err)
	}

	var config circleci.PipelineConfig
	if err := json.Unmarshal(resp.Body, &config); err != nil {
		return nil, fmt.Errorf("parsing pipeline config response: %w", err)
	}

	return &config, nil
}

// ListWorkflows implements circleci.PipelinesClient.ListWorkflows.
func (c *PipelinesClient) ListWorkflows(ctx context.Context, pipelineID string, params *circleci.PageParams) (*circleci.ListResponse[circleci.Workflow], error) {
	path := fmt.Sprintf("pipeline/%s/workflow", url.PathEscape(pipelineID))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing pipeline workflows: %w", err)
	}

	var result circleci.ListResponse[circleci.Workflow]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pipeline workflows response: %w", err)
	}

	return &result, nil
}

// Trigger implements circleci.PipelinesClient.Trigger. A nil opts triggers
// the project's default branch with no parameters.
func (c *PipelinesClient) Trigger(ctx context.Context, opts *circleci.TriggerPipelineOptions) (*circleci.Pipeline, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/pipeline", slug)

	var body interface{}
	if opts != nil {
		body = opts
	}

	resp, err := c.httpClient.Post(ctx, path, body, nethttp.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("triggering pipeline: %w", err)
	}

	var pipeline circleci.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// ListForProject implements circleci.PipelinesClient.ListForProject.
func (c *PipelinesClient) ListForProject(ctx context.Context, params *circleci.ProjectPipelineParams) (*circleci.ListResponse[circleci.Pipeline], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/pipeline", slug)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing project pipelines: %w", err)
	}

	var result circleci.ListResponse[circleci.Pipeline]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing project pipelines response: %w", err)
	}

	return &result, nil
}

// ListMineForProject implements circleci.PipelinesClient.ListMineForProject.
func (c *PipelinesClient) ListMineForProject(ctx context.Context, params *circleci.PageParams) (*circleci.ListResponse[circleci.Pipeline], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/pipeline/mine", slug)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing own project pipelines: %w", err)
	}

	var result circleci.ListResponse[circleci.Pipeline]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing own project pipelines response: %w", err)
	}

	return &result, nil
}

// GetByNumber implements circleci.PipelinesClient.GetByNumber.
func (c *PipelinesClient) GetByNumber(ctx context.Context, number int64) (*circleci.Pipeline, error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("project/%s/pipeline/%d", slug, number)

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline by number: %w", err)
	}

	var pipeline circleci.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}
