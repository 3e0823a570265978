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

// InsightsClient implements circleci.InsightsClient.
type InsightsClient struct {
	httpClient *http.Client
	slug       *circleci.ProjectSlug
}

// NewInsightsClient creates a new insights client.
func NewInsightsClient(httpClient *http.Client, slug *circleci.ProjectSlug) *InsightsClient {
	return &InsightsClient{
		httpClient: httpClient,
		slug:       slug,
	}
}

// ListWorkflowMetrics implements circleci.InsightsClient.ListWorkflowMetrics.
func (c *InsightsClient) ListWorkflowMetrics(ctx context.Context, params *circleci.InsightsParams) (*circleci.ListResponse[circleci.WorkflowMetrics], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("insights/%s/workflows", slug)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing workflow metrics: %w", err)
	}

	var result circleci.ListResponse[circleci.WorkflowMetrics]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing workflow metrics response: %w", err)
	}

	return &result, nil
}

// ListJobMetrics implements circleci.InsightsClient.ListJobMetrics.
func (c *InsightsClient) ListJobMetrics(ctx context.Context, workflowName string, params *circleci.InsightsParams) (*circleci.ListResponse[circleci.JobMetrics], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("insights/%s/workflows/%s/jobs", slug, url.PathEscape(workflowName))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing job metrics: %w", err)
	}

	var result circleci.ListResponse[circleci.JobMetrics]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing job metrics response: %w", err)
	}

	return &result, nil
}

// ListWorkflowRuns implements circleci.InsightsClient.ListWorkflowRuns.
func (c *InsightsClient) ListWorkflowRuns(ctx context.Context, workflowName string, params *circleci.RunListParams) (*circleci.ListResponse[circleci.WorkflowRun], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("insights/%s/workflows/%s", slug, url.PathEscape(workflowName))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing workflow runs: %w", err)
	}

	var result circleci.ListResponse[circleci.WorkflowRun]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing workflow runs response: %w", err)
	}

	return &result, nil
}

// ListJobRuns implements circleci.InsightsClient.ListJobRuns.
func (c *InsightsClient) ListJobRuns(ctx context.Context, workflowName, jobName string, params *circleci.RunListParams) (*circleci.ListResponse[circleci.JobRun], error) {
	slug, err := c.slug.Resolve()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("insights/%s/workflows/%s/jobs/%s", slug, url.PathEscape(workflowName), url.PathEscape(jobName))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing job runs: %w", err)
	}

	var result circleci.ListResponse[circleci.JobRun]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing job runs response: %w", err)
	}

	return &result, nil
}
