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

// WorkflowsClient implements circleci.WorkflowsClient. Workflows are
// addressed by id, so no project slug is involved.
type WorkflowsClient struct {
	httpClient *http.Client
}

// NewWorkflowsClient creates a new workflows client.
func NewWorkflowsClient(httpClient *http.Client) *WorkflowsClient {
	return &WorkflowsClient{
		httpClient: httpClient,
	}
}

// Get implements circleci.WorkflowsClient.Get.
func (c *WorkflowsClient) Get(ctx context.Context, workflowID string) (*circleci.Workflow, error) {
	path := fmt.Sprintf("workflow/%s", url.PathEscape(workflowID))

	resp, err := c.httpClient.Get(ctx, path, nil, nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting workflow: %w", err)
	}

	var workflow circleci.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}

// Cancel implements circleci.WorkflowsClient.Cancel.
func (c *WorkflowsClient) Cancel(ctx context.Context, workflowID string) (*circleci.MessageResponse, error) {
	path := fmt.Sprintf("workflow/%s/cancel", url.PathEscape(workflowID))

	resp, err := c.httpClient.Post(ctx, path, nil, nethttp.StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("canceling workflow: %w", err)
	}

	var message circleci.MessageResponse
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &message); err != nil {
			return nil, fmt.Errorf("parsing cancel response: %w", err)
		}
	}

	return &message, nil
}

// Rerun implements circleci.WorkflowsClient.Rerun. A nil opts reruns the
// whole workflow.
func (c *WorkflowsClient) Rerun(ctx context.Context, workflowID string, opts *circleci.RerunOptions) (*circleci.WorkflowRerun, error) {
	path := fmt.Sprintf("workflow/%s/rerun", url.PathEscape(workflowID))

	var body interface{}
	if opts != nil {
		body = opts
	}

	resp, err := c.httpClient.Post(ctx, path, body, nethttp.StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("rerunning workflow: %w", err)
	}

	var rerun circleci.WorkflowRerun
	if err := json.Unmarshal(resp.Body, &rerun); err != nil {
		return nil, fmt.Errorf("parsing rerun response: %w", err)
	}

	return &rerun, nil
}

// ApproveJob implements circleci.WorkflowsClient.ApproveJob.
func (c *WorkflowsClient) ApproveJob(ctx context.Context, workflowID, approvalRequestID string) (*circleci.MessageResponse, error) {
	path := fmt.Sprintf("workflow/%s/approve/%s", url.PathEscape(workflowID), url.PathEscape(approvalRequestID))

	resp, err := c.httpClient.Post(ctx, path, nil, nethttp.StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("approving job: %w", err)
	}

	var message circleci.MessageResponse
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &message); err != nil {
			return nil, fmt.Errorf("parsing approve response: %w", err)
		}
	}

	return &message, nil
}

// ListJobs implements circleci.WorkflowsClient.ListJobs.
func (c *WorkflowsClient) ListJobs(ctx context.Context, workflowID string, params *circleci.PageParams) (*circleci.ListResponse[circleci.WorkflowJob], error) {
	path := fmt.Sprintf("workflow/%s/job", url.PathEscape(workflowID))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues(), nethttp.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing workflow jobs: %w", err)
	}

	var result circleci.ListResponse[circleci.WorkflowJob]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing workflow jobs response: %w", err)
	}

	return &result, nil
}
