package circleci

import (
	"context"
	"time"
)

// ProjectsClient provides access to project metadata.
type ProjectsClient interface {
	// Get returns metadata for the client's configured project.
	Get(ctx context.Context) (*Project, error)
}

// CheckoutKeysClient manages the checkout keys of the configured project.
type CheckoutKeysClient interface {
	List(ctx context.Context, params *PageParams) (*ListResponse[CheckoutKey], error)
	Create(ctx context.Context, keyType CheckoutKeyType) (*CheckoutKey, error)
	Get(ctx context.Context, fingerprint string) (*CheckoutKey, error)
	Delete(ctx context.Context, fingerprint string) (*MessageResponse, error)
}

// EnvVarsClient manages the environment variables of the configured project.
// Values returned by List and Get are masked by the server.
type EnvVarsClient interface {
	List(ctx context.Context, params *PageParams) (*ListResponse[EnvVar], error)
	Get(ctx context.Context, name string) (*EnvVar, error)
	Create(ctx context.Context, name, value string) (*EnvVar, error)
	Delete(ctx context.Context, name string) (*MessageResponse, error)
}

// WorkflowsClient operates on workflows by id, independent of the configured
// project.
type WorkflowsClient interface {
	Get(ctx context.Context, workflowID string) (*Workflow, error)
	// Cancel is fire-and-forget; the server acknowledges with 202.
	Cancel(ctx context.Context, workflowID string) (*MessageResponse, error)
	Rerun(ctx context.Context, workflowID string, opts *RerunOptions) (*WorkflowRerun, error)
	ApproveJob(ctx context.Context, workflowID, approvalRequestID string) (*MessageResponse, error)
	ListJobs(ctx context.Context, workflowID string, params *PageParams) (*ListResponse[WorkflowJob], error)
}

// PipelinesClient operates on pipelines, both org-wide and for the configured
// project.
type PipelinesClient interface {
	List(ctx context.Context, params *PipelineListParams) (*ListResponse[Pipeline], error)
	Get(ctx context.Context, pipelineID string) (*Pipeline, error)
	GetConfig(ctx context.Context, pipelineID string) (*PipelineConfig, error)
	ListWorkflows(ctx context.Context, pipelineID string, params *PageParams) (*ListResponse[Workflow], error)
	Trigger(ctx context.Context, opts *TriggerPipelineOptions) (*Pipeline, error)
	ListForProject(ctx context.Context, params *ProjectPipelineParams) (*ListResponse[Pipeline], error)
	ListMineForProject(ctx context.Context, params *PageParams) (*ListResponse[Pipeline], error)
	GetByNumber(ctx context.Context, number int64) (*Pipeline, error)
}

// InsightsClient exposes the summary metrics and recent run listings of the
// configured project.
type InsightsClient interface {
	ListWorkflowMetrics(ctx context.Context, params *InsightsParams) (*ListResponse[WorkflowMetrics], error)
	ListJobMetrics(ctx context.Context, workflowName string, params *InsightsParams) (*ListResponse[JobMetrics], error)
	ListWorkflowRuns(ctx context.Context, workflowName string, params *RunListParams) (*ListResponse[WorkflowRun], error)
	ListJobRuns(ctx context.Context, workflowName, jobName string, params *RunListParams) (*ListResponse[JobRun], error)
}

// Client is the top-level entry point to the API surface.
type Client interface {
	Projects() ProjectsClient
	CheckoutKeys() CheckoutKeysClient
	EnvVars() EnvVarsClient
	Workflows() WorkflowsClient
	Pipelines() PipelinesClient
	Insights() InsightsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a circleci.Client.
//
// Token is required and is sent on every request in the Circle-Token header;
// no other auth scheme is supported. ProjectSlug is optional: it is only
// needed by project-scoped methods, which fail with ErrProjectSlugRequired
// when it is absent.
//
// By default each call performs exactly one network round trip. Retries are
// opt-in via RetryMax/RetryWaitMin/RetryWaitMax; per-call deadlines belong in
// the context passed to client methods.
type Config struct {
	// Token is the personal or project API token.
	Token string

	// ProjectSlug is the default project reference for project-scoped methods.
	ProjectSlug *ProjectSlug

	// BaseURL overrides the API endpoint; defaults to the hosted API.
	BaseURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each round trip when no context deadline is set.
	HTTPTimeout time.Duration

	// RetryMax enables retries on transient failures when greater than zero.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
