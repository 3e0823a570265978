package circleci

import (
	"time"
)

// ListResponse represents a paginated list response. NextPageToken is an
// opaque continuation cursor; an empty token means the listing is exhausted.
type ListResponse[T any] struct {
	Items         []T    `json:"items"           yaml:"items"`
	NextPageToken string `json:"next_page_token" yaml:"next_page_token"`
}

// VCSProvider identifies the version control system hosting a project.
type VCSProvider string

const (
	VCSGitHub    VCSProvider = "github"
	VCSBitbucket VCSProvider = "bitbucket"
)

// WorkflowStatus enumerates the states a workflow can report.
type WorkflowStatus string

const (
	WorkflowStatusSuccess      WorkflowStatus = "success"
	WorkflowStatusRunning      WorkflowStatus = "running"
	WorkflowStatusNotRun       WorkflowStatus = "not_run"
	WorkflowStatusFailed       WorkflowStatus = "failed"
	WorkflowStatusError        WorkflowStatus = "error"
	WorkflowStatusFailing      WorkflowStatus = "failing"
	WorkflowStatusOnHold       WorkflowStatus = "on_hold"
	WorkflowStatusCanceled     WorkflowStatus = "canceled"
	WorkflowStatusUnauthorized WorkflowStatus = "unauthorized"
)

// CheckoutKeyType enumerates the kinds of checkout key that can be created.
type CheckoutKeyType string

const (
	CheckoutKeyTypeUserKey   CheckoutKeyType = "user-key"
	CheckoutKeyTypeDeployKey CheckoutKeyType = "deploy-key"
)

// Project represents project metadata as returned by the API.
type Project struct {
	Slug             string           `json:"slug"              yaml:"slug"`
	Name             string           `json:"name"              yaml:"name"`
	ID               string           `json:"id"                yaml:"id"`
	OrganizationName string           `json:"organization_name" yaml:"organization_name"`
	OrganizationSlug string           `json:"organization_slug" yaml:"organization_slug"`
	OrganizationID   string           `json:"organization_id"   yaml:"organization_id"`
	VCSInfo          *ProjectVCSInfo  `json:"vcs_info,omitempty" yaml:"vcs_info,omitempty"`
}

// ProjectVCSInfo describes the VCS backing a project.
type ProjectVCSInfo struct {
	VCSURL        string `json:"vcs_url"        yaml:"vcs_url"`
	Provider      string `json:"provider"       yaml:"provider"`
	DefaultBranch string `json:"default_branch" yaml:"default_branch"`
}

// CheckoutKey represents a checkout key attached to a project. The private
// half never leaves the server; only the public key material is returned.
type CheckoutKey struct {
	PublicKey   string    `json:"public-key"  yaml:"public-key"`
	Type        string    `json:"type"        yaml:"type"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Preferred   bool      `json:"preferred"   yaml:"preferred"`
	CreatedAt   time.Time `json:"created-at"  yaml:"created-at"`
}

// EnvVar represents a project environment variable. Values are masked by the
// server on read.
type EnvVar struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Workflow represents a single workflow within a pipeline run.
type Workflow struct {
	ID             string         `json:"id"                  yaml:"id"`
	Name           string         `json:"name"                yaml:"name"`
	Status         WorkflowStatus `json:"status"              yaml:"status"`
	PipelineID     string         `json:"pipeline_id"         yaml:"pipeline_id"`
	PipelineNumber int64          `json:"pipeline_number"     yaml:"pipeline_number"`
	ProjectSlug    string         `json:"project_slug"        yaml:"project_slug"`
	CanceledBy     string         `json:"canceled_by,omitempty" yaml:"canceled_by,omitempty"`
	ErroredBy      string         `json:"errored_by,omitempty"  yaml:"errored_by,omitempty"`
	StartedBy      string         `json:"started_by"          yaml:"started_by"`
	Tag            string         `json:"tag,omitempty"       yaml:"tag,omitempty"`
	CreatedAt      time.Time      `json:"created_at"          yaml:"created_at"`
	StoppedAt      *time.Time     `json:"stopped_at,omitempty" yaml:"stopped_at,omitempty"`
}

// WorkflowJob represents one job within a workflow: a build, or a manual
// approval gate carrying an approval request id.
type WorkflowJob struct {
	ID                string     `json:"id"                            yaml:"id"`
	Name              string     `json:"name"                          yaml:"name"`
	Type              string     `json:"type"                          yaml:"type"`
	Status            string     `json:"status"                        yaml:"status"`
	JobNumber         int64      `json:"job_number,omitempty"          yaml:"job_number,omitempty"`
	ProjectSlug       string     `json:"project_slug"                  yaml:"project_slug"`
	Dependencies      []string   `json:"dependencies"                  yaml:"dependencies"`
	CanceledBy        string     `json:"canceled_by,omitempty"         yaml:"canceled_by,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"         yaml:"approved_by,omitempty"`
	ApprovalRequestID string     `json:"approval_request_id,omitempty" yaml:"approval_request_id,omitempty"`
	StartedAt         *time.Time `json:"started_at,omitempty"          yaml:"started_at,omitempty"`
	StoppedAt         *time.Time `json:"stopped_at,omitempty"          yaml:"stopped_at,omitempty"`
}

// WorkflowRerun is the response to a workflow rerun request.
type WorkflowRerun struct {
	WorkflowID string `json:"workflow_id" yaml:"workflow_id"`
}

// Pipeline represents one triggered execution of a project's configuration.
type Pipeline struct {
	ID          string          `json:"id"               yaml:"id"`
	Number      int64           `json:"number"           yaml:"number"`
	ProjectSlug string          `json:"project_slug"     yaml:"project_slug"`
	State       string          `json:"state"            yaml:"state"`
	CreatedAt   time.Time       `json:"created_at"       yaml:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Errors      []PipelineError `json:"errors"           yaml:"errors"`
	Trigger     *Trigger        `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	VCS         *PipelineVCS    `json:"vcs,omitempty"    yaml:"vcs,omitempty"`
}

// PipelineError describes a configuration or plan error recorded on a pipeline.
type PipelineError struct {
	Type    string `json:"type"    yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

// Trigger describes what started a pipeline.
type Trigger struct {
	Type       string       `json:"type"        yaml:"type"`
	ReceivedAt time.Time    `json:"received_at" yaml:"received_at"`
	Actor      TriggerActor `json:"actor"       yaml:"actor"`
}

// TriggerActor identifies the user behind a trigger.
type TriggerActor struct {
	Login     string `json:"login"      yaml:"login"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// PipelineVCS describes the revision a pipeline was built from.
type PipelineVCS struct {
	ProviderName        string  `json:"provider_name"         yaml:"provider_name"`
	OriginRepositoryURL string  `json:"origin_repository_url" yaml:"origin_repository_url"`
	TargetRepositoryURL string  `json:"target_repository_url" yaml:"target_repository_url"`
	Revision            string  `json:"revision"              yaml:"revision"`
	Branch              string  `json:"branch,omitempty"      yaml:"branch,omitempty"`
	Tag                 string  `json:"tag,omitempty"         yaml:"tag,omitempty"`
	Commit              *Commit `json:"commit,omitempty"      yaml:"commit,omitempty"`
}

// Commit is the subject/body pair of the revision a pipeline was built from.
type Commit struct {
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body"    yaml:"body"`
}

// PipelineConfig carries the source and compiled configuration for a pipeline.
type PipelineConfig struct {
	Source   string `json:"source"   yaml:"source"`
	Compiled string `json:"compiled" yaml:"compiled"`
}

// WorkflowMetrics is the summary metrics entry for one workflow of a project.
type WorkflowMetrics struct {
	Name        string      `json:"name"         yaml:"name"`
	WindowStart time.Time   `json:"window_start" yaml:"window_start"`
	WindowEnd   time.Time   `json:"window_end"   yaml:"window_end"`
	Metrics     MetricsData `json:"metrics"      yaml:"metrics"`
}

// JobMetrics is the summary metrics entry for one job within a workflow.
type JobMetrics struct {
	Name        string      `json:"name"         yaml:"name"`
	WindowStart time.Time   `json:"window_start" yaml:"window_start"`
	WindowEnd   time.Time   `json:"window_end"   yaml:"window_end"`
	Metrics     MetricsData `json:"metrics"      yaml:"metrics"`
}

// MetricsData aggregates run outcomes over a reporting window.
type MetricsData struct {
	TotalRuns        int64           `json:"total_runs"        yaml:"total_runs"`
	SuccessfulRuns   int64           `json:"successful_runs"   yaml:"successful_runs"`
	FailedRuns       int64           `json:"failed_runs"       yaml:"failed_runs"`
	SuccessRate      float64         `json:"success_rate"      yaml:"success_rate"`
	Throughput       float64         `json:"throughput"        yaml:"throughput"`
	MTTR             int64           `json:"mttr"              yaml:"mttr"`
	TotalCreditsUsed int64           `json:"total_credits_used" yaml:"total_credits_used"`
	DurationMetrics  DurationMetrics `json:"duration_metrics"  yaml:"duration_metrics"`
}

// DurationMetrics summarizes run durations in seconds.
type DurationMetrics struct {
	Min               int64   `json:"min"                yaml:"min"`
	Max               int64   `json:"max"                yaml:"max"`
	Median            int64   `json:"median"             yaml:"median"`
	Mean              int64   `json:"mean"               yaml:"mean"`
	P95               int64   `json:"p95"                yaml:"p95"`
	StandardDeviation float64 `json:"standard_deviation" yaml:"standard_deviation"`
}

// WorkflowRun is one recent execution of a workflow.
type WorkflowRun struct {
	ID          string     `json:"id"           yaml:"id"`
	Branch      string     `json:"branch"       yaml:"branch"`
	Status      string     `json:"status"       yaml:"status"`
	Duration    int64      `json:"duration"     yaml:"duration"`
	CreatedAt   time.Time  `json:"created_at"   yaml:"created_at"`
	StoppedAt   *time.Time `json:"stopped_at,omitempty" yaml:"stopped_at,omitempty"`
	CreditsUsed int64      `json:"credits_used" yaml:"credits_used"`
}

// JobRun is one recent execution of a job within a workflow.
type JobRun struct {
	ID        string     `json:"id"         yaml:"id"`
	Status    string     `json:"status"     yaml:"status"`
	StartedAt time.Time  `json:"started_at" yaml:"started_at"`
	StoppedAt *time.Time `json:"stopped_at,omitempty" yaml:"stopped_at,omitempty"`
}

// MessageResponse is the body returned by delete and fire-and-forget action
// endpoints.
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
}

// RerunOptions narrows a workflow rerun to a job subset or to failed jobs.
type RerunOptions struct {
	Jobs       []string `json:"jobs,omitempty"`
	FromFailed bool     `json:"from_failed,omitempty"`
}

// TriggerPipelineOptions selects what a triggered pipeline builds. Branch and
// Tag are mutually exclusive; the server rejects requests carrying both.
type TriggerPipelineOptions struct {
	Branch     string                 `json:"branch,omitempty"`
	Tag        string                 `json:"tag,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}
