package circleci

import (
	"net/url"
	"time"
)

// PageParams carries the continuation token for a paginated listing. The
// token is opaque: pass back exactly what the previous page returned.
type PageParams struct {
	PageToken string
}

// ToValues converts the params to URL values, omitting unset fields.
func (p *PageParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.PageToken != "" {
		values.Set("page-token", p.PageToken)
	}

	return values
}

// PipelineListParams filters the org-wide pipeline listing.
type PipelineListParams struct {
	// OrgSlug restricts results to one organization, e.g. "gh/acme".
	OrgSlug string
	// Mine restricts results to pipelines triggered by the caller.
	Mine bool

	PageToken string
}

// ToValues converts the params to URL values, omitting unset fields.
func (p *PipelineListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.OrgSlug != "" {
		values.Set("org-slug", p.OrgSlug)
	}

	if p.Mine {
		values.Set("mine", "true")
	}

	if p.PageToken != "" {
		values.Set("page-token", p.PageToken)
	}

	return values
}

// ProjectPipelineParams filters the per-project pipeline listing.
type ProjectPipelineParams struct {
	Branch    string
	PageToken string
}

// ToValues converts the params to URL values, omitting unset fields.
func (p *ProjectPipelineParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Branch != "" {
		values.Set("branch", p.Branch)
	}

	if p.PageToken != "" {
		values.Set("page-token", p.PageToken)
	}

	return values
}

// InsightsParams filters a summary metrics listing.
type InsightsParams struct {
	Branch    string
	PageToken string
}

// ToValues converts the params to URL values, omitting unset fields.
func (p *InsightsParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Branch != "" {
		values.Set("branch", p.Branch)
	}

	if p.PageToken != "" {
		values.Set("page-token", p.PageToken)
	}

	return values
}

// RunListParams filters a recent-runs listing. Zero-valued dates are omitted
// from the request entirely.
type RunListParams struct {
	Branch    string
	StartDate time.Time
	EndDate   time.Time
	PageToken string
}

// ToValues converts the params to URL values, omitting unset fields.
func (p *RunListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Branch != "" {
		values.Set("branch", p.Branch)
	}

	if !p.StartDate.IsZero() {
		values.Set("start-date", p.StartDate.Format(time.RFC3339))
	}

	if !p.EndDate.IsZero() {
		values.Set("end-date", p.EndDate.Format(time.RFC3339))
	}

	if p.PageToken != "" {
		values.Set("page-token", p.PageToken)
	}

	return values
}
