package circleci

import (
	"fmt"
	"net/url"
)

type slugKind int

const (
	slugKindTriple slugKind = iota + 1
	slugKindString
)

// ProjectSlug identifies a project either as a structured vcs/org/repo triple
// or as a pre-formatted string. Construct one with NewProjectSlug or
// ProjectSlugFromString; the zero value is unusable.
type ProjectSlug struct {
	kind slugKind

	vcs  VCSProvider
	org  string
	repo string

	raw string
}

// NewProjectSlug builds a slug from its vcs provider, organization, and
// repository parts.
func NewProjectSlug(vcs VCSProvider, org, repo string) *ProjectSlug {
	return &ProjectSlug{
		kind: slugKindTriple,
		vcs:  vcs,
		org:  org,
		repo: repo,
	}
}

// ProjectSlugFromString builds a slug from an already-joined
// "provider/org/repo" string.
func ProjectSlugFromString(slug string) *ProjectSlug {
	return &ProjectSlug{
		kind: slugKindString,
		raw:  slug,
	}
}

// String returns the unencoded "provider/org/repo" form.
func (s *ProjectSlug) String() string {
	if s == nil {
		return ""
	}

	switch s.kind {
	case slugKindTriple:
		return fmt.Sprintf("%s/%s/%s", s.vcs, s.org, s.repo)
	case slugKindString:
		return s.raw
	default:
		return ""
	}
}

// Resolve returns the slug as a URL-safe path segment. The joined form is
// percent-encoded as a whole, so embedded slashes become %2F. A nil or
// zero-value slug fails with ErrProjectSlugRequired before any network I/O.
func (s *ProjectSlug) Resolve() (string, error) {
	if s == nil {
		return "", ErrProjectSlugRequired
	}

	switch s.kind {
	case slugKindTriple:
		joined := fmt.Sprintf("%s/%s/%s", s.vcs, s.org, s.repo)

		return url.PathEscape(joined), nil
	case slugKindString:
		return url.PathEscape(s.raw), nil
	default:
		return "", ErrProjectSlugRequired
	}
}
