package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo", r.URL.EscapedPath())
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-token", r.Header.Get("Circle-Token"))

		project := circleci.Project{
			Slug:             "github/org/repo",
			Name:             "repo",
			ID:               "project-id",
			OrganizationName: "org",
			VCSInfo: &circleci.ProjectVCSInfo{
				VCSURL:        "https://github.com/org/repo",
				Provider:      "GitHub",
				DefaultBranch: "main",
			},
		}

		_ = json.NewEncoder(w).Encode(project)
	}))
	defer server.Close()

	client, err := New(&circleci.Config{
		Token:       "test-token",
		BaseURL:     server.URL,
		ProjectSlug: circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo"),
	})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "github/org/repo", project.Slug)
	assert.Equal(t, "repo", project.Name)
	assert.Equal(t, "main", project.VCSInfo.DefaultBranch)
}

func TestProjectsClient_GetStringSlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/bitbucket%2Fteam%2Ftool", r.URL.EscapedPath())

		_ = json.NewEncoder(w).Encode(circleci.Project{Slug: "bitbucket/team/tool", Name: "tool"})
	}))
	defer server.Close()

	client, err := New(&circleci.Config{
		Token:       "test-token",
		BaseURL:     server.URL,
		ProjectSlug: circleci.ProjectSlugFromString("bitbucket/team/tool"),
	})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tool", project.Name)
}
