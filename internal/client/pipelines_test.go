package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipelinesTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&circleci.Config{
		Token:       "test-token",
		BaseURL:     serverURL,
		ProjectSlug: circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo"),
	})
	require.NoError(t, err)

	return client
}

func TestPipelinesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "github/org", r.URL.Query().Get("org-slug"))
		assert.Equal(t, "true", r.URL.Query().Get("mine"))

		response := circleci.ListResponse[circleci.Pipeline]{
			Items: []circleci.Pipeline{
				{ID: "p1", Number: 1, State: "created", CreatedAt: time.Now()},
				{ID: "p2", Number: 2, State: "errored", CreatedAt: time.Now()},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	result, err := client.Pipelines().List(context.Background(), &circleci.PipelineListParams{
		OrgSlug: "github/org",
		Mine:    true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "errored", result.Items[1].State)
}

func TestPipelinesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline/p1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		pipeline := circleci.Pipeline{
			ID:          "p1",
			Number:      42,
			ProjectSlug: "github/org/repo",
			State:       "created",
			Trigger: &circleci.Trigger{
				Type:  "webhook",
				Actor: circleci.TriggerActor{Login: "dev"},
			},
			VCS: &circleci.PipelineVCS{
				Revision: "abc123",
				Branch:   "main",
			},
		}

		_ = json.NewEncoder(w).Encode(pipeline)
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	pipeline, err := client.Pipelines().Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), pipeline.Number)
	assert.Equal(t, "webhook", pipeline.Trigger.Type)
	assert.Equal(t, "main", pipeline.VCS.Branch)
}

func TestPipelinesClient_GetConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline/p1/config", r.URL.Path)

		_ = json.NewEncoder(w).Encode(circleci.PipelineConfig{
			Source:   "version: 2.1",
			Compiled: "version: 2",
		})
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	config, err := client.Pipelines().GetConfig(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "version: 2.1", config.Source)
	assert.Equal(t, "version: 2", config.Compiled)
}

func TestPipelinesClient_ListWorkflows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline/p1/workflow", r.URL.Path)

		response := circleci.ListResponse[circleci.Workflow]{
			Items: []circleci.Workflow{
				{ID: "w1", Name: "build", Status: circleci.WorkflowStatusSuccess},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	result, err := client.Pipelines().ListWorkflows(context.Background(), "p1", nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, circleci.WorkflowStatusSuccess, result.Items[0].Status)
}

func TestPipelinesClient_Trigger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo/pipeline", r.URL.EscapedPath())
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "main", body["branch"])
		assert.Equal(t, map[string]interface{}{"deploy": true}, body["parameters"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(circleci.Pipeline{ID: "p-new", Number: 43, State: "pending"})
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	pipeline, err := client.Pipelines().Trigger(context.Background(), &circleci.TriggerPipelineOptions{
		Branch:     "main",
		Parameters: map[string]interface{}{"deploy": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "p-new", pipeline.ID)
	assert.Equal(t, int64(43), pipeline.Number)
}

func TestPipelinesClient_TriggerDefaultBranch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(circleci.Pipeline{ID: "p-new", State: "pending"})
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	pipeline, err := client.Pipelines().Trigger(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "p-new", pipeline.ID)
}

func TestPipelinesClient_ListForProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo/pipeline", r.URL.EscapedPath())
		assert.Equal(t, "main", r.URL.Query().Get("branch"))
		assert.Equal(t, "tok-raw==", r.URL.Query().Get("page-token"))

		response := circleci.ListResponse[circleci.Pipeline]{
			Items:         []circleci.Pipeline{{ID: "p1"}},
			NextPageToken: "tok-next",
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	result, err := client.Pipelines().ListForProject(context.Background(), &circleci.ProjectPipelineParams{
		Branch:    "main",
		PageToken: "tok-raw==",
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "tok-next", result.NextPageToken)
}

func TestPipelinesClient_ListMineForProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo/pipeline/mine", r.URL.EscapedPath())

		_ = json.NewEncoder(w).Encode(circleci.ListResponse[circleci.Pipeline]{
			Items: []circleci.Pipeline{{ID: "p1"}},
		})
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	result, err := client.Pipelines().ListMineForProject(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestPipelinesClient_GetByNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo/pipeline/42", r.URL.EscapedPath())

		_ = json.NewEncoder(w).Encode(circleci.Pipeline{ID: "p1", Number: 42})
	}))
	defer server.Close()

	client := newPipelinesTestClient(t, server.URL)

	pipeline, err := client.Pipelines().GetByNumber(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "p1", pipeline.ID)
}
