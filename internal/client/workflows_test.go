package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkflowsTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&circleci.Config{Token: "test-token", BaseURL: serverURL})
	require.NoError(t, err)

	return client
}

func TestWorkflowsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflow/w1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		workflow := circleci.Workflow{
			ID:             "w1",
			Name:           "build-and-test",
			Status:         circleci.WorkflowStatusRunning,
			PipelineID:     "p1",
			PipelineNumber: 42,
			ProjectSlug:    "github/org/repo",
			CreatedAt:      time.Now(),
		}

		_ = json.NewEncoder(w).Encode(workflow)
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	workflow, err := client.Workflows().Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", workflow.ID)
	assert.Equal(t, circleci.WorkflowStatusRunning, workflow.Status)
	assert.Equal(t, int64(42), workflow.PipelineNumber)
}

func TestWorkflowsClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflow/w1/cancel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(circleci.MessageResponse{Message: "Accepted."})
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	message, err := client.Workflows().Cancel(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "Accepted.", message.Message)
}

func TestWorkflowsClient_CancelEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	message, err := client.Workflows().Cancel(context.Background(), "w1")
	require.NoError(t, err)
	assert.Empty(t, message.Message)
}

func TestWorkflowsClient_CancelUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	_, err := client.Workflows().Cancel(context.Background(), "w1")
	require.Error(t, err)

	apiErr := &circleci.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestWorkflowsClient_Rerun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflow/w1/rerun", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, true, body["from_failed"])

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(circleci.WorkflowRerun{WorkflowID: "w2"})
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	rerun, err := client.Workflows().Rerun(context.Background(), "w1", &circleci.RerunOptions{FromFailed: true})
	require.NoError(t, err)
	assert.Equal(t, "w2", rerun.WorkflowID)
}

func TestWorkflowsClient_RerunJobSubset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, []interface{}{"job-1", "job-2"}, body["jobs"])

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(circleci.WorkflowRerun{WorkflowID: "w3"})
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	rerun, err := client.Workflows().Rerun(context.Background(), "w1", &circleci.RerunOptions{
		Jobs: []string{"job-1", "job-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "w3", rerun.WorkflowID)
}

func TestWorkflowsClient_ApproveJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflow/w1/approve/approval-1", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(circleci.MessageResponse{Message: "Accepted."})
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	message, err := client.Workflows().ApproveJob(context.Background(), "w1", "approval-1")
	require.NoError(t, err)
	assert.Equal(t, "Accepted.", message.Message)
}

func TestWorkflowsClient_ListJobs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflow/w1/job", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := circleci.ListResponse[circleci.WorkflowJob]{
			Items: []circleci.WorkflowJob{
				{ID: "j1", Name: "build", Type: "build", Status: "success", JobNumber: 7},
				{ID: "j2", Name: "hold", Type: "approval", Status: "on_hold", ApprovalRequestID: "approval-1"},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newWorkflowsTestClient(t, server.URL)

	result, err := client.Workflows().ListJobs(context.Background(), "w1", nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "approval", result.Items[1].Type)
	assert.Equal(t, "approval-1", result.Items[1].ApprovalRequestID)
}
