package circleclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/fivetwenty-io/circleci-client/pkg/circleclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := circleclient.New(nil)
		require.ErrorIs(t, err, circleci.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing token", func(t *testing.T) {
		client, err := circleclient.New(&circleci.Config{})
		require.ErrorIs(t, err, circleci.ErrTokenRequired)
		assert.Nil(t, client)
	})

	t.Run("empty host", func(t *testing.T) {
		client, err := circleclient.New(&circleci.Config{Token: "test-token", BaseURL: "/"})
		require.ErrorIs(t, err, circleci.ErrNoHostInURL)
		assert.Nil(t, client)
	})

	t.Run("defaults only need a token", func(t *testing.T) {
		client, err := circleclient.New(&circleci.Config{Token: "test-token"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNew_BaseURLNormalization(t *testing.T) {
	t.Run("trailing slash trimmed", func(t *testing.T) {
		config := &circleci.Config{Token: "test-token", BaseURL: "https://ci.example.com/api/v2/"}

		_, err := circleclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://ci.example.com/api/v2", config.BaseURL)
	})

	t.Run("scheme added when missing", func(t *testing.T) {
		config := &circleci.Config{Token: "test-token", BaseURL: "ci.example.com/api/v2"}

		_, err := circleclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://ci.example.com/api/v2", config.BaseURL)
	})

	t.Run("http scheme preserved", func(t *testing.T) {
		config := &circleci.Config{Token: "test-token", BaseURL: "http://localhost:8080"}

		_, err := circleclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", config.BaseURL)
	})
}

func TestNew_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/github%2Forg%2Frepo", r.URL.EscapedPath())
		assert.Equal(t, "test-token", r.Header.Get("Circle-Token"))

		_ = json.NewEncoder(w).Encode(circleci.Project{Slug: "github/org/repo", Name: "repo"})
	}))
	defer server.Close()

	client, err := circleclient.New(&circleci.Config{
		Token:       "test-token",
		BaseURL:     server.URL,
		ProjectSlug: circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo"),
	})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "repo", project.Name)
}
