package circleci_test

import (
	"testing"

	"github.com/fivetwenty-io/circleci-client/pkg/circleci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSlug_Resolve(t *testing.T) {
	t.Run("triple form", func(t *testing.T) {
		slug := circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo")

		resolved, err := slug.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "github%2Forg%2Frepo", resolved)
	})

	t.Run("string form resolves identically", func(t *testing.T) {
		triple := circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo")
		str := circleci.ProjectSlugFromString("github/org/repo")

		fromTriple, err := triple.Resolve()
		require.NoError(t, err)

		fromString, err := str.Resolve()
		require.NoError(t, err)

		assert.Equal(t, fromTriple, fromString)
	})

	t.Run("bitbucket provider", func(t *testing.T) {
		slug := circleci.NewProjectSlug(circleci.VCSBitbucket, "team", "tool")

		resolved, err := slug.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "bitbucket%2Fteam%2Ftool", resolved)
	})

	t.Run("special characters are escaped", func(t *testing.T) {
		slug := circleci.ProjectSlugFromString("github/org/repo with space")

		resolved, err := slug.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "github%2Forg%2Frepo%20with%20space", resolved)
	})

	t.Run("nil slug", func(t *testing.T) {
		var slug *circleci.ProjectSlug

		_, err := slug.Resolve()
		require.ErrorIs(t, err, circleci.ErrProjectSlugRequired)
	})

	t.Run("zero value slug", func(t *testing.T) {
		slug := &circleci.ProjectSlug{}

		_, err := slug.Resolve()
		require.ErrorIs(t, err, circleci.ErrProjectSlugRequired)
	})
}

func TestProjectSlug_String(t *testing.T) {
	assert.Equal(t, "github/org/repo", circleci.NewProjectSlug(circleci.VCSGitHub, "org", "repo").String())
	assert.Equal(t, "bitbucket/team/tool", circleci.ProjectSlugFromString("bitbucket/team/tool").String())

	var nilSlug *circleci.ProjectSlug

	assert.Empty(t, nilSlug.String())
}
