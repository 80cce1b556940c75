package gitlab

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numapde/pubfork/internal/app"
)

func TestProjectResponseToProject(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"id": 5327,
		"name": "ADMM on Riemannian manifolds",
		"path_with_namespace": "numapde/Publications/Riemannian-ADMM",
		"default_branch": "master",
		"description": "A short description",
		"ssh_url_to_repo": "git@gitlab.example.org:numapde/Publications/Riemannian-ADMM.git",
		"http_url_to_repo": "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM.git",
		"web_url": "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM",
		"tag_list": [],
		"visibility": "private"
	}`)

	var resp projectResponse
	require.NoError(t, json.Unmarshal(data, &resp))

	want := app.Project{
		ID:                5327,
		Name:              "ADMM on Riemannian manifolds",
		PathWithNamespace: "numapde/Publications/Riemannian-ADMM",
		DefaultBranch:     "master",
		Description:       "A short description",
		SSHURLToRepo:      "git@gitlab.example.org:numapde/Publications/Riemannian-ADMM.git",
		HTTPURLToRepo:     "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM.git",
		WebURL:            "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM",
	}
	assert.Equal(t, want, resp.ToProject())
}

func TestProjectResponseNullDefaultBranch(t *testing.T) {
	t.Parallel()

	var resp projectResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "default_branch": null}`), &resp))

	assert.Equal(t, "", resp.ToProject().DefaultBranch)
}
