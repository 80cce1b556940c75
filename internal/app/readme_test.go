package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReadme(t *testing.T) {
	t.Parallel()

	data := ReadmeData{
		PublicationTitle: "ADMM on Riemannian manifolds",
		HTTPURLToRepo:    "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM.git",
		SSHURLToRepo:     "git@gitlab.example.org:numapde/Publications/Riemannian-ADMM.git",
	}

	t.Run("default template substitutes all fields", func(t *testing.T) {
		got, err := RenderReadme("", data)
		require.NoError(t, err)

		assert.Contains(t, got, "# ADMM on Riemannian manifolds")
		assert.Contains(t, got, "git clone --recurse-submodules git@gitlab.example.org:numapde/Publications/Riemannian-ADMM.git")
		assert.Contains(t, got, "https://gitlab.example.org/numapde/Publications/Riemannian-ADMM.git")
		assert.NotContains(t, got, "{{")
	})

	t.Run("custom template", func(t *testing.T) {
		got, err := RenderReadme("title: {{ .PublicationTitle }}, ssh: {{ .SSHURLToRepo }}", data)
		require.NoError(t, err)

		assert.Equal(t, "title: ADMM on Riemannian manifolds, ssh: git@gitlab.example.org:numapde/Publications/Riemannian-ADMM.git", got)
	})

	t.Run("broken template", func(t *testing.T) {
		_, err := RenderReadme("{{ .PublicationTitle", data)
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := RenderReadme("{{ .NoSuchField }}", data)
		require.Error(t, err)
	})
}
