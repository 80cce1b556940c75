package gitlab

import (
	"github.com/numapde/pubfork/internal/app"
)

type projectResponse struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	DefaultBranch     string `json:"default_branch"`
	Description       string `json:"description"`
	SSHURLToRepo      string `json:"ssh_url_to_repo"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	WebURL            string `json:"web_url"`
}

// ToProject maps the api response to the app entity.
// A project whose fork initialization hasn't finished yet has a null
// default branch, which maps to an empty string.
func (r projectResponse) ToProject() app.Project {
	return app.Project{
		ID:                r.ID,
		Name:              r.Name,
		PathWithNamespace: r.PathWithNamespace,
		DefaultBranch:     r.DefaultBranch,
		Description:       r.Description,
		SSHURLToRepo:      r.SSHURLToRepo,
		HTTPURLToRepo:     r.HTTPURLToRepo,
		WebURL:            r.WebURL,
	}
}
