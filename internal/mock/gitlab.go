package mock

import (
	"context"

	"github.com/numapde/pubfork/internal/app"
)

// GitlabClient mocks app.GitlabClient.
// Calls records the method call sequence.
type GitlabClient struct {
	ForkProjectFunc              func(ctx context.Context, templateID int, req app.ForkRequest) (app.Project, error)
	ProjectByIDFunc              func(ctx context.Context, id int) (app.Project, error)
	UpdateProjectDescriptionFunc func(ctx context.Context, id int, description string) error
	CommitFileFunc               func(ctx context.Context, id int, req app.CommitFileRequest) error

	Calls []string
}

// ForkProject forks the template project into given namespace, name and path.
func (m *GitlabClient) ForkProject(ctx context.Context, templateID int, req app.ForkRequest) (app.Project, error) {
	m.Calls = append(m.Calls, "ForkProject")
	if m.ForkProjectFunc != nil {
		return m.ForkProjectFunc(ctx, templateID, req)
	}

	return app.Project{}, nil
}

// ProjectByID returns the project with given id.
func (m *GitlabClient) ProjectByID(ctx context.Context, id int) (app.Project, error) {
	m.Calls = append(m.Calls, "ProjectByID")
	if m.ProjectByIDFunc != nil {
		return m.ProjectByIDFunc(ctx, id)
	}

	return app.Project{}, nil
}

// UpdateProjectDescription sets the description of the project with given id.
func (m *GitlabClient) UpdateProjectDescription(ctx context.Context, id int, description string) error {
	m.Calls = append(m.Calls, "UpdateProjectDescription")
	if m.UpdateProjectDescriptionFunc != nil {
		return m.UpdateProjectDescriptionFunc(ctx, id, description)
	}

	return nil
}

// CommitFile commits a single file to the repository of the project with given id.
func (m *GitlabClient) CommitFile(ctx context.Context, id int, req app.CommitFileRequest) error {
	m.Calls = append(m.Calls, "CommitFile")
	if m.CommitFileFunc != nil {
		return m.CommitFileFunc(ctx, id, req)
	}

	return nil
}
