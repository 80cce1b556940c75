package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GitlabClient executes operations against the Gitlab projects API
type GitlabClient interface {
	ForkProject(ctx context.Context, templateID int, req ForkRequest) (Project, error)
	ProjectByID(ctx context.Context, id int) (Project, error)
	UpdateProjectDescription(ctx context.Context, id int, description string) error
	CommitFile(ctx context.Context, id int, req CommitFileRequest) error
}

// Journal records projects created by this tool
type Journal interface {
	Record(p Project, createdAt time.Time) error
}

// CreatePublicationRequest holds parameters for creating a new publication repository.
type CreatePublicationRequest struct {
	// LongTitle becomes the project name on Gitlab.
	LongTitle string

	// ShortTitle determines the repository path. Spaces are replaced by hyphens.
	ShortTitle string

	// Namespace the new project is created under.
	Namespace string

	// Description shown in the Gitlab web interface. May be empty.
	Description string

	// ReadmeTemplate overrides the built-in README template when non-empty.
	ReadmeTemplate string

	// ToolName is used in the generated commit message.
	ToolName string
}

// CreatePublicationResult carries the created project for the success message.
type CreatePublicationResult struct {
	Project Project
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	gitlabClient GitlabClient
	journal      Journal
	l            logrus.FieldLogger

	templateID     int
	readinessPolls int
	readinessWait  time.Duration
}

// NewService creates new Service instance
func NewService(
	gitlabClient GitlabClient,
	journal Journal,
	templateID int,
	readinessPolls int,
	readinessWait time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		gitlabClient:   gitlabClient,
		journal:        journal,
		l:              l,
		templateID:     templateID,
		readinessPolls: readinessPolls,
		readinessWait:  readinessWait,
	}
}

// CreatePublication forks the template project into a new repository,
// waits until the server finished initializing it, updates its description
// and commits a generated README.md.
func (s *Service) CreatePublication(ctx context.Context, req CreatePublicationRequest) (CreatePublicationResult, error) {
	var res CreatePublicationResult

	if req.LongTitle == "" {
		return res, InvalidRequestError("long title cannot be empty")
	}
	if strings.TrimSpace(req.ShortTitle) == "" {
		return res, InvalidRequestError("short title cannot be empty")
	}
	if req.Namespace == "" {
		return res, InvalidRequestError("namespace cannot be empty")
	}

	path := strings.ReplaceAll(req.ShortTitle, " ", "-")

	s.l.Infof("requesting fork of template project %d into %s/%s", s.templateID, req.Namespace, path)
	project, err := s.gitlabClient.ForkProject(ctx, s.templateID, ForkRequest{
		Namespace: req.Namespace,
		Name:      req.LongTitle,
		Path:      path,
	})
	if err != nil {
		return res, errors.Wrap(err, "forking template project")
	}

	s.l.Infof("waiting at most %s for the server to initialize %s", time.Duration(s.readinessPolls)*s.readinessWait, project.PathWithNamespace)
	project, err = s.awaitDefaultBranch(ctx, project.ID)
	if err != nil {
		return res, err
	}

	if err := s.gitlabClient.UpdateProjectDescription(ctx, project.ID, req.Description); err != nil {
		return res, errors.Wrap(err, "updating project description")
	}

	readme, err := RenderReadme(req.ReadmeTemplate, ReadmeData{
		PublicationTitle: req.LongTitle,
		HTTPURLToRepo:    project.HTTPURLToRepo,
		SSHURLToRepo:     project.SSHURLToRepo,
	})
	if err != nil {
		return res, errors.Wrap(err, "rendering README.md")
	}

	if err := s.gitlabClient.CommitFile(ctx, project.ID, CommitFileRequest{
		FilePath:      "README.md",
		Branch:        project.DefaultBranch,
		Content:       readme,
		CommitMessage: fmt.Sprintf("%s auto-generates README.md", req.ToolName),
	}); err != nil {
		return res, errors.Wrap(err, "committing README.md")
	}

	if s.journal != nil {
		// The repository already exists at this point, so a journal
		// failure must not fail the whole run.
		if err := s.journal.Record(project, time.Now()); err != nil {
			s.l.Warnf("couldn't record project in journal: %v", err)
		}
	}

	res.Project = project
	return res, nil
}

// awaitDefaultBranch polls the project until its default branch is set.
// A project without a default branch is still being initialized by the server.
func (s *Service) awaitDefaultBranch(ctx context.Context, id int) (Project, error) {
	p, err := s.gitlabClient.ProjectByID(ctx, id)
	if err != nil {
		return Project{}, errors.Wrap(err, "checking project readiness")
	}

	for i := 0; p.DefaultBranch == "" && i < s.readinessPolls; i++ {
		select {
		case <-ctx.Done():
			return Project{}, ctx.Err()
		case <-time.After(s.readinessWait):
		}

		p, err = s.gitlabClient.ProjectByID(ctx, id)
		if err != nil {
			return Project{}, errors.Wrap(err, "checking project readiness")
		}
	}

	if p.DefaultBranch == "" {
		return Project{}, ProjectNotReadyError(fmt.Sprintf(
			"the project creation took too long, please check yourself whether the project exists at %s", p.WebURL,
		))
	}

	return p, nil
}
