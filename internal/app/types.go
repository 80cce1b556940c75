package app

// Project entity. Represents a repository on the Gitlab server.
type Project struct {
	ID                int
	Name              string
	PathWithNamespace string
	DefaultBranch     string
	Description       string
	SSHURLToRepo      string
	HTTPURLToRepo     string
	WebURL            string
}

// ForkRequest holds parameters for forking the template project.
type ForkRequest struct {
	Namespace string
	Name      string
	Path      string
}

// CommitFileRequest holds parameters for committing a single file to a repository.
type CommitFileRequest struct {
	FilePath      string
	Branch        string
	Content       string
	CommitMessage string
}
