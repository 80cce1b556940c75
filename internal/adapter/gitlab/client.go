package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/numapde/pubfork/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client executes operations against the Gitlab projects REST API.
// This struct is an adapter for app.GitlabClient.
type Client struct {
	doer    HTTPDoer
	address string
	token   string

	responseMaxSize int
}

var _ app.GitlabClient = &Client{}

// NewClient creates new gitlab client.
// address is the api base url, e.g. https://gitlab.example.org/api/v4.
func NewClient(doer HTTPDoer, address string, token string) *Client {
	return &Client{
		doer:    doer,
		address: address,
		token:   token,

		responseMaxSize: 1024 * 1024 * 10,
	}
}

// ForkProject forks the template project into given namespace, name and path.
// 'Name' corresponds to 'Project name' in the 'new project' web interface.
// 'Path' corresponds to 'Project slug' in the 'new project' web interface.
func (c *Client) ForkProject(ctx context.Context, templateID int, req app.ForkRequest) (app.Project, error) {
	if req.Namespace == "" {
		return app.Project{}, app.InvalidRequestError("namespace cannot be empty")
	}
	if req.Name == "" {
		return app.Project{}, app.InvalidRequestError("project name cannot be empty")
	}
	if req.Path == "" {
		return app.Project{}, app.InvalidRequestError("project path cannot be empty")
	}

	v := make(url.Values)
	v.Set("id", strconv.Itoa(templateID))
	v.Set("namespace", req.Namespace)
	v.Set("name", req.Name)
	v.Set("path", req.Path)

	httpReq, err := c.newFormRequest(http.MethodPost, fmt.Sprintf("%s/projects/%d/fork", c.address, templateID), v)
	if err != nil {
		return app.Project{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, http.StatusCreated)
	if err != nil {
		return app.Project{}, fmt.Errorf("making http request: %w", err)
	}

	var resp projectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Project{}, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToProject(), nil
}

// ProjectByID returns the project with given id.
func (c *Client) ProjectByID(ctx context.Context, id int) (app.Project, error) {
	httpReq, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/projects/%d", c.address, id), nil)
	if err != nil {
		return app.Project{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, http.StatusOK)
	if err != nil {
		return app.Project{}, fmt.Errorf("making http request: %w", err)
	}

	var resp projectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Project{}, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToProject(), nil
}

// UpdateProjectDescription sets the description of the project with given id.
// An empty description is valid and clears the field.
func (c *Client) UpdateProjectDescription(ctx context.Context, id int, description string) error {
	v := make(url.Values)
	v.Set("id", strconv.Itoa(id))
	v.Set("description", description)

	httpReq, err := c.newFormRequest(http.MethodPut, fmt.Sprintf("%s/projects/%d", c.address, id), v)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	if _, err := c.makeRequest(ctx, httpReq, http.StatusOK); err != nil {
		return fmt.Errorf("making http request: %w", err)
	}

	return nil
}

// CommitFile commits a single file to the repository of the project with given id.
// See https://docs.gitlab.com/ee/api/repository_files.html
func (c *Client) CommitFile(ctx context.Context, id int, req app.CommitFileRequest) error {
	if req.FilePath == "" {
		return app.InvalidRequestError("file path cannot be empty")
	}
	if req.Branch == "" {
		return app.InvalidRequestError("branch cannot be empty")
	}

	v := make(url.Values)
	v.Set("branch", req.Branch)
	v.Set("content", req.Content)
	v.Set("commit_message", req.CommitMessage)

	u := fmt.Sprintf("%s/projects/%d/repository/files/%s", c.address, id, url.PathEscape(req.FilePath))
	httpReq, err := c.newFormRequest(http.MethodPut, u, v)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	if _, err := c.makeRequest(ctx, httpReq, http.StatusOK); err != nil {
		return fmt.Errorf("making http request: %w", err)
	}

	return nil
}

func (c *Client) newFormRequest(method string, u string, v url.Values) (*http.Request, error) {
	req, err := http.NewRequest(method, u, strings.NewReader(v.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, wantStatus int) ([]byte, error) {
	req.Header.Set("Private-Token", c.token)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("got http status code %d, want %d: %s", resp.StatusCode, wantStatus, b)
	}

	return b, nil
}
