package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"portfolio-api/internal/config"
)

// UpstreamError carries the message reported by the GitHub API so handlers
// can relay it to the client.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// GithubService is a thin read-only proxy in front of the GitHub REST API.
// It injects the server-held token so the browser never sees it.
type GithubService struct {
	env     *EnvService
	apiBase string
	client  *http.Client
}

func NewGithubService(cfg *config.Config, env *EnvService) *GithubService {
	return &GithubService{
		env:     env,
		apiBase: cfg.GitHub.APIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// UserRepos lists the public repositories of a GitHub user
func (s *GithubService) UserRepos(username string) (json.RawMessage, error) {
	return s.get(fmt.Sprintf("/users/%s/repos", url.PathEscape(username)))
}

// Repo fetches repository metadata
func (s *GithubService) Repo(owner, repo string) (json.RawMessage, error) {
	return s.get(fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo)))
}

// RepoReadme fetches the repository README
func (s *GithubService) RepoReadme(owner, repo string) (json.RawMessage, error) {
	return s.get(fmt.Sprintf("/repos/%s/%s/readme", url.PathEscape(owner), url.PathEscape(repo)))
}

// RepoLanguages fetches the language breakdown of a repository
func (s *GithubService) RepoLanguages(owner, repo string) (json.RawMessage, error) {
	return s.get(fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(owner), url.PathEscape(repo)))
}

// RepoContributors lists the contributors of a repository
func (s *GithubService) RepoContributors(owner, repo string) (json.RawMessage, error) {
	return s.get(fmt.Sprintf("/repos/%s/%s/contributors", url.PathEscape(owner), url.PathEscape(repo)))
}

func (s *GithubService) get(path string) (json.RawMessage, error) {
	req, err := http.NewRequest("GET", s.apiBase+path, nil)
	if err != nil {
		return nil, err
	}
	if token := s.env.GithubToken(); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstream struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &upstream); err == nil && upstream.Message != "" {
			return nil, &UpstreamError{Message: upstream.Message}
		}
		return nil, errors.New("github api request failed")
	}

	return json.RawMessage(body), nil
}
