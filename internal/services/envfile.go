package services

import (
	"os"
	"sync"

	"portfolio-api/internal/config"

	"github.com/joho/godotenv"
)

// EnvService owns the server-local .env-style file that stores the GitHub
// API token. All reads and writes go through one instance so concurrent
// requests never observe a torn update; the token is cached in memory and
// refreshed whenever the file is rewritten.
type EnvService struct {
	mu          sync.RWMutex
	path        string
	githubToken string
}

func NewEnvService(cfg *config.Config) *EnvService {
	s := &EnvService{path: cfg.GitHub.EnvFile}

	values, err := godotenv.Read(s.path)
	if err == nil {
		s.githubToken = values["GITHUB_TOKEN"]
	}
	if s.githubToken == "" {
		s.githubToken = os.Getenv("GITHUB_TOKEN")
	}

	return s
}

// GithubToken returns the current GitHub API token
func (s *EnvService) GithubToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.githubToken
}

// Read returns the key-value pairs stored in the env file. A missing file
// is treated as an empty configuration.
func (s *EnvService) Read() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := godotenv.Read(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return values, nil
}

// Write merges the given values into the env file, creating it if needed,
// and refreshes the in-memory token cache.
func (s *EnvService) Write(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := godotenv.Read(s.path)
	if err != nil {
		merged = map[string]string{}
	}
	for k, v := range values {
		merged[k] = v
	}

	if err := godotenv.Write(merged, s.path); err != nil {
		return err
	}

	if token, ok := merged["GITHUB_TOKEN"]; ok {
		s.githubToken = token
	}

	return nil
}
