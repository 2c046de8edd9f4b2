package services

import (
	"testing"

	"portfolio-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		GitHub: config.GitHubConfig{
			EnvFile: t.TempDir() + "/.env",
			APIBase: "https://api.github.com",
		},
	}
}

func TestEnvServiceMissingFile(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	s := NewEnvService(envTestConfig(t))

	values, err := s.Read()
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Empty(t, s.GithubToken())
}

func TestEnvServiceFallsBackToProcessEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-process-env")
	s := NewEnvService(envTestConfig(t))

	assert.Equal(t, "from-process-env", s.GithubToken())
}

func TestEnvServiceWriteMergesAndRefreshesToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	s := NewEnvService(envTestConfig(t))

	require.NoError(t, s.Write(map[string]string{"GITHUB_TOKEN": "ghp_first"}))
	assert.Equal(t, "ghp_first", s.GithubToken())

	// A later write of unrelated keys must not drop existing ones
	require.NoError(t, s.Write(map[string]string{"OTHER_KEY": "value"}))

	values, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "ghp_first", values["GITHUB_TOKEN"])
	assert.Equal(t, "value", values["OTHER_KEY"])
	assert.Equal(t, "ghp_first", s.GithubToken())

	require.NoError(t, s.Write(map[string]string{"GITHUB_TOKEN": "ghp_second"}))
	assert.Equal(t, "ghp_second", s.GithubToken())
}

func TestEnvServiceReadsExistingFileOnStartup(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-process-env")
	cfg := envTestConfig(t)

	first := NewEnvService(cfg)
	require.NoError(t, first.Write(map[string]string{"GITHUB_TOKEN": "ghp_persisted"}))

	// A fresh instance prefers the file over the process environment
	second := NewEnvService(cfg)
	assert.Equal(t, "ghp_persisted", second.GithubToken())
}
