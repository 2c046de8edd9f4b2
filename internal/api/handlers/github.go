package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type GithubHandler struct {
	githubService *services.GithubService
	envService    *services.EnvService
}

func NewGithubHandler(githubService *services.GithubService, envService *services.EnvService) *GithubHandler {
	return &GithubHandler{
		githubService: githubService,
		envService:    envService,
	}
}

type EnvConfigRequest struct {
	GithubToken string `json:"GITHUB_TOKEN"`
}

// GetUserRepos proxies the repository list of a GitHub user
func (h *GithubHandler) GetUserRepos(c *gin.Context) {
	data, err := h.githubService.UserRepos(c.Param("username"))
	h.relay(c, data, err, "Failed to fetch GitHub repositories")
}

// GetRepo proxies repository metadata
func (h *GithubHandler) GetRepo(c *gin.Context) {
	data, err := h.githubService.Repo(c.Param("owner"), c.Param("repo"))
	h.relay(c, data, err, "Failed to fetch GitHub repository")
}

// GetRepoReadme proxies the repository README
func (h *GithubHandler) GetRepoReadme(c *gin.Context) {
	data, err := h.githubService.RepoReadme(c.Param("owner"), c.Param("repo"))
	h.relay(c, data, err, "Failed to fetch GitHub README")
}

// GetRepoLanguages proxies the repository language breakdown
func (h *GithubHandler) GetRepoLanguages(c *gin.Context) {
	data, err := h.githubService.RepoLanguages(c.Param("owner"), c.Param("repo"))
	h.relay(c, data, err, "Failed to fetch GitHub languages")
}

// GetRepoContributors proxies the repository contributor list
func (h *GithubHandler) GetRepoContributors(c *gin.Context) {
	data, err := h.githubService.RepoContributors(c.Param("owner"), c.Param("repo"))
	h.relay(c, data, err, "Failed to fetch GitHub contributors")
}

func (h *GithubHandler) relay(c *gin.Context, data json.RawMessage, err error, fallback string) {
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(500, gin.H{"message": upstream.Message})
			return
		}
		log.Printf("GitHub proxy request failed: %v", err)
		c.JSON(500, gin.H{"message": fallback})
		return
	}

	c.Data(200, "application/json; charset=utf-8", data)
}

// GetEnvConfig returns the editable environment configuration
func (h *GithubHandler) GetEnvConfig(c *gin.Context) {
	values, err := h.envService.Read()
	if err != nil {
		log.Printf("Failed to read env config: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch environment configuration"})
		return
	}

	c.JSON(200, gin.H{"GITHUB_TOKEN": values["GITHUB_TOKEN"]})
}

// UpdateEnvConfig rewrites the environment configuration file
func (h *GithubHandler) UpdateEnvConfig(c *gin.Context) {
	var req EnvConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request data"})
		return
	}

	if err := h.envService.Write(map[string]string{"GITHUB_TOKEN": req.GithubToken}); err != nil {
		log.Printf("Failed to write env config: %v", err)
		c.JSON(500, gin.H{"message": "Failed to update environment configuration"})
		return
	}

	c.JSON(200, gin.H{"message": "Environment configuration updated successfully"})
}
