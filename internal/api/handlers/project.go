package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(cfg),
	}
}

type CreateProjectRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	LongDescription string            `json:"longDescription"`
	ImageURL        string            `json:"imageUrl"`
	Technologies    models.StringList `json:"technologies"`
	GithubURL       string            `json:"githubUrl"`
	LiveURL         string            `json:"liveUrl"`
	Category        string            `json:"category" binding:"required,oneof=regular freelance"`
	Featured        bool              `json:"featured"`
}

type UpdateProjectRequest struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	LongDescription *string            `json:"longDescription"`
	ImageURL        *string            `json:"imageUrl"`
	Technologies    *models.StringList `json:"technologies"`
	GithubURL       *string            `json:"githubUrl"`
	LiveURL         *string            `json:"liveUrl"`
	Category        *string            `json:"category" binding:"omitempty,oneof=regular freelance"`
	Featured        *bool              `json:"featured"`
}

// GetProjects returns all projects, optionally filtered by category
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	var (
		projects []models.Project
		err      error
	)

	if category := c.Query("category"); category != "" {
		projects, err = h.projectService.GetProjectsByCategory(category)
	} else {
		projects, err = h.projectService.GetProjects()
	}
	if err != nil {
		log.Printf("Failed to fetch projects: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch projects"})
		return
	}

	c.JSON(200, projects)
}

// GetProject returns a specific project
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid project ID"})
		return
	}

	project, err := h.projectService.GetProject(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(404, gin.H{"message": "Project not found"})
			return
		}
		log.Printf("Failed to fetch project %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to fetch project"})
		return
	}

	c.JSON(200, project)
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid project data"})
		return
	}

	project, err := h.projectService.CreateProject(&services.CreateProjectData{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		ImageURL:        req.ImageURL,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Category:        req.Category,
		Featured:        req.Featured,
	})
	if err != nil {
		log.Printf("Failed to create project: %v", err)
		c.JSON(500, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(201, project)
}

// UpdateProject applies a partial update to a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid project ID"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid project data"})
		return
	}

	project, err := h.projectService.UpdateProject(uint(id), &services.UpdateProjectData{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		ImageURL:        req.ImageURL,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Category:        req.Category,
		Featured:        req.Featured,
	})
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(404, gin.H{"message": "Project not found"})
			return
		}
		log.Printf("Failed to update project %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to update project"})
		return
	}

	c.JSON(200, project)
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid project ID"})
		return
	}

	if err := h.projectService.DeleteProject(uint(id)); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(404, gin.H{"message": "Project not found"})
			return
		}
		log.Printf("Failed to delete project %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete project"})
		return
	}

	c.JSON(200, gin.H{"message": "Project deleted successfully"})
}
