package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type GithubConfigHandler struct {
	configService *services.GithubConfigService
}

func NewGithubConfigHandler(cfg *config.Config) *GithubConfigHandler {
	return &GithubConfigHandler{
		configService: services.NewGithubConfigService(cfg),
	}
}

type CreateGithubConfigRequest struct {
	Type        string `json:"type" binding:"required,oneof=user repository"`
	Value       string `json:"value" binding:"required"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	IsEnabled   *bool  `json:"isEnabled"`
	SortOrder   int    `json:"order"`
}

type UpdateGithubConfigRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=user repository"`
	Value       *string `json:"value"`
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	IsEnabled   *bool   `json:"isEnabled"`
	SortOrder   *int    `json:"order"`
}

// GetGithubConfigs returns all GitHub showcase entries
func (h *GithubConfigHandler) GetGithubConfigs(c *gin.Context) {
	configs, err := h.configService.GetGithubConfigs()
	if err != nil {
		log.Printf("Failed to fetch GitHub configurations: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch GitHub configurations"})
		return
	}

	c.JSON(200, configs)
}

// CreateGithubConfig creates a new showcase entry
func (h *GithubConfigHandler) CreateGithubConfig(c *gin.Context) {
	var req CreateGithubConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Failed to create GitHub configuration"})
		return
	}

	cfg, err := h.configService.CreateGithubConfig(&services.CreateGithubConfigData{
		Type:        req.Type,
		Value:       req.Value,
		DisplayName: req.DisplayName,
		Description: req.Description,
		IsEnabled:   req.IsEnabled,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		log.Printf("Failed to create GitHub configuration: %v", err)
		c.JSON(400, gin.H{"message": "Failed to create GitHub configuration"})
		return
	}

	c.JSON(201, cfg)
}

// UpdateGithubConfig applies a partial update
func (h *GithubConfigHandler) UpdateGithubConfig(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid configuration ID"})
		return
	}

	var req UpdateGithubConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Failed to update GitHub configuration"})
		return
	}

	cfg, err := h.configService.UpdateGithubConfig(uint(id), &services.UpdateGithubConfigData{
		Type:        req.Type,
		Value:       req.Value,
		DisplayName: req.DisplayName,
		Description: req.Description,
		IsEnabled:   req.IsEnabled,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, services.ErrGithubConfigNotFound) {
			c.JSON(404, gin.H{"message": "GitHub configuration not found"})
			return
		}
		log.Printf("Failed to update GitHub configuration %d: %v", id, err)
		c.JSON(400, gin.H{"message": "Failed to update GitHub configuration"})
		return
	}

	c.JSON(200, cfg)
}

// DeleteGithubConfig deletes a showcase entry
func (h *GithubConfigHandler) DeleteGithubConfig(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid configuration ID"})
		return
	}

	if err := h.configService.DeleteGithubConfig(uint(id)); err != nil {
		if errors.Is(err, services.ErrGithubConfigNotFound) {
			c.JSON(404, gin.H{"message": "GitHub configuration not found"})
			return
		}
		log.Printf("Failed to delete GitHub configuration %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete GitHub configuration"})
		return
	}

	c.JSON(200, gin.H{"message": "GitHub configuration deleted successfully"})
}
