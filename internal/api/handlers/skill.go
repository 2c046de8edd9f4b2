package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(cfg *config.Config) *SkillHandler {
	return &SkillHandler{
		skillService: services.NewSkillService(cfg),
	}
}

type CreateSkillRequest struct {
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Category  string `json:"category" binding:"required"`
	IsActive  *bool  `json:"isActive"`
	SortOrder int    `json:"order"`
}

type UpdateSkillRequest struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	Category  *string `json:"category"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"order"`
}

// GetSkills returns the active skills for the public site
func (h *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := h.skillService.GetActiveSkills()
	if err != nil {
		log.Printf("Failed to fetch skills: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch skills"})
		return
	}

	c.JSON(200, skills)
}

// CreateSkill creates a new skill
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid skill data"})
		return
	}

	skill, err := h.skillService.CreateSkill(&services.CreateSkillData{
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		Category:  req.Category,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		log.Printf("Failed to create skill: %v", err)
		c.JSON(500, gin.H{"message": "Failed to create skill"})
		return
	}

	c.JSON(201, skill)
}

// UpdateSkill applies a partial update
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid skill ID"})
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid skill data"})
		return
	}

	skill, err := h.skillService.UpdateSkill(uint(id), &services.UpdateSkillData{
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		Category:  req.Category,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			c.JSON(404, gin.H{"message": "Skill not found"})
			return
		}
		log.Printf("Failed to update skill %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to update skill"})
		return
	}

	c.JSON(200, skill)
}

// DeleteSkill deletes a skill
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid skill ID"})
		return
	}

	if err := h.skillService.DeleteSkill(uint(id)); err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			c.JSON(404, gin.H{"message": "Skill not found"})
			return
		}
		log.Printf("Failed to delete skill %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete skill"})
		return
	}

	c.JSON(200, gin.H{"message": "Skill deleted successfully"})
}
