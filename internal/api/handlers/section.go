package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	sectionService *services.SectionService
}

func NewSectionHandler(cfg *config.Config) *SectionHandler {
	return &SectionHandler{
		sectionService: services.NewSectionService(cfg),
	}
}

type CreateSectionRequest struct {
	SectionKey  string `json:"sectionKey" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	ButtonText  string `json:"buttonText"`
	ButtonURL   string `json:"buttonUrl"`
	SortOrder   int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
	SectionType string `json:"sectionType" binding:"required"`
	Layout      string `json:"layout"`
	TargetPage  string `json:"targetPage"`
	Columns     int    `json:"columns"`
	Gap         string `json:"gap"`
	CustomData  string `json:"customData"`
}

type UpdateSectionRequest struct {
	SectionKey  *string `json:"sectionKey"`
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"imageUrl"`
	ButtonText  *string `json:"buttonText"`
	ButtonURL   *string `json:"buttonUrl"`
	SortOrder   *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
	SectionType *string `json:"sectionType"`
	Layout      *string `json:"layout"`
	TargetPage  *string `json:"targetPage"`
	Columns     *int    `json:"columns"`
	Gap         *string `json:"gap"`
	CustomData  *string `json:"customData"`
}

// GetSections returns all website sections
func (h *SectionHandler) GetSections(c *gin.Context) {
	sections, err := h.sectionService.GetSections()
	if err != nil {
		log.Printf("Failed to fetch website sections: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch website sections"})
		return
	}

	c.JSON(200, sections)
}

// GetSectionByKey returns the section with the given key
func (h *SectionHandler) GetSectionByKey(c *gin.Context) {
	section, err := h.sectionService.GetSectionByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			c.JSON(404, gin.H{"message": "Website section not found"})
			return
		}
		log.Printf("Failed to fetch website section %q: %v", c.Param("key"), err)
		c.JSON(500, gin.H{"message": "Failed to fetch website section"})
		return
	}

	c.JSON(200, section)
}

// CreateSection creates a new website section
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid website section data"})
		return
	}

	section, err := h.sectionService.CreateSection(&services.CreateSectionData{
		SectionKey:  req.SectionKey,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
		SectionType: req.SectionType,
		Layout:      req.Layout,
		TargetPage:  req.TargetPage,
		Columns:     req.Columns,
		Gap:         req.Gap,
		CustomData:  req.CustomData,
	})
	if err != nil {
		if errors.Is(err, services.ErrSectionKeyExists) {
			c.JSON(400, gin.H{"message": "Invalid website section data"})
			return
		}
		log.Printf("Failed to create website section: %v", err)
		c.JSON(500, gin.H{"message": "Failed to create website section"})
		return
	}

	c.JSON(201, section)
}

// UpdateSection applies a partial update
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("key"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid website section ID"})
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid website section data"})
		return
	}

	section, err := h.sectionService.UpdateSection(uint(id), &services.UpdateSectionData{
		SectionKey:  req.SectionKey,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
		SectionType: req.SectionType,
		Layout:      req.Layout,
		TargetPage:  req.TargetPage,
		Columns:     req.Columns,
		Gap:         req.Gap,
		CustomData:  req.CustomData,
	})
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			c.JSON(404, gin.H{"message": "Website section not found"})
			return
		}
		if errors.Is(err, services.ErrSectionKeyExists) {
			c.JSON(400, gin.H{"message": "Invalid website section data"})
			return
		}
		log.Printf("Failed to update website section %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to update website section"})
		return
	}

	c.JSON(200, section)
}

// DeleteSection deletes a website section
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("key"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid website section ID"})
		return
	}

	if err := h.sectionService.DeleteSection(uint(id)); err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			c.JSON(404, gin.H{"message": "Website section not found"})
			return
		}
		log.Printf("Failed to delete website section %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete website section"})
		return
	}

	c.JSON(200, gin.H{"message": "Website section deleted successfully"})
}
