package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(cfg *config.Config) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: services.NewTestimonialService(cfg),
	}
}

type CreateTestimonialRequest struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	AvatarURL string `json:"avatarUrl"`
	IsActive  *bool  `json:"isActive"`
}

type UpdateTestimonialRequest struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Company   *string `json:"company"`
	Content   *string `json:"content"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	AvatarURL *string `json:"avatarUrl"`
	IsActive  *bool   `json:"isActive"`
}

// GetTestimonials returns the active testimonials for the public site
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetActiveTestimonials()
	if err != nil {
		log.Printf("Failed to fetch testimonials: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch testimonials"})
		return
	}

	c.JSON(200, testimonials)
}

// GetAllTestimonials returns every testimonial for the admin dashboard
func (h *TestimonialHandler) GetAllTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetTestimonials()
	if err != nil {
		log.Printf("Failed to fetch testimonials: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch testimonials"})
		return
	}

	c.JSON(200, testimonials)
}

// CreateTestimonial creates a new testimonial
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid testimonial data"})
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(&services.CreateTestimonialData{
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		Content:   req.Content,
		Rating:    req.Rating,
		AvatarURL: req.AvatarURL,
		IsActive:  req.IsActive,
	})
	if err != nil {
		log.Printf("Failed to create testimonial: %v", err)
		c.JSON(500, gin.H{"message": "Failed to create testimonial"})
		return
	}

	c.JSON(201, testimonial)
}

// UpdateTestimonial applies a partial update
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid testimonial ID"})
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid testimonial data"})
		return
	}

	testimonial, err := h.testimonialService.UpdateTestimonial(uint(id), &services.UpdateTestimonialData{
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		Content:   req.Content,
		Rating:    req.Rating,
		AvatarURL: req.AvatarURL,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			c.JSON(404, gin.H{"message": "Testimonial not found"})
			return
		}
		log.Printf("Failed to update testimonial %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to update testimonial"})
		return
	}

	c.JSON(200, testimonial)
}

// DeleteTestimonial deletes a testimonial
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid testimonial ID"})
		return
	}

	if err := h.testimonialService.DeleteTestimonial(uint(id)); err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			c.JSON(404, gin.H{"message": "Testimonial not found"})
			return
		}
		log.Printf("Failed to delete testimonial %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete testimonial"})
		return
	}

	c.JSON(200, gin.H{"message": "Testimonial deleted successfully"})
}
