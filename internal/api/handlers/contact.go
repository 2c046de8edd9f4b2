package handlers

import (
	"errors"
	"log"
	"strconv"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(cfg *config.Config) *ContactHandler {
	return &ContactHandler{
		contactService: services.NewContactService(cfg),
	}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateContact stores a contact form submission from the public site
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid contact data"})
		return
	}

	contact, err := h.contactService.CreateContact(&services.CreateContactData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("Failed to create contact: %v", err)
		c.JSON(500, gin.H{"message": "Failed to create contact"})
		return
	}

	c.JSON(201, contact)
}

// GetContacts returns all submissions for the admin dashboard
func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.contactService.GetContacts()
	if err != nil {
		log.Printf("Failed to fetch contacts: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch contacts"})
		return
	}

	c.JSON(200, contacts)
}

// MarkContactAsRead flags a submission as read
func (h *ContactHandler) MarkContactAsRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid contact ID"})
		return
	}

	if err := h.contactService.MarkContactAsRead(uint(id)); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		log.Printf("Failed to update contact %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to update contact"})
		return
	}

	c.JSON(200, gin.H{"message": "Contact marked as read"})
}

// DeleteContact deletes a submission
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid contact ID"})
		return
	}

	if err := h.contactService.DeleteContact(uint(id)); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		log.Printf("Failed to delete contact %d: %v", id, err)
		c.JSON(500, gin.H{"message": "Failed to delete contact"})
		return
	}

	c.JSON(200, gin.H{"message": "Contact deleted successfully"})
}
