package handlers

import (
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type PersonalInfoHandler struct {
	personalService *services.PersonalInfoService
}

func NewPersonalInfoHandler(cfg *config.Config) *PersonalInfoHandler {
	return &PersonalInfoHandler{
		personalService: services.NewPersonalInfoService(cfg),
	}
}

type PersonalInfoRequest struct {
	FullName          string `json:"fullName" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Bio               string `json:"bio"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	ProfileImage      string `json:"profileImage"`
	ResumeURL         string `json:"resumeUrl"`
	LinkedinURL       string `json:"linkedinUrl"`
	GithubURL         string `json:"githubUrl"`
	TwitterURL        string `json:"twitterUrl"`
	WebsiteURL        string `json:"websiteUrl"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	CurrentRole       string `json:"currentRole"`
	Company           string `json:"company"`
}

// GetPersonalInfo returns the singleton personal info record
func (h *PersonalInfoHandler) GetPersonalInfo(c *gin.Context) {
	info, err := h.personalService.GetPersonalInfo()
	if err != nil {
		log.Printf("Failed to fetch personal info: %v", err)
		c.JSON(500, gin.H{"message": "Failed to fetch personal info"})
		return
	}

	c.JSON(200, info)
}

// UpdatePersonalInfo upserts the singleton personal info record
func (h *PersonalInfoHandler) UpdatePersonalInfo(c *gin.Context) {
	var req PersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Failed to save personal information. Please try again."})
		return
	}

	info, err := h.personalService.UpsertPersonalInfo(&services.PersonalInfoData{
		FullName:          req.FullName,
		Title:             req.Title,
		Bio:               req.Bio,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		ProfileImage:      req.ProfileImage,
		ResumeURL:         req.ResumeURL,
		LinkedinURL:       req.LinkedinURL,
		GithubURL:         req.GithubURL,
		TwitterURL:        req.TwitterURL,
		WebsiteURL:        req.WebsiteURL,
		YearsOfExperience: req.YearsOfExperience,
		CurrentRole:       req.CurrentRole,
		Company:           req.Company,
	})
	if err != nil {
		log.Printf("Failed to update personal info: %v", err)
		c.JSON(400, gin.H{"message": "Failed to save personal information. Please try again."})
		return
	}

	c.JSON(200, info)
}
