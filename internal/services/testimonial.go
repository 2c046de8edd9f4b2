package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialService struct {
	cfg *config.Config
}

func NewTestimonialService(cfg *config.Config) *TestimonialService {
	return &TestimonialService{cfg: cfg}
}

type CreateTestimonialData struct {
	Name      string
	Title     string
	Company   string
	Content   string
	Rating    int
	AvatarURL string
	IsActive  *bool
}

type UpdateTestimonialData struct {
	Name      *string
	Title     *string
	Company   *string
	Content   *string
	Rating    *int
	AvatarURL *string
	IsActive  *bool
}

// GetTestimonials returns all testimonials, newest first
func (s *TestimonialService) GetTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := models.DB.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// GetActiveTestimonials returns only testimonials shown on the public site
func (s *TestimonialService) GetActiveTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := models.DB.Where("is_active = ?", true).Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateTestimonial creates a new testimonial
func (s *TestimonialService) CreateTestimonial(data *CreateTestimonialData) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		Name:      data.Name,
		Title:     data.Title,
		Company:   data.Company,
		Content:   data.Content,
		Rating:    data.Rating,
		AvatarURL: data.AvatarURL,
		IsActive:  true,
	}
	if data.IsActive != nil {
		testimonial.IsActive = *data.IsActive
	}

	if err := models.DB.Create(testimonial).Error; err != nil {
		return nil, err
	}

	return testimonial, nil
}

// UpdateTestimonial applies a partial update
func (s *TestimonialService) UpdateTestimonial(id uint, data *UpdateTestimonialData) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := models.DB.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}

	if data.Name != nil {
		testimonial.Name = *data.Name
	}
	if data.Title != nil {
		testimonial.Title = *data.Title
	}
	if data.Company != nil {
		testimonial.Company = *data.Company
	}
	if data.Content != nil {
		testimonial.Content = *data.Content
	}
	if data.Rating != nil {
		testimonial.Rating = *data.Rating
	}
	if data.AvatarURL != nil {
		testimonial.AvatarURL = *data.AvatarURL
	}
	if data.IsActive != nil {
		testimonial.IsActive = *data.IsActive
	}

	if err := models.DB.Save(&testimonial).Error; err != nil {
		return nil, err
	}

	return &testimonial, nil
}

// DeleteTestimonial deletes a testimonial
func (s *TestimonialService) DeleteTestimonial(id uint) error {
	result := models.DB.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
