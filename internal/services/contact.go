package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactService struct {
	cfg *config.Config
}

func NewContactService(cfg *config.Config) *ContactService {
	return &ContactService{cfg: cfg}
}

type CreateContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// GetContacts returns all contact submissions, newest first
func (s *ContactService) GetContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := models.DB.Order("created_at desc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateContact stores a contact form submission
func (s *ContactService) CreateContact(data *CreateContactData) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    data.Name,
		Email:   data.Email,
		Subject: data.Subject,
		Message: data.Message,
	}

	if err := models.DB.Create(contact).Error; err != nil {
		return nil, err
	}

	return contact, nil
}

// MarkContactAsRead flags a submission as read
func (s *ContactService) MarkContactAsRead(id uint) error {
	result := models.DB.Model(&models.Contact{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// DeleteContact deletes a submission
func (s *ContactService) DeleteContact(id uint) error {
	result := models.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
