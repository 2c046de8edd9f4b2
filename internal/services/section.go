package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSectionNotFound  = errors.New("website section not found")
	ErrSectionKeyExists = errors.New("section key already exists")
)

type SectionService struct {
	cfg *config.Config
}

func NewSectionService(cfg *config.Config) *SectionService {
	return &SectionService{cfg: cfg}
}

type CreateSectionData struct {
	SectionKey  string
	Title       string
	Subtitle    string
	Content     string
	ImageURL    string
	ButtonText  string
	ButtonURL   string
	SortOrder   int
	IsActive    *bool
	SectionType string
	Layout      string
	TargetPage  string
	Columns     int
	Gap         string
	CustomData  string
}

type UpdateSectionData struct {
	SectionKey  *string
	Title       *string
	Subtitle    *string
	Content     *string
	ImageURL    *string
	ButtonText  *string
	ButtonURL   *string
	SortOrder   *int
	IsActive    *bool
	SectionType *string
	Layout      *string
	TargetPage  *string
	Columns     *int
	Gap         *string
	CustomData  *string
}

// GetSections returns all website sections in display order
func (s *SectionService) GetSections() ([]models.WebsiteSection, error) {
	var sections []models.WebsiteSection
	if err := models.DB.Order("sort_order asc, created_at asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSectionByKey returns the section with the given unique key
func (s *SectionService) GetSectionByKey(sectionKey string) (*models.WebsiteSection, error) {
	var section models.WebsiteSection
	if err := models.DB.Where("section_key = ?", sectionKey).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// CreateSection creates a new website section
func (s *SectionService) CreateSection(data *CreateSectionData) (*models.WebsiteSection, error) {
	var existing models.WebsiteSection
	if err := models.DB.Where("section_key = ?", data.SectionKey).First(&existing).Error; err == nil {
		return nil, ErrSectionKeyExists
	}

	section := &models.WebsiteSection{
		SectionKey:  data.SectionKey,
		Title:       data.Title,
		Subtitle:    data.Subtitle,
		Content:     data.Content,
		ImageURL:    data.ImageURL,
		ButtonText:  data.ButtonText,
		ButtonURL:   data.ButtonURL,
		SortOrder:   data.SortOrder,
		IsActive:    true,
		SectionType: data.SectionType,
		Layout:      data.Layout,
		TargetPage:  data.TargetPage,
		Columns:     data.Columns,
		Gap:         data.Gap,
		CustomData:  data.CustomData,
	}
	if data.IsActive != nil {
		section.IsActive = *data.IsActive
	}
	if section.Layout == "" {
		section.Layout = "vertical"
	}
	if section.TargetPage == "" {
		section.TargetPage = "regular"
	}
	if section.Columns == 0 {
		section.Columns = 1
	}
	if section.Gap == "" {
		section.Gap = "medium"
	}

	if err := models.DB.Create(section).Error; err != nil {
		return nil, err
	}

	return section, nil
}

// UpdateSection applies a partial update
func (s *SectionService) UpdateSection(id uint, data *UpdateSectionData) (*models.WebsiteSection, error) {
	var section models.WebsiteSection
	if err := models.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if data.SectionKey != nil && *data.SectionKey != section.SectionKey {
		var existing models.WebsiteSection
		if err := models.DB.Where("section_key = ? AND id != ?", *data.SectionKey, id).First(&existing).Error; err == nil {
			return nil, ErrSectionKeyExists
		}
		section.SectionKey = *data.SectionKey
	}
	if data.Title != nil {
		section.Title = *data.Title
	}
	if data.Subtitle != nil {
		section.Subtitle = *data.Subtitle
	}
	if data.Content != nil {
		section.Content = *data.Content
	}
	if data.ImageURL != nil {
		section.ImageURL = *data.ImageURL
	}
	if data.ButtonText != nil {
		section.ButtonText = *data.ButtonText
	}
	if data.ButtonURL != nil {
		section.ButtonURL = *data.ButtonURL
	}
	if data.SortOrder != nil {
		section.SortOrder = *data.SortOrder
	}
	if data.IsActive != nil {
		section.IsActive = *data.IsActive
	}
	if data.SectionType != nil {
		section.SectionType = *data.SectionType
	}
	if data.Layout != nil {
		section.Layout = *data.Layout
	}
	if data.TargetPage != nil {
		section.TargetPage = *data.TargetPage
	}
	if data.Columns != nil {
		section.Columns = *data.Columns
	}
	if data.Gap != nil {
		section.Gap = *data.Gap
	}
	if data.CustomData != nil {
		section.CustomData = *data.CustomData
	}

	if err := models.DB.Save(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

// DeleteSection deletes a website section
func (s *SectionService) DeleteSection(id uint) error {
	result := models.DB.Delete(&models.WebsiteSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}
