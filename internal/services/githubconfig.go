package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

var ErrGithubConfigNotFound = errors.New("github configuration not found")

type GithubConfigService struct {
	cfg *config.Config
}

func NewGithubConfigService(cfg *config.Config) *GithubConfigService {
	return &GithubConfigService{cfg: cfg}
}

type CreateGithubConfigData struct {
	Type        string
	Value       string
	DisplayName string
	Description string
	IsEnabled   *bool
	SortOrder   int
}

type UpdateGithubConfigData struct {
	Type        *string
	Value       *string
	DisplayName *string
	Description *string
	IsEnabled   *bool
	SortOrder   *int
}

// GetGithubConfigs returns all showcase entries in display order
func (s *GithubConfigService) GetGithubConfigs() ([]models.GithubConfig, error) {
	var configs []models.GithubConfig
	if err := models.DB.Order("sort_order asc, created_at asc").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// CreateGithubConfig creates a new showcase entry
func (s *GithubConfigService) CreateGithubConfig(data *CreateGithubConfigData) (*models.GithubConfig, error) {
	cfg := &models.GithubConfig{
		Type:        data.Type,
		Value:       data.Value,
		DisplayName: data.DisplayName,
		Description: data.Description,
		IsEnabled:   true,
		SortOrder:   data.SortOrder,
	}
	if data.IsEnabled != nil {
		cfg.IsEnabled = *data.IsEnabled
	}

	if err := models.DB.Create(cfg).Error; err != nil {
		return nil, err
	}

	return cfg, nil
}

// UpdateGithubConfig applies a partial update
func (s *GithubConfigService) UpdateGithubConfig(id uint, data *UpdateGithubConfigData) (*models.GithubConfig, error) {
	var cfg models.GithubConfig
	if err := models.DB.First(&cfg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGithubConfigNotFound
		}
		return nil, err
	}

	if data.Type != nil {
		cfg.Type = *data.Type
	}
	if data.Value != nil {
		cfg.Value = *data.Value
	}
	if data.DisplayName != nil {
		cfg.DisplayName = *data.DisplayName
	}
	if data.Description != nil {
		cfg.Description = *data.Description
	}
	if data.IsEnabled != nil {
		cfg.IsEnabled = *data.IsEnabled
	}
	if data.SortOrder != nil {
		cfg.SortOrder = *data.SortOrder
	}

	if err := models.DB.Save(&cfg).Error; err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DeleteGithubConfig deletes a showcase entry
func (s *GithubConfigService) DeleteGithubConfig(id uint) error {
	result := models.DB.Delete(&models.GithubConfig{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGithubConfigNotFound
	}
	return nil
}
