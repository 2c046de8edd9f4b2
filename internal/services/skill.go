package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillService struct {
	cfg *config.Config
}

func NewSkillService(cfg *config.Config) *SkillService {
	return &SkillService{cfg: cfg}
}

type CreateSkillData struct {
	Name      string
	Icon      string
	Color     string
	Category  string
	IsActive  *bool
	SortOrder int
}

type UpdateSkillData struct {
	Name      *string
	Icon      *string
	Color     *string
	Category  *string
	IsActive  *bool
	SortOrder *int
}

// GetSkills returns all skills in display order
func (s *SkillService) GetSkills() ([]models.Skill, error) {
	var skills []models.Skill
	if err := models.DB.Order("sort_order asc, name asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// GetActiveSkills returns only skills shown on the public site
func (s *SkillService) GetActiveSkills() ([]models.Skill, error) {
	var skills []models.Skill
	if err := models.DB.Where("is_active = ?", true).Order("sort_order asc, name asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill creates a new skill
func (s *SkillService) CreateSkill(data *CreateSkillData) (*models.Skill, error) {
	skill := &models.Skill{
		Name:      data.Name,
		Icon:      data.Icon,
		Color:     data.Color,
		Category:  data.Category,
		IsActive:  true,
		SortOrder: data.SortOrder,
	}
	if data.IsActive != nil {
		skill.IsActive = *data.IsActive
	}

	if err := models.DB.Create(skill).Error; err != nil {
		return nil, err
	}

	return skill, nil
}

// UpdateSkill applies a partial update
func (s *SkillService) UpdateSkill(id uint, data *UpdateSkillData) (*models.Skill, error) {
	var skill models.Skill
	if err := models.DB.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if data.Name != nil {
		skill.Name = *data.Name
	}
	if data.Icon != nil {
		skill.Icon = *data.Icon
	}
	if data.Color != nil {
		skill.Color = *data.Color
	}
	if data.Category != nil {
		skill.Category = *data.Category
	}
	if data.IsActive != nil {
		skill.IsActive = *data.IsActive
	}
	if data.SortOrder != nil {
		skill.SortOrder = *data.SortOrder
	}

	if err := models.DB.Save(&skill).Error; err != nil {
		return nil, err
	}

	return &skill, nil
}

// DeleteSkill deletes a skill
func (s *SkillService) DeleteSkill(id uint) error {
	result := models.DB.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
