package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	cfg *config.Config
}

func NewProjectService(cfg *config.Config) *ProjectService {
	return &ProjectService{cfg: cfg}
}

type CreateProjectData struct {
	Title           string
	Description     string
	LongDescription string
	ImageURL        string
	Technologies    models.StringList
	GithubURL       string
	LiveURL         string
	Category        string
	Featured        bool
}

type UpdateProjectData struct {
	Title           *string
	Description     *string
	LongDescription *string
	ImageURL        *string
	Technologies    *models.StringList
	GithubURL       *string
	LiveURL         *string
	Category        *string
	Featured        *bool
}

// GetProjects returns all projects, newest first
func (s *ProjectService) GetProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := models.DB.Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectsByCategory returns projects in a category, newest first
func (s *ProjectService) GetProjectsByCategory(category string) ([]models.Project, error) {
	var projects []models.Project
	if err := models.DB.Where("category = ?", category).Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a specific project by ID
func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := models.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(data *CreateProjectData) (*models.Project, error) {
	project := &models.Project{
		Title:           data.Title,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		ImageURL:        data.ImageURL,
		Technologies:    data.Technologies,
		GithubURL:       data.GithubURL,
		LiveURL:         data.LiveURL,
		Category:        data.Category,
		Featured:        data.Featured,
	}

	if err := models.DB.Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// UpdateProject applies a partial update. Unset fields keep their current
// values; a successful save bumps UpdatedAt.
func (s *ProjectService) UpdateProject(id uint, data *UpdateProjectData) (*models.Project, error) {
	var project models.Project
	if err := models.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if data.Title != nil {
		project.Title = *data.Title
	}
	if data.Description != nil {
		project.Description = *data.Description
	}
	if data.LongDescription != nil {
		project.LongDescription = *data.LongDescription
	}
	if data.ImageURL != nil {
		project.ImageURL = *data.ImageURL
	}
	if data.Technologies != nil {
		project.Technologies = *data.Technologies
	}
	if data.GithubURL != nil {
		project.GithubURL = *data.GithubURL
	}
	if data.LiveURL != nil {
		project.LiveURL = *data.LiveURL
	}
	if data.Category != nil {
		project.Category = *data.Category
	}
	if data.Featured != nil {
		project.Featured = *data.Featured
	}

	if err := models.DB.Save(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteProject deletes a project. The result is derived from the affected
// row count, so concurrent deletes of the same row are last-write-wins.
func (s *ProjectService) DeleteProject(id uint) error {
	result := models.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
