package services

import (
	"errors"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type PersonalInfoService struct {
	cfg *config.Config
}

func NewPersonalInfoService(cfg *config.Config) *PersonalInfoService {
	return &PersonalInfoService{cfg: cfg}
}

type PersonalInfoData struct {
	FullName          string
	Title             string
	Bio               string
	Email             string
	Phone             string
	Location          string
	ProfileImage      string
	ResumeURL         string
	LinkedinURL       string
	GithubURL         string
	TwitterURL        string
	WebsiteURL        string
	YearsOfExperience int
	CurrentRole       string
	Company           string
}

// GetPersonalInfo returns the singleton row, or nil when none exists yet
func (s *PersonalInfoService) GetPersonalInfo() (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	if err := models.DB.Limit(1).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// UpsertPersonalInfo replaces the singleton row, inserting it the first
// time. At most one row is read before deciding which operation to run.
func (s *PersonalInfoService) UpsertPersonalInfo(data *PersonalInfoData) (*models.PersonalInfo, error) {
	existing, err := s.GetPersonalInfo()
	if err != nil {
		return nil, err
	}

	info := &models.PersonalInfo{
		FullName:          data.FullName,
		Title:             data.Title,
		Bio:               data.Bio,
		Email:             data.Email,
		Phone:             data.Phone,
		Location:          data.Location,
		ProfileImage:      data.ProfileImage,
		ResumeURL:         data.ResumeURL,
		LinkedinURL:       data.LinkedinURL,
		GithubURL:         data.GithubURL,
		TwitterURL:        data.TwitterURL,
		WebsiteURL:        data.WebsiteURL,
		YearsOfExperience: data.YearsOfExperience,
		CurrentRole:       data.CurrentRole,
		Company:           data.Company,
	}

	if existing != nil {
		info.ID = existing.ID
		if err := models.DB.Save(info).Error; err != nil {
			return nil, err
		}
		return info, nil
	}

	if err := models.DB.Create(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
