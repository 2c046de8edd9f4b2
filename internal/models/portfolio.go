package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a slice of strings as a JSON text column so the same
// model works on both sqlite and mysql.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Project categories shown on separate pages of the site.
const (
	ProjectCategoryRegular   = "regular"
	ProjectCategoryFreelance = "freelance"
)

type Project struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Description     string     `json:"description" gorm:"type:text;not null"`
	LongDescription string     `json:"longDescription" gorm:"type:text"`
	ImageURL        string     `json:"imageUrl" gorm:"type:varchar(500)"`
	Technologies    StringList `json:"technologies" gorm:"type:text"`
	GithubURL       string     `json:"githubUrl" gorm:"type:varchar(500)"`
	LiveURL         string     `json:"liveUrl" gorm:"type:varchar(500)"`
	Category        string     `json:"category" gorm:"type:varchar(50);not null;index"`
	Featured        bool       `json:"featured" gorm:"default:false"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" gorm:"type:varchar(500);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Company   string    `json:"company" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	AvatarURL string    `json:"avatarUrl" gorm:"type:varchar(500)"`
	// Active/enabled flags default to true in the services, not the column:
	// gorm substitutes a column default for zero values on insert, which
	// would turn an explicit false into true.
	IsActive bool `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type Skill struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Icon      string    `json:"icon" gorm:"type:varchar(255);not null"`
	Color     string    `json:"color" gorm:"type:varchar(50);not null"`
	Category  string    `json:"category" gorm:"type:varchar(50);not null"` // frontend, backend, data, devops
	IsActive  bool      `json:"isActive"`
	SortOrder int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

type WebsiteSection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SectionKey  string    `json:"sectionKey" gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Subtitle    string    `json:"subtitle" gorm:"type:varchar(500)"`
	Content     string    `json:"content" gorm:"type:text"`
	ImageURL    string    `json:"imageUrl" gorm:"type:varchar(500)"`
	ButtonText  string    `json:"buttonText" gorm:"type:varchar(255)"`
	ButtonURL   string    `json:"buttonUrl" gorm:"type:varchar(500)"`
	SortOrder   int       `json:"order" gorm:"column:sort_order;default:0"`
	IsActive    bool      `json:"isActive"`
	SectionType string    `json:"sectionType" gorm:"type:varchar(50);not null"` // hero, about, services, cta, card, grid, timeline, custom
	Layout      string    `json:"layout" gorm:"type:varchar(50);default:'vertical'"`
	TargetPage  string    `json:"targetPage" gorm:"type:varchar(50);default:'regular'"`
	Columns     int       `json:"columns" gorm:"default:1"`
	Gap         string    `json:"gap" gorm:"type:varchar(50);default:'medium'"`
	CustomData  string    `json:"customData" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PersonalInfo is a singleton: at most one row exists and updates go through
// an upsert.
type PersonalInfo struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	FullName          string    `json:"fullName" gorm:"type:varchar(255);not null"`
	Title             string    `json:"title" gorm:"type:varchar(255);not null"`
	Bio               string    `json:"bio" gorm:"type:text"`
	Email             string    `json:"email" gorm:"type:varchar(255)"`
	Phone             string    `json:"phone" gorm:"type:varchar(50)"`
	Location          string    `json:"location" gorm:"type:varchar(255)"`
	ProfileImage      string    `json:"profileImage" gorm:"type:varchar(500)"`
	ResumeURL         string    `json:"resumeUrl" gorm:"type:varchar(500)"`
	LinkedinURL       string    `json:"linkedinUrl" gorm:"type:varchar(500)"`
	GithubURL         string    `json:"githubUrl" gorm:"type:varchar(500)"`
	TwitterURL        string    `json:"twitterUrl" gorm:"type:varchar(500)"`
	WebsiteURL        string    `json:"websiteUrl" gorm:"type:varchar(500)"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	CurrentRole       string    `json:"currentRole" gorm:"type:varchar(255)"`
	Company           string    `json:"company" gorm:"type:varchar(255)"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// GithubConfig entry types.
const (
	GithubConfigTypeUser       = "user"
	GithubConfigTypeRepository = "repository"
)

// GithubConfig selects which GitHub users or repositories the site showcases
// through the proxy.
type GithubConfig struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"type:varchar(50);not null"`
	Value       string    `json:"value" gorm:"type:varchar(255);not null"`
	DisplayName string    `json:"displayName" gorm:"type:varchar(255)"`
	Description string    `json:"description" gorm:"type:text"`
	IsEnabled   bool      `json:"isEnabled"`
	SortOrder   int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
