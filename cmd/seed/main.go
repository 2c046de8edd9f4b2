package main

import (
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"
)

// Seeds the database with an admin account and sample portfolio content for
// local development. Each entity type is skipped when rows already exist.
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	authService := services.NewAuthService(cfg)
	if err := authService.CreateDefaultUser(); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user ready (username: %s)", cfg.DefaultUser.Username)

	seedSkills()
	seedProjects()
	seedTestimonials()
	seedSections()
	seedPersonalInfo()

	log.Println("Seeding complete")
}

func seedSkills() {
	var count int64
	models.DB.Model(&models.Skill{}).Count(&count)
	if count > 0 {
		return
	}

	skills := []models.Skill{
		{Name: "Python", Icon: "python", Color: "#3776AB", Category: "backend", IsActive: true, SortOrder: 1},
		{Name: "Go", Icon: "go", Color: "#00ADD8", Category: "backend", IsActive: true, SortOrder: 2},
		{Name: "PostgreSQL", Icon: "postgresql", Color: "#336791", Category: "data", IsActive: true, SortOrder: 3},
		{Name: "Apache Airflow", Icon: "airflow", Color: "#017CEE", Category: "data", IsActive: true, SortOrder: 4},
		{Name: "React", Icon: "react", Color: "#61DAFB", Category: "frontend", IsActive: true, SortOrder: 5},
		{Name: "Docker", Icon: "docker", Color: "#2496ED", Category: "devops", IsActive: true, SortOrder: 6},
		{Name: "Kubernetes", Icon: "kubernetes", Color: "#326CE5", Category: "devops", IsActive: true, SortOrder: 7},
	}
	if err := models.DB.Create(&skills).Error; err != nil {
		log.Printf("Warning: failed to seed skills: %v", err)
		return
	}
	log.Printf("Seeded %d skills", len(skills))
}

func seedProjects() {
	var count int64
	models.DB.Model(&models.Project{}).Count(&count)
	if count > 0 {
		return
	}

	projects := []models.Project{
		{
			Title:        "Real-time Data Pipeline",
			Description:  "Streaming pipeline processing millions of events per day with sub-second latency.",
			Technologies: models.StringList{"AWS", "Python", "Kinesis", "Redshift"},
			GithubURL:    "https://github.com/example/data-pipeline",
			Category:     models.ProjectCategoryRegular,
			Featured:     true,
		},
		{
			Title:        "ML Model Deployment Platform",
			Description:  "MLOps pipeline with automated model versioning, deployment and monitoring.",
			Technologies: models.StringList{"Python", "MLflow", "Docker", "Kubernetes"},
			GithubURL:    "https://github.com/example/mlops-platform",
			Category:     models.ProjectCategoryRegular,
			Featured:     true,
		},
		{
			Title:        "E-commerce Analytics Dashboard",
			Description:  "Client analytics platform providing real-time insight into sales and inventory.",
			Technologies: models.StringList{"Kafka", "MongoDB", "React"},
			LiveURL:      "https://analytics-demo.example.com",
			Category:     models.ProjectCategoryFreelance,
		},
	}
	if err := models.DB.Create(&projects).Error; err != nil {
		log.Printf("Warning: failed to seed projects: %v", err)
		return
	}
	log.Printf("Seeded %d projects", len(projects))
}

func seedTestimonials() {
	var count int64
	models.DB.Model(&models.Testimonial{}).Count(&count)
	if count > 0 {
		return
	}

	testimonials := []models.Testimonial{
		{
			Name:     "Sarah Mitchell",
			Title:    "CTO",
			Company:  "Acme Analytics",
			Content:  "Delivered a rock-solid data platform on time. Communication was excellent throughout.",
			Rating:   5,
			IsActive: true,
		},
		{
			Name:     "David Chen",
			Title:    "Product Manager",
			Company:  "Northwind Labs",
			Content:  "Great engineering instincts and a real eye for maintainability.",
			Rating:   5,
			IsActive: true,
		},
	}
	if err := models.DB.Create(&testimonials).Error; err != nil {
		log.Printf("Warning: failed to seed testimonials: %v", err)
		return
	}
	log.Printf("Seeded %d testimonials", len(testimonials))
}

func seedSections() {
	var count int64
	models.DB.Model(&models.WebsiteSection{}).Count(&count)
	if count > 0 {
		return
	}

	sections := []models.WebsiteSection{
		{
			SectionKey:  "hero",
			Title:       "Data Engineer & Backend Developer",
			Subtitle:    "I build reliable data platforms and APIs",
			ButtonText:  "View Projects",
			ButtonURL:   "/projects",
			SortOrder:   1,
			IsActive:    true,
			SectionType: "hero",
			Layout:      "vertical",
			TargetPage:  "regular",
			Columns:     1,
			Gap:         "medium",
		},
		{
			SectionKey:  "freelance-cta",
			Title:       "Available for freelance work",
			Content:     "Need help with a data or backend project? Get in touch.",
			ButtonText:  "Contact Me",
			ButtonURL:   "/#contact",
			SortOrder:   2,
			IsActive:    true,
			SectionType: "cta",
			Layout:      "horizontal",
			TargetPage:  "freelance",
			Columns:     1,
			Gap:         "medium",
		},
	}
	if err := models.DB.Create(&sections).Error; err != nil {
		log.Printf("Warning: failed to seed website sections: %v", err)
		return
	}
	log.Printf("Seeded %d website sections", len(sections))
}

func seedPersonalInfo() {
	var count int64
	models.DB.Model(&models.PersonalInfo{}).Count(&count)
	if count > 0 {
		return
	}

	info := models.PersonalInfo{
		FullName:          "Jayant Sharma",
		Title:             "Data Engineer",
		Bio:               "Data engineer with a focus on streaming systems and cloud infrastructure.",
		Email:             "hello@example.com",
		Location:          "Bengaluru, India",
		GithubURL:         "https://github.com/example",
		LinkedinURL:       "https://linkedin.com/in/example",
		YearsOfExperience: 6,
		CurrentRole:       "Senior Data Engineer",
		Company:           "Acme Analytics",
	}
	if err := models.DB.Create(&info).Error; err != nil {
		log.Printf("Warning: failed to seed personal info: %v", err)
		return
	}
	log.Println("Seeded personal info")
}
