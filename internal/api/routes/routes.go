package routes

import (
	"portfolio-api/internal/api/handlers"
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(cfg)
	envService := services.NewEnvService(cfg)
	githubService := services.NewGithubService(cfg, envService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	projectHandler := handlers.NewProjectHandler(cfg)
	contactHandler := handlers.NewContactHandler(cfg)
	testimonialHandler := handlers.NewTestimonialHandler(cfg)
	skillHandler := handlers.NewSkillHandler(cfg)
	sectionHandler := handlers.NewSectionHandler(cfg)
	personalHandler := handlers.NewPersonalInfoHandler(cfg)
	githubConfigHandler := handlers.NewGithubConfigHandler(cfg)
	githubHandler := handlers.NewGithubHandler(githubService, envService)
	uploadHandler := handlers.NewUploadHandler(cfg)

	// Middleware. Credentials require echoing the caller's origin rather
	// than a wildcard, so every origin is accepted through AllowOriginFunc.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	authenticated := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireAdmin()

	// Uploaded images
	r.Static("/uploads", cfg.Uploads.Dir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Portfolio API is running",
			})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/verify", authenticated, authHandler.Verify)
		}

		// Project routes: public reads, admin writes
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", authenticated, adminOnly, projectHandler.CreateProject)
			projects.PUT("/:id", authenticated, adminOnly, projectHandler.UpdateProject)
			projects.DELETE("/:id", authenticated, adminOnly, projectHandler.DeleteProject)
		}

		// Contact routes: public submission, admin management
		api.POST("/contact", contactHandler.CreateContact)
		contacts := api.Group("/contacts", authenticated, adminOnly)
		{
			contacts.GET("", contactHandler.GetContacts)
			contacts.PUT("/:id/read", contactHandler.MarkContactAsRead)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Testimonial routes
		api.GET("/testimonials", testimonialHandler.GetTestimonials)
		testimonials := api.Group("/testimonials", authenticated, adminOnly)
		{
			testimonials.GET("/all", testimonialHandler.GetAllTestimonials)
			testimonials.POST("", testimonialHandler.CreateTestimonial)
			testimonials.PUT("/:id", testimonialHandler.UpdateTestimonial)
			testimonials.DELETE("/:id", testimonialHandler.DeleteTestimonial)
		}

		// Skill routes
		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.GetSkills)
			skills.POST("", authenticated, adminOnly, skillHandler.CreateSkill)
			skills.PUT("/:id", authenticated, adminOnly, skillHandler.UpdateSkill)
			skills.DELETE("/:id", authenticated, adminOnly, skillHandler.DeleteSkill)
		}

		// Website section routes. The wildcard is the section key on public
		// reads and the numeric ID on admin writes.
		sections := api.Group("/website-sections")
		{
			sections.GET("", sectionHandler.GetSections)
			sections.GET("/:key", sectionHandler.GetSectionByKey)
			sections.POST("", authenticated, adminOnly, sectionHandler.CreateSection)
			sections.PUT("/:key", authenticated, adminOnly, sectionHandler.UpdateSection)
			sections.DELETE("/:key", authenticated, adminOnly, sectionHandler.DeleteSection)
		}

		// Personal info routes
		api.GET("/personal-info", personalHandler.GetPersonalInfo)
		api.PUT("/personal-info", authenticated, adminOnly, personalHandler.UpdatePersonalInfo)

		// Image upload
		api.POST("/upload", authenticated, adminOnly, uploadHandler.UploadImage)

		// Environment configuration for the GitHub proxy
		api.GET("/env-config", authenticated, adminOnly, githubHandler.GetEnvConfig)
		api.PUT("/env-config", authenticated, adminOnly, githubHandler.UpdateEnvConfig)

		// GitHub proxy routes
		github := api.Group("/github", authenticated)
		{
			github.GET("/user/:username/repos", githubHandler.GetUserRepos)
			github.GET("/repos/:owner/:repo", githubHandler.GetRepo)
			github.GET("/repos/:owner/:repo/readme", githubHandler.GetRepoReadme)
			github.GET("/repos/:owner/:repo/languages", githubHandler.GetRepoLanguages)
			github.GET("/repos/:owner/:repo/contributors", githubHandler.GetRepoContributors)
		}

		// GitHub showcase configuration
		githubConfigs := api.Group("/github-configs")
		{
			githubConfigs.GET("", authenticated, githubConfigHandler.GetGithubConfigs)
			githubConfigs.POST("", authenticated, adminOnly, githubConfigHandler.CreateGithubConfig)
			githubConfigs.PUT("/:id", authenticated, adminOnly, githubConfigHandler.UpdateGithubConfig)
			githubConfigs.DELETE("/:id", authenticated, adminOnly, githubConfigHandler.DeleteGithubConfig)
		}
	}
}
