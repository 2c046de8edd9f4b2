package routes

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	authService := services.NewAuthService(cfg)
	admin := createTestUser(t, authService, "admin", "admin123", true)

	t.Run("POST /api/projects - Unauthorized inserts nothing", func(t *testing.T) {
		router := setupTestRouter(cfg)

		w := doJSON(router, "POST", "/api/projects", "", map[string]interface{}{
			"title":       "Sneaky",
			"description": "should not exist",
			"category":    "regular",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var count int64
		models.DB.Model(&models.Project{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("POST /api/projects - Create and read back", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":        "Data Pipeline",
			"description":  "Streaming ETL",
			"technologies": []string{"Go", "Kafka"},
			"category":     "regular",
			"featured":     true,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)

		w = doJSON(router, "GET", "/api/projects/"+itoa(created.ID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, "Data Pipeline", fetched.Title)
		assert.Equal(t, "Streaming ETL", fetched.Description)
		assert.Equal(t, models.StringList{"Go", "Kafka"}, fetched.Technologies)
		assert.True(t, fetched.Featured)
	})

	t.Run("POST /api/projects - Invalid category rejected", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":       "Bad",
			"description": "bad category",
			"category":    "weekend",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /api/projects?category= - Filter", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":       "Client Work",
			"description": "freelance project",
			"category":    "freelance",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "GET", "/api/projects?category=freelance", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var projects []models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
		require.NotEmpty(t, projects)
		for _, p := range projects {
			assert.Equal(t, "freelance", p.Category)
		}
	})

	t.Run("PUT /api/projects/:id - Partial update", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		projectService := services.NewProjectService(cfg)
		project, err := projectService.CreateProject(&services.CreateProjectData{
			Title:       "Original Title",
			Description: "Original description",
			Category:    "regular",
		})
		require.NoError(t, err)
		before := project.UpdatedAt

		time.Sleep(20 * time.Millisecond)

		w := doJSON(router, "PUT", "/api/projects/"+itoa(project.ID), token, map[string]interface{}{
			"title": "New Title",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "Original description", updated.Description)
		assert.Equal(t, "regular", updated.Category)
		assert.True(t, updated.UpdatedAt.After(before))
	})

	t.Run("PUT /api/projects/:id - Not found", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "PUT", "/api/projects/99999", token, map[string]interface{}{
			"title": "Nope",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /api/projects/:id - Second delete is 404", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		projectService := services.NewProjectService(cfg)
		project, err := projectService.CreateProject(&services.CreateProjectData{
			Title:       "Doomed",
			Description: "to be deleted",
			Category:    "regular",
		})
		require.NoError(t, err)

		w := doJSON(router, "DELETE", "/api/projects/"+itoa(project.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "DELETE", "/api/projects/"+itoa(project.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /api/projects/:id - Invalid ID", func(t *testing.T) {
		router := setupTestRouter(cfg)

		w := doJSON(router, "GET", "/api/projects/invalid", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
