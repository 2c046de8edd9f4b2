package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfoRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	authService := services.NewAuthService(cfg)
	admin := createTestUser(t, authService, "admin", "admin123", true)

	t.Run("GET /api/personal-info - Empty database returns null", func(t *testing.T) {
		router := setupTestRouter(cfg)

		w := doJSON(router, "GET", "/api/personal-info", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("PUT /api/personal-info - Upsert never duplicates the row", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "PUT", "/api/personal-info", token, map[string]interface{}{
			"fullName": "First Name",
			"title":    "Engineer",
			"location": "Berlin",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "PUT", "/api/personal-info", token, map[string]interface{}{
			"fullName": "Second Name",
			"title":    "Senior Engineer",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		models.DB.Model(&models.PersonalInfo{}).Count(&count)
		assert.Equal(t, int64(1), count)

		w = doJSON(router, "GET", "/api/personal-info", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var info models.PersonalInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "Second Name", info.FullName)
		assert.Equal(t, "Senior Engineer", info.Title)
	})

	t.Run("PUT /api/personal-info - Requires admin", func(t *testing.T) {
		router := setupTestRouter(cfg)

		w := doJSON(router, "PUT", "/api/personal-info", "", map[string]interface{}{
			"fullName": "Anon",
			"title":    "Nobody",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("PUT /api/personal-info - Missing required fields", func(t *testing.T) {
		router := setupTestRouter(cfg)
		token := createTestToken(t, authService, admin)

		w := doJSON(router, "PUT", "/api/personal-info", token, map[string]interface{}{
			"bio": "no name or title",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
