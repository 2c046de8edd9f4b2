package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestDB initializes a throwaway sqlite database
func setupTestDB(t *testing.T) *config.Config {
	tmpDir := t.TempDir()
	testDBPath := fmt.Sprintf("%s/portfolio_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: "24h",
			Issuer:    "portfolio-api-test",
		},
		Security: config.SecurityConfig{
			BcryptCost: 10,
		},
		Uploads: config.UploadsConfig{
			Dir:       tmpDir + "/uploads",
			MaxSizeMB: 5,
		},
		GitHub: config.GitHubConfig{
			EnvFile: tmpDir + "/.env",
			APIBase: "https://api.github.com",
		},
		DefaultUser: config.DefaultUserConfig{
			Username: "admin",
			Password: "admin123",
			Email:    "admin@example.com",
		},
	}

	require.NoError(t, os.MkdirAll(cfg.Uploads.Dir, 0755))

	err := models.InitDB(cfg)
	require.NoError(t, err)

	return cfg
}

// cleanupTestDB closes the test database
func cleanupTestDB(t *testing.T, cfg *config.Config) {
	if models.DB != nil {
		sqlDB, err := models.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		if cfg != nil && cfg.Database.Type == "sqlite" {
			os.Remove(cfg.Database.SQLite.Path)
		}
	}
	models.DB = nil
}

// createTestUser creates a user and returns it
func createTestUser(t *testing.T, authService *services.AuthService, username, password string, isAdmin bool) *models.User {
	user, err := authService.CreateUser(username, password, username+"@example.com", isAdmin)
	require.NoError(t, err)
	return user
}

// createTestToken issues a valid token for the user
func createTestToken(t *testing.T, authService *services.AuthService, user *models.User) string {
	token, _, err := authService.GenerateToken(user.ID)
	require.NoError(t, err)
	return token
}

// setupTestRouter creates a test router with routes
func setupTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, cfg)
	return r
}

// itoa formats a record ID for use in a URL
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
