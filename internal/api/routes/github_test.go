package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubProxyRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	var gotAuthorization, gotAccept string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat/repos":
			w.Write([]byte(`[{"name":"hello-world"}]`))
		case "/repos/octocat/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`boom`))
		}
	}))
	defer upstream.Close()
	cfg.GitHub.APIBase = upstream.URL

	require.NoError(t, os.WriteFile(cfg.GitHub.EnvFile, []byte("GITHUB_TOKEN=ghp_test\n"), 0600))

	authService := services.NewAuthService(cfg)
	admin := createTestUser(t, authService, "admin", "admin123", true)
	token := createTestToken(t, authService, admin)
	router := setupTestRouter(cfg)

	t.Run("GET /api/github/... - Requires authentication", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/github/user/octocat/repos", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /api/github/user/:username/repos - Relays upstream JSON with the server token", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/github/user/octocat/repos", token, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"name":"hello-world"}]`, w.Body.String())
		assert.Equal(t, "token ghp_test", gotAuthorization)
		assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
	})

	t.Run("GET /api/github/repos/:owner/:repo - Surfaces the upstream error message", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/github/repos/octocat/missing", token, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Not Found")
	})

	t.Run("GET /api/github/repos/:owner/:repo - Non-JSON upstream failure gets the generic message", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/github/repos/octocat/broken", token, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch GitHub repository")
	})

	t.Run("Env config round trip updates the proxy token", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/env-config", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ghp_test")

		w = doJSON(router, "PUT", "/api/env-config", token, map[string]string{
			"GITHUB_TOKEN": "ghp_rotated",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", "/api/github/user/octocat/repos", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "token ghp_rotated", gotAuthorization)
	})
}
