package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uninest-housing-api/internal/models"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
}

func newTestRouter() *gin.Engine {
	router := gin.New()

	protected := router.Group("/api", AuthMiddleware())
	protected.GET("/admin-only", RequireAdministrator(), func(c *gin.Context) {
		utils.MessageResponse(c, "ok")
	})
	protected.GET("/student-only", RequireStudent(), func(c *gin.Context) {
		utils.MessageResponse(c, "ok")
	})

	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()

	token, err := utils.GenerateAccessToken(1, "user@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/api/admin-only", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/api/admin-only", "Token abc123")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/api/admin-only", "Bearer not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsUnknownRole(t *testing.T) {
	router := newTestRouter()

	// A token with a role outside the closed set is rejected, not defaulted
	w := doRequest(t, router, "/api/admin-only", tokenFor(t, models.Role("superuser")))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Unknown role")
}

func TestRequireAdministrator(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/api/admin-only", tokenFor(t, models.RoleStudent))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Insufficient permissions")

	w = doRequest(t, router, "/api/admin-only", tokenFor(t, models.RoleAdministrator))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireStudent(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/api/student-only", tokenFor(t, models.RoleAdministrator))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, "/api/student-only", tokenFor(t, models.RoleStudent))
	require.Equal(t, http.StatusOK, w.Code)
}
