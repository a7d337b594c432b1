package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uninest-housing-api/internal/database"
	"uninest-housing-api/internal/middleware"
	"uninest-housing-api/internal/repository"
	"uninest-housing-api/internal/service"
	"uninest-housing-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
}

// newTestRouter wires a router against an in-memory store, mirroring the
// production route table
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepo(db)
	buildingRepo := repository.NewBuildingRepo(db)
	residentRepo := repository.NewResidentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	authService := service.NewAuthService(userRepo, residentRepo, auditRepo)
	buildingService := service.NewBuildingService(buildingRepo, auditRepo)

	authHandler := NewAuthHandler(authService)
	buildingHandler := NewBuildingHandler(buildingService)

	r := gin.New()

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api := r.Group("/api", middleware.AuthMiddleware())
	buildings := api.Group("/buildings", middleware.RequireAdministrator())
	buildings.GET("", buildingHandler.ListBuildings)
	buildings.POST("", buildingHandler.CreateBuilding)

	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "admin",
		"email":    "admin@example.com",
		"password": "secret123",
		"role":     "administrator",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterValidationShape(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "ab",
		"email":    "not-an-email",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(http.StatusBadRequest), body["status_code"])

	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "must be at least 3", fields["Username"])
	require.Equal(t, "must be a valid email address", fields["Email"])
	require.Equal(t, "this field is required", fields["Password"])
}

func TestRegisterRejectsBadRole(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "eve",
		"email":    "eve@example.com",
		"password": "secret123",
		"role":     "superuser",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	fields := body["fields"].(map[string]interface{})
	require.Contains(t, fields["Role"], "must be one of")
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)
	registerAdmin(t, router)

	w := postJSON(t, router, "/auth/login", gin.H{
		"username": "admin",
		"password": "wrong-password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(http.StatusUnauthorized), body["status_code"])
}

func TestBuildingCreateRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "student1",
		"email":    "student1@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	studentToken := decodeBody(t, w)["access_token"].(string)

	w = postJSON(t, router, "/api/buildings", gin.H{
		"name":        "North Hall",
		"total_rooms": 10,
	}, studentToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestBuildingCreateAndList(t *testing.T) {
	router := newTestRouter(t)
	token := registerAdmin(t, router)

	w := postJSON(t, router, "/api/buildings", gin.H{
		"name":        "North Hall",
		"address":     "1 Campus Way",
		"total_rooms": 10,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	req, err := http.NewRequest(http.MethodGet, "/api/buildings", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	require.Equal(t, float64(1), data["count"])
}
