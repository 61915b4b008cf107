package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/middleware"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAdmin(t *testing.T, email, password string, active bool) models.Admin {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := models.Admin{
		FirstName: "Test",
		LastName:  "Admin",
		Email:     email,
		Password:  hash,
		IsActive:  active,
	}
	require.NoError(t, config.DB.Create(&admin).Error)
	return admin
}

func newAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/admin/login", AdminLogin)
	protected := router.Group("/v1/admin", middleware.AdminAuthMiddleware())
	protected.GET("/consultations", ListConsultations)
	return router
}

func TestAdminLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	seedAdmin(t, "admin@example.com", "correct-horse", true)
	router := newAdminRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	seedAdmin(t, "admin@example.com", "correct-horse", true)
	router := newAdminRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", resp["message"])
}

func TestAdminLoginInactive(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	seedAdmin(t, "admin@example.com", "correct-horse", false)
	router := newAdminRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin account is inactive", resp["message"])
}

func TestAdminMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	router := newAdminRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/v1/admin/consultations", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareAcceptsIssuedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	admin := seedAdmin(t, "admin@example.com", "correct-horse", true)
	router := newAdminRouter(t)

	token, err := utils.GenerateAdminToken(&admin)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/v1/admin/consultations", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddlewareRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	setupTestDB(t)
	admin := seedAdmin(t, "admin@example.com", "correct-horse", true)
	router := newAdminRouter(t)

	token, err := utils.GenerateAdminToken(&admin)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/v1/admin/consultations", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
