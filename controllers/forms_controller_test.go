package controllers

import (
	"net/http"
	"testing"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/consultations", CreateConsultation)
	router.POST("/v1/callbacks", CreateCallbackRequest)
	router.POST("/v1/contact", CreateContactMessage)
	router.POST("/v1/careers", CreateCareerApplication)
	router.POST("/v1/newsletter/subscribe", SubscribeNewsletter)
	return router
}

func TestCreateConsultation(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/consultations", gin.H{
		"full_name": "Ravi Kumar",
		"mobile":    "9876501234",
		"email":     "ravi@example.com",
		"message":   "Need help filing an RTI about road repairs",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])

	var count int64
	require.NoError(t, config.DB.Model(&models.Consultation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateConsultationInvalidMobile(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/consultations", gin.H{
		"full_name": "Ravi Kumar",
		"mobile":    "12345",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Consultation{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateCallbackRequestMissingMobile(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/callbacks", gin.H{
		"full_name": "Ravi Kumar",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", resp["message"])
}

func TestCreateContactMessage(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/contact", gin.H{
		"full_name": "Meena Iyer",
		"email":     "meena@example.com",
		"subject":   "Question about pricing",
		"message":   "How long does a first appeal take?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCareerApplication(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/careers", gin.H{
		"full_name":  "Sunil Shetty",
		"email":      "sunil@example.com",
		"mobile":     "9898989898",
		"position":   "RTI Consultant",
		"resume_url": "https://example.com/resume.pdf",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNewsletterSubscribeAndDuplicate(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w1, _ := doJSON(t, router, http.MethodPost, "/v1/newsletter/subscribe", gin.H{"email": "News@Example.com"})
	assert.Equal(t, http.StatusCreated, w1.Code)

	// Same address again, case-insensitively, is a conflict
	w2, resp2 := doJSON(t, router, http.MethodPost, "/v1/newsletter/subscribe", gin.H{"email": "news@example.com"})
	assert.Equal(t, http.StatusConflict, w2.Code)
	assert.Equal(t, "Email is already subscribed", resp2["message"])

	var count int64
	require.NoError(t, config.DB.Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewsletterSubscribeConflictOnExistingRow(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	// A row inserted out of band stands in for a concurrent subscribe that
	// won the insert: the losing request must see 409, not 500
	require.NoError(t, config.DB.Create(&models.NewsletterSubscriber{Email: "race@example.com"}).Error)

	w, resp := doJSON(t, router, http.MethodPost, "/v1/newsletter/subscribe", gin.H{"email": "race@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email is already subscribed", resp["message"])

	var count int64
	require.NoError(t, config.DB.Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewsletterSubscribeInvalidEmail(t *testing.T) {
	setupTestDB(t)
	router := newFormsRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/newsletter/subscribe", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
