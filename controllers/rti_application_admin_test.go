package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRTIAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/admin/rti-applications", ListRTIApplications)
	router.GET("/v1/admin/rti-applications/:id", GetRTIApplication)
	router.PATCH("/v1/admin/rti-applications/:id/status", UpdateRTIApplicationStatus)
	router.GET("/v1/admin/payment-recoveries", ListPaymentRecoveries)
	return router
}

func seedApplication(t *testing.T, status string) models.RTIApplication {
	t.Helper()
	service, state := seedReference(t)
	application := models.RTIApplication{
		FullName:  "Asha Verma",
		Mobile:    "9876543210",
		Email:     "asha@example.com",
		Address:   "12 MG Road, Bengaluru",
		Pincode:   "560001",
		RTIQuery:  "Status of my ration card application",
		ServiceID: service.ID,
		StateID:   state.ID,
		Status:    status,
	}
	require.NoError(t, config.DB.Create(&application).Error)
	return application
}

func TestListRTIApplicationsStatusFilter(t *testing.T) {
	setupTestDB(t)
	seedApplication(t, models.RTIStatusPending)
	router := newRTIAdminRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/v1/admin/rti-applications?status=pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	w2, _ := doJSON(t, router, http.MethodGet, "/v1/admin/rti-applications?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestGetRTIApplicationNotFound(t *testing.T) {
	setupTestDB(t)
	router := newRTIAdminRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/v1/admin/rti-applications/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RTI application not found", resp["message"])
}

func TestUpdateRTIApplicationStatus(t *testing.T) {
	setupTestDB(t)
	application := seedApplication(t, models.RTIStatusPending)
	router := newRTIAdminRouter(t)

	path := fmt.Sprintf("/v1/admin/rti-applications/%d/status", application.ID)
	w, resp := doJSON(t, router, http.MethodPatch, path, gin.H{"status": "submitted"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "submitted", data["status"])

	var reloaded models.RTIApplication
	require.NoError(t, config.DB.First(&reloaded, application.ID).Error)
	assert.Equal(t, models.RTIStatusSubmitted, reloaded.Status)
}

func TestUpdateRTIApplicationStatusRejectsUnknown(t *testing.T) {
	setupTestDB(t)
	application := seedApplication(t, models.RTIStatusPending)
	router := newRTIAdminRouter(t)

	path := fmt.Sprintf("/v1/admin/rti-applications/%d/status", application.ID)
	w, _ := doJSON(t, router, http.MethodPatch, path, gin.H{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.RTIApplication
	require.NoError(t, config.DB.First(&reloaded, application.ID).Error)
	assert.Equal(t, models.RTIStatusPending, reloaded.Status)
}

func TestListPaymentRecoveries(t *testing.T) {
	setupTestDB(t)
	router := newRTIAdminRouter(t)

	recovery := models.PaymentRecovery{
		FullName:     "Asha Verma",
		Mobile:       "9876543210",
		PaymentID:    "pay_list1",
		OrderID:      "order_list1",
		ErrorMessage: "insert failed",
		RequestBody:  `{"payment_id":"pay_list1"}`,
	}
	require.NoError(t, config.DB.Create(&recovery).Error)

	w, resp := doJSON(t, router, http.MethodGet, "/v1/admin/payment-recoveries", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "pay_list1", first["payment_id"])
}
