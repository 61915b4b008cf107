package controllers

import (
	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/callbacks
func CreateCallbackRequest(c *gin.Context) {
	utils.LogInfo("CreateCallbackRequest called")

	var req struct {
		FullName      string `json:"full_name"`
		Mobile        string `json:"mobile"`
		PreferredTime string `json:"preferred_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid callback request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var errs utils.FieldValidationErrors
	if ok, msg := utils.ValidateFullName(req.FullName); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "full_name", Message: msg})
	}
	if ok, msg := utils.ValidateMobile(req.Mobile); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "mobile", Message: msg})
	}
	if len(errs) > 0 {
		utils.LogError("Callback request validation failed: %v", errs.Error())
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	callback := models.CallbackRequest{
		FullName:      utils.SanitizeString(req.FullName),
		Mobile:        req.Mobile,
		PreferredTime: utils.SanitizeString(req.PreferredTime),
	}
	if err := config.DB.Create(&callback).Error; err != nil {
		utils.LogError("Failed to persist callback request: %v", err)
		utils.InternalServerError(c, "Failed to submit callback request", nil)
		return
	}
	utils.LogInfo("Created callback request ID: %d", callback.ID)

	utils.DispatchNotification(utils.NotificationJob{
		Label: "Callback Request",
		Fields: map[string]string{
			"Name":           callback.FullName,
			"Mobile":         callback.Mobile,
			"Preferred Time": callback.PreferredTime,
		},
	})

	utils.Created(c, "Callback request submitted successfully", gin.H{"id": callback.ID})
}

// GET /v1/admin/callbacks
func ListCallbackRequests(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.CallbackRequest{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count callback requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch callback requests", nil)
		return
	}

	var callbacks []models.CallbackRequest
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&callbacks).Error; err != nil {
		utils.LogError("Failed to fetch callback requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch callback requests", nil)
		return
	}

	utils.SuccessWithPagination(c, "Callback requests retrieved successfully", callbacks, total, pagination.Page, pagination.Limit)
}
