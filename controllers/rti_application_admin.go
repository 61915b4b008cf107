package controllers

import (
	"strconv"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/admin/rti-applications
func ListRTIApplications(c *gin.Context) {
	utils.LogInfo("ListRTIApplications called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.RTIApplication{}).Preload("Service").Preload("State")

	if status := c.Query("status"); status != "" {
		if !models.IsValidRTIStatus(status) {
			utils.BadRequest(c, "Invalid status filter", gin.H{"valid_statuses": models.ValidRTIStatuses})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count RTI applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch RTI applications", nil)
		return
	}

	var applications []models.RTIApplication
	if err := query.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&applications).Error; err != nil {
		utils.LogError("Failed to fetch RTI applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch RTI applications", nil)
		return
	}

	utils.SuccessWithPagination(c, "RTI applications retrieved successfully", applications, total, pagination.Page, pagination.Limit)
}

// GET /v1/admin/rti-applications/:id
func GetRTIApplication(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid application ID", nil)
		return
	}

	var application models.RTIApplication
	if err := config.DB.Preload("Service").Preload("State").First(&application, id).Error; err != nil {
		utils.LogError("RTI application not found for ID: %d", id)
		utils.NotFound(c, "RTI application not found")
		return
	}

	utils.Success(c, "RTI application retrieved successfully", application)
}

// PATCH /v1/admin/rti-applications/:id/status
func UpdateRTIApplicationStatus(c *gin.Context) {
	utils.LogInfo("UpdateRTIApplicationStatus called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid application ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. status is required", err.Error())
		return
	}
	if !models.IsValidRTIStatus(req.Status) {
		utils.BadRequest(c, "Invalid status", gin.H{"valid_statuses": models.ValidRTIStatuses})
		return
	}

	var application models.RTIApplication
	if err := config.DB.First(&application, id).Error; err != nil {
		utils.LogError("RTI application not found for ID: %d", id)
		utils.NotFound(c, "RTI application not found")
		return
	}

	if err := config.DB.Model(&application).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update status for application ID: %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update application status", nil)
		return
	}
	utils.LogInfo("Updated RTI application %d status to %s", id, req.Status)

	utils.Success(c, "Application status updated successfully", gin.H{
		"id":     application.ID,
		"status": req.Status,
	})
}

// GET /v1/admin/payment-recoveries
//
// Lists the best-effort recovery rows written when post-payment persistence
// failed; these are the operator's reconciliation queue.
func ListPaymentRecoveries(c *gin.Context) {
	utils.LogInfo("ListPaymentRecoveries called")

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.PaymentRecovery{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count payment recoveries: %v", err)
		utils.InternalServerError(c, "Failed to fetch payment recoveries", nil)
		return
	}

	var recoveries []models.PaymentRecovery
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&recoveries).Error; err != nil {
		utils.LogError("Failed to fetch payment recoveries: %v", err)
		utils.InternalServerError(c, "Failed to fetch payment recoveries", nil)
		return
	}

	utils.SuccessWithPagination(c, "Payment recoveries retrieved successfully", recoveries, total, pagination.Page, pagination.Limit)
}
