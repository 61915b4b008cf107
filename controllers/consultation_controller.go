package controllers

import (
	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/consultations
func CreateConsultation(c *gin.Context) {
	utils.LogInfo("CreateConsultation called")

	var req struct {
		FullName  string `json:"full_name"`
		Mobile    string `json:"mobile"`
		Email     string `json:"email"`
		ServiceID *uint  `json:"service_id"`
		StateID   *uint  `json:"state_id"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid consultation request: %v", err)
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
	if req.Email != "" {
		if ok, msg := utils.ValidateEmailAddress(req.Email); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "email", Message: msg})
		}
	}
	if len(errs) > 0 {
		utils.LogError("Consultation validation failed: %v", errs.Error())
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	consultation := models.Consultation{
		FullName:  utils.SanitizeString(req.FullName),
		Mobile:    req.Mobile,
		Email:     req.Email,
		ServiceID: req.ServiceID,
		StateID:   req.StateID,
		Message:   utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&consultation).Error; err != nil {
		utils.LogError("Failed to persist consultation: %v", err)
		utils.InternalServerError(c, "Failed to submit consultation request", nil)
		return
	}
	utils.LogInfo("Created consultation ID: %d", consultation.ID)

	utils.DispatchNotification(utils.NotificationJob{
		Label: "Consultation",
		Fields: map[string]string{
			"Name":    consultation.FullName,
			"Mobile":  consultation.Mobile,
			"Email":   consultation.Email,
			"Message": consultation.Message,
		},
	})

	utils.Created(c, "Consultation request submitted successfully", gin.H{"id": consultation.ID})
}

// GET /v1/admin/consultations
func ListConsultations(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Consultation{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count consultations: %v", err)
		utils.InternalServerError(c, "Failed to fetch consultations", nil)
		return
	}

	var consultations []models.Consultation
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&consultations).Error; err != nil {
		utils.LogError("Failed to fetch consultations: %v", err)
		utils.InternalServerError(c, "Failed to fetch consultations", nil)
		return
	}

	utils.SuccessWithPagination(c, "Consultations retrieved successfully", consultations, total, pagination.Page, pagination.Limit)
}
