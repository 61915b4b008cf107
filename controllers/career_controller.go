package controllers

import (
	"strings"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/careers
//
// Resumes are accepted as links, not uploads
func CreateCareerApplication(c *gin.Context) {
	utils.LogInfo("CreateCareerApplication called")

	var req struct {
		FullName   string `json:"full_name"`
		Email      string `json:"email"`
		Mobile     string `json:"mobile"`
		Position   string `json:"position"`
		Experience string `json:"experience"`
		ResumeURL  string `json:"resume_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid career application request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var errs utils.FieldValidationErrors
	if ok, msg := utils.ValidateFullName(req.FullName); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "full_name", Message: msg})
	}
	if ok, msg := utils.ValidateEmailAddress(req.Email); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: msg})
	}
	if ok, msg := utils.ValidateMobile(req.Mobile); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "mobile", Message: msg})
	}
	if strings.TrimSpace(req.Position) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "position", Message: "Position is required"})
	}
	if len(errs) > 0 {
		utils.LogError("Career application validation failed: %v", errs.Error())
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	application := models.CareerApplication{
		FullName:   utils.SanitizeString(req.FullName),
		Email:      req.Email,
		Mobile:     req.Mobile,
		Position:   utils.SanitizeString(req.Position),
		Experience: utils.SanitizeString(req.Experience),
		ResumeURL:  strings.TrimSpace(req.ResumeURL),
	}
	if err := config.DB.Create(&application).Error; err != nil {
		utils.LogError("Failed to persist career application: %v", err)
		utils.InternalServerError(c, "Failed to submit application", nil)
		return
	}
	utils.LogInfo("Created career application ID: %d for position: %s", application.ID, application.Position)

	utils.DispatchNotification(utils.NotificationJob{
		Label: "Career Application",
		Fields: map[string]string{
			"Name":     application.FullName,
			"Email":    application.Email,
			"Mobile":   application.Mobile,
			"Position": application.Position,
			"Resume":   application.ResumeURL,
		},
	})

	utils.Created(c, "Application submitted successfully", gin.H{"id": application.ID})
}

// GET /v1/admin/career-applications
func ListCareerApplications(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.CareerApplication{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count career applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch career applications", nil)
		return
	}

	var applications []models.CareerApplication
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&applications).Error; err != nil {
		utils.LogError("Failed to fetch career applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch career applications", nil)
		return
	}

	utils.SuccessWithPagination(c, "Career applications retrieved successfully", applications, total, pagination.Page, pagination.Limit)
}
