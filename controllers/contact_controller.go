package controllers

import (
	"strings"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/contact
func CreateContactMessage(c *gin.Context) {
	utils.LogInfo("CreateContactMessage called")

	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid contact request: %v", err)
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
	if req.Mobile != "" {
		if ok, msg := utils.ValidateMobile(req.Mobile); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "mobile", Message: msg})
		}
	}
	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "subject", Message: "Subject is required"})
	}
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "message", Message: "Message is required"})
	}
	if len(errs) > 0 {
		utils.LogError("Contact message validation failed: %v", errs.Error())
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	contact := models.ContactMessage{
		FullName: utils.SanitizeString(req.FullName),
		Email:    req.Email,
		Mobile:   req.Mobile,
		Subject:  utils.SanitizeString(req.Subject),
		Message:  utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		utils.LogError("Failed to persist contact message: %v", err)
		utils.InternalServerError(c, "Failed to submit contact message", nil)
		return
	}
	utils.LogInfo("Created contact message ID: %d", contact.ID)

	utils.DispatchNotification(utils.NotificationJob{
		Label: "Contact Message",
		Fields: map[string]string{
			"Name":    contact.FullName,
			"Email":   contact.Email,
			"Mobile":  contact.Mobile,
			"Subject": contact.Subject,
			"Message": contact.Message,
		},
	})

	utils.Created(c, "Message sent successfully", gin.H{"id": contact.ID})
}

// GET /v1/admin/contact-messages
func ListContactMessages(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count contact messages: %v", err)
		utils.InternalServerError(c, "Failed to fetch contact messages", nil)
		return
	}

	var contacts []models.ContactMessage
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&contacts).Error; err != nil {
		utils.LogError("Failed to fetch contact messages: %v", err)
		utils.InternalServerError(c, "Failed to fetch contact messages", nil)
		return
	}

	utils.SuccessWithPagination(c, "Contact messages retrieved successfully", contacts, total, pagination.Page, pagination.Limit)
}
