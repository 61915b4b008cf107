package controllers

import (
	"strings"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/newsletter/subscribe
func SubscribeNewsletter(c *gin.Context) {
	utils.LogInfo("SubscribeNewsletter called")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid newsletter request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmailAddress(email); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	// The unique index on email is the authority on duplicates: insert
	// first, and classify a failed insert whose address already exists as a
	// duplicate subscribe. A pre-insert existence check would race with
	// concurrent subscribes for the same address.
	subscriber := models.NewsletterSubscriber{Email: email}
	if err := config.DB.Create(&subscriber).Error; err != nil {
		var existing models.NewsletterSubscriber
		if config.DB.Where("email = ?", email).First(&existing).Error == nil {
			utils.LogInfo("Duplicate newsletter subscription attempt: %s", email)
			utils.Conflict(c, "Email is already subscribed", nil)
			return
		}
		utils.LogError("Failed to persist newsletter subscription: %v", err)
		utils.InternalServerError(c, "Failed to subscribe", nil)
		return
	}
	utils.LogInfo("Created newsletter subscription ID: %d", subscriber.ID)

	utils.Created(c, "Subscribed successfully", gin.H{"id": subscriber.ID})
}

// GET /v1/admin/newsletter-subscribers
func ListNewsletterSubscribers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.NewsletterSubscriber{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count newsletter subscribers: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", nil)
		return
	}

	var subscribers []models.NewsletterSubscriber
	if err := config.DB.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&subscribers).Error; err != nil {
		utils.LogError("Failed to fetch newsletter subscribers: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", nil)
		return
	}

	utils.SuccessWithPagination(c, "Subscribers retrieved successfully", subscribers, total, pagination.Page, pagination.Limit)
}
