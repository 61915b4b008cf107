package controllers

import (
	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/services
func ListServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&services).Error; err != nil {
		utils.LogError("Failed to fetch services: %v", err)
		utils.InternalServerError(c, "Failed to fetch services", nil)
		return
	}
	utils.Success(c, "Services retrieved successfully", services)
}

// GET /v1/states
func ListStates(c *gin.Context) {
	var states []models.State
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&states).Error; err != nil {
		utils.LogError("Failed to fetch states: %v", err)
		utils.InternalServerError(c, "Failed to fetch states", nil)
		return
	}
	utils.Success(c, "States retrieved successfully", states)
}
