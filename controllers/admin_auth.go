package controllers

import (
	"time"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/admin/login
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin login failed - no account for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Admin login failed - wrong password for admin ID: %d", admin.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive admin attempted login: %d", admin.ID)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to generate token for admin ID: %d: %v", admin.ID, err)
		utils.InternalServerError(c, "Failed to generate session token", nil)
		return
	}

	if err := config.DB.Model(&admin).Update("last_login", time.Now()).Error; err != nil {
		utils.LogError("Failed to update last login for admin ID: %d: %v", admin.ID, err)
	}

	utils.LogInfo("Admin %d logged in", admin.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
		},
	})
}
