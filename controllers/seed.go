package controllers

import (
	"os"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
)

// CreateSampleAdmin ensures at least one admin account exists so the admin
// API is reachable on a fresh install
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@filemyrti.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:     email,
		Password:  hashed,
		FirstName: "Site",
		LastName:  "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Created sample admin account: %s", email)
	return nil
}

// SeedReferenceData populates the service and state reference tables used by
// the frontend form dropdowns when they are empty
func SeedReferenceData() error {
	var count int64
	if err := config.DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		services := []models.Service{
			{Name: "New RTI Application", Slug: "new-rti-application", Description: "Draft and file a fresh RTI application with the right public authority", Fee: 499},
			{Name: "First Appeal", Slug: "first-appeal", Description: "File a first appeal when a reply is overdue or unsatisfactory", Fee: 799},
			{Name: "Second Appeal", Slug: "second-appeal", Description: "Escalate to the Information Commission", Fee: 1499},
			{Name: "Follow-up RTI", Slug: "follow-up-rti", Description: "Follow up on an earlier application", Fee: 399},
		}
		if err := config.DB.Create(&services).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded %d services", len(services))
	}

	if err := config.DB.Model(&models.State{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		names := []string{
			"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
			"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh",
			"Jammu and Kashmir", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
			"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
			"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
			"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
		}
		states := make([]models.State, 0, len(names))
		for _, name := range names {
			states = append(states, models.State{Name: name, Slug: slugify(name)})
		}
		if err := config.DB.Create(&states).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded %d states", len(states))
	}

	return nil
}

func slugify(name string) string {
	slug := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			slug = append(slug, r+('a'-'A'))
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			slug = append(slug, r)
		case r == ' ':
			slug = append(slug, '-')
		}
	}
	return string(slug)
}
