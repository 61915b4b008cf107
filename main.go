package main

import (
	"log"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/controllers"
	"github.com/filemyrti/rti-backend/gateway"
	"github.com/filemyrti/rti-backend/routes"
	"github.com/filemyrti/rti-backend/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables; missing gateway credentials are fatal here
	// rather than on the first payment request
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Failed to initialize database: %v", err)
		log.Fatal("Failed to initialize database:", err)
	}

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Seed service/state reference tables
	if err := controllers.SeedReferenceData(); err != nil {
		utils.LogError("Failed to seed reference data: %v", err)
		log.Fatal("Failed to seed reference data:", err)
	}

	// Construct the payment gateway client once and hand it to the handlers
	client := gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	controllers.InitPaymentGateway(client, cfg.RazorpayKeySecret)

	// Start the fire-and-forget notification worker
	utils.InitNotifier(64)

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
