package routes

import (
	"github.com/filemyrti/rti-backend/controllers"
	"github.com/filemyrti/rti-backend/middleware"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	v1 := router.Group("/v1")
	{
		// Reference data for the frontend form dropdowns
		v1.GET("/services", controllers.ListServices)
		v1.GET("/states", controllers.ListStates)

		// Public lead/content forms
		v1.POST("/consultations", controllers.CreateConsultation)
		v1.POST("/callbacks", controllers.CreateCallbackRequest)
		v1.POST("/contact", controllers.CreateContactMessage)
		v1.POST("/careers", controllers.CreateCareerApplication)
		v1.POST("/newsletter/subscribe", controllers.SubscribeNewsletter)

		// RTI application submission (public, optionally post-payment)
		v1.POST("/rti-applications/public", controllers.CreateRTIApplicationPublic)

		// Payment gateway flow
		payments := v1.Group("/payments")
		{
			payments.POST("/orders", controllers.CreatePaymentOrder)
			payments.POST("/verify", controllers.VerifyPayment)
			payments.GET("/orders/:orderId", controllers.GetOrderStatus)
		}

		// Admin API
		admin := v1.Group("/admin")
		{
			admin.POST("/login", controllers.AdminLogin)

			protected := admin.Group("")
			protected.Use(middleware.AdminAuthMiddleware())
			{
				protected.GET("/rti-applications", controllers.ListRTIApplications)
				protected.GET("/rti-applications/:id", controllers.GetRTIApplication)
				protected.PATCH("/rti-applications/:id/status", controllers.UpdateRTIApplicationStatus)
				protected.GET("/rti-applications/:id/acknowledgement", controllers.DownloadAcknowledgement)
				protected.GET("/payment-recoveries", controllers.ListPaymentRecoveries)

				protected.GET("/consultations", controllers.ListConsultations)
				protected.GET("/callbacks", controllers.ListCallbackRequests)
				protected.GET("/contact-messages", controllers.ListContactMessages)
				protected.GET("/career-applications", controllers.ListCareerApplications)
				protected.GET("/newsletter-subscribers", controllers.ListNewsletterSubscribers)
				protected.GET("/leads/export", controllers.DownloadLeadsExcel)
			}
		}
	}

	return router
}
