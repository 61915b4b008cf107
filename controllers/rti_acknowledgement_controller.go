package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// GET /v1/admin/rti-applications/:id/acknowledgement
//
// DownloadAcknowledgement generates a PDF acknowledgement for an RTI
// application, used by the operations team when confirming a filing
func DownloadAcknowledgement(c *gin.Context) {
	utils.LogInfo("DownloadAcknowledgement called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid application ID", nil)
		return
	}

	var application models.RTIApplication
	if err := config.DB.Preload("Service").Preload("State").First(&application, id).Error; err != nil {
		utils.LogError("RTI application not found for acknowledgement - ID: %d", id)
		utils.NotFound(c, "RTI application not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "FileMyRTI")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "RTI Filing Assistance Service")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@filemyrti.in")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "APPLICATION ACKNOWLEDGEMENT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Application ID: "+strconv.Itoa(int(application.ID)))
	pdf.Cell(70, 8, "Date: "+application.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+application.Status)
	if application.PaymentID != "" {
		pdf.Cell(70, 8, "Payment ID: "+application.PaymentID)
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Applicant:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, application.FullName)
	pdf.Ln(6)
	pdf.Cell(100, 8, application.Email)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+application.Mobile)
	pdf.Ln(6)
	pdf.Cell(100, 8, application.Address+" - "+application.Pincode)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Filing Details:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Service: "+application.Service.Name)
	pdf.Ln(6)
	pdf.Cell(100, 8, "State: "+application.State.Name)
	pdf.Ln(8)
	if application.RTIQuery != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(100, 8, "RTI Query:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(180, 6, application.RTIQuery, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate acknowledgement PDF for application ID: %d: %v", id, err)
		utils.InternalServerError(c, "Failed to generate acknowledgement", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=rti_acknowledgement_%d.pdf", application.ID))
	c.Data(200, "application/pdf", buf.Bytes())
}
