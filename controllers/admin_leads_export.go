package controllers

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /v1/admin/leads/export
//
// Admin: download consultations, callback requests and contact messages as
// an Excel workbook, one sheet per form
func DownloadLeadsExcel(c *gin.Context) {
	utils.LogInfo("DownloadLeadsExcel called")

	days := 30
	if d, err := strconv.Atoi(c.DefaultQuery("days", "30")); err == nil && d > 0 {
		days = d
	}
	since := time.Now().AddDate(0, 0, -days)
	utils.LogDebug("Exporting leads since %s", since.Format("2006-01-02"))

	file := xlsx.NewFile()

	var consultations []models.Consultation
	if err := config.DB.Where("created_at >= ?", since).Order("created_at DESC").Find(&consultations).Error; err != nil {
		utils.LogError("Failed to fetch consultations for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch leads", nil)
		return
	}
	sheet, err := file.AddSheet("Consultations")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	addHeaderRow(sheet, []string{"ID", "Date", "Name", "Mobile", "Email", "Message"})
	for _, lead := range consultations {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(lead.ID))
		row.AddCell().SetString(lead.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(lead.FullName)
		row.AddCell().SetString(lead.Mobile)
		row.AddCell().SetString(lead.Email)
		row.AddCell().SetString(lead.Message)
	}

	var callbacks []models.CallbackRequest
	if err := config.DB.Where("created_at >= ?", since).Order("created_at DESC").Find(&callbacks).Error; err != nil {
		utils.LogError("Failed to fetch callback requests for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch leads", nil)
		return
	}
	sheet, err = file.AddSheet("Callback Requests")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	addHeaderRow(sheet, []string{"ID", "Date", "Name", "Mobile", "Preferred Time"})
	for _, lead := range callbacks {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(lead.ID))
		row.AddCell().SetString(lead.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(lead.FullName)
		row.AddCell().SetString(lead.Mobile)
		row.AddCell().SetString(lead.PreferredTime)
	}

	var contacts []models.ContactMessage
	if err := config.DB.Where("created_at >= ?", since).Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.LogError("Failed to fetch contact messages for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch leads", nil)
		return
	}
	sheet, err = file.AddSheet("Contact Messages")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	addHeaderRow(sheet, []string{"ID", "Date", "Name", "Email", "Mobile", "Subject", "Message"})
	for _, lead := range contacts {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(lead.ID))
		row.AddCell().SetString(lead.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(lead.FullName)
		row.AddCell().SetString(lead.Email)
		row.AddCell().SetString(lead.Mobile)
		row.AddCell().SetString(lead.Subject)
		row.AddCell().SetString(lead.Message)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate export", nil)
		return
	}

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func addHeaderRow(sheet *xlsx.Sheet, headers []string) {
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}
}
