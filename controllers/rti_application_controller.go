package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/filemyrti/rti-backend/config"
	"github.com/filemyrti/rti-backend/models"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

type rtiApplicationRequest struct {
	FullName  string `json:"full_name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	RTIQuery  string `json:"rti_query"`
	ServiceID uint   `json:"service_id"`
	StateID   uint   `json:"state_id"`
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
}

func validateRTIApplication(req *rtiApplicationRequest) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors
	if ok, msg := utils.ValidateFullName(req.FullName); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "full_name", Message: msg})
	}
	if ok, msg := utils.ValidateMobile(req.Mobile); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "mobile", Message: msg})
	}
	if ok, msg := utils.ValidateEmailAddress(req.Email); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: msg})
	}
	if ok, msg := utils.ValidateAddress(req.Address); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "address", Message: msg})
	}
	if ok, msg := utils.ValidatePincode(req.Pincode); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "pincode", Message: msg})
	}
	if ok, msg := utils.ValidateRTIQuery(req.RTIQuery); !ok {
		errs = append(errs, utils.FieldValidationError{Field: "rti_query", Message: msg})
	}
	return errs
}

// POST /v1/rti-applications/public
//
// Persists the application and, when persistence fails after a completed
// payment, writes a PaymentRecovery row so the charge can be reconciled by
// hand. The recovery write is best-effort: its own failure is logged and the
// original persistence error is what the caller sees.
func CreateRTIApplicationPublic(c *gin.Context) {
	utils.LogInfo("CreateRTIApplicationPublic called")

	// Keep the raw body around: it goes into the recovery record verbatim
	// when post-payment persistence fails.
	rawBody, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read request body: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	var req rtiApplicationRequest
	if err := json.Unmarshal(rawBody, &req); err != nil {
		utils.LogError("Invalid RTI application request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if errs := validateRTIApplication(&req); len(errs) > 0 {
		utils.LogError("RTI application validation failed: %v", errs.Error())
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ServiceID).Error; err != nil {
		utils.LogError("Service not found for ID: %d", req.ServiceID)
		utils.NotFound(c, "Selected service not found")
		return
	}
	var state models.State
	if err := config.DB.First(&state, req.StateID).Error; err != nil {
		utils.LogError("State not found for ID: %d", req.StateID)
		utils.NotFound(c, "Selected state not found")
		return
	}

	application := models.RTIApplication{
		FullName:  utils.SanitizeString(req.FullName),
		Mobile:    req.Mobile,
		Email:     req.Email,
		Address:   utils.SanitizeString(req.Address),
		Pincode:   req.Pincode,
		RTIQuery:  utils.SanitizeString(req.RTIQuery),
		ServiceID: req.ServiceID,
		StateID:   req.StateID,
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Status:    models.RTIStatusPending,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		utils.LogError("Failed to persist RTI application: %v", err)
		if req.PaymentID != "" && req.OrderID != "" {
			writePaymentRecovery(&req, string(rawBody), err.Error())
		}
		utils.InternalServerError(c, "Failed to submit RTI application", err.Error())
		return
	}
	utils.LogInfo("Created RTI application ID: %d for service: %s", application.ID, service.Name)

	utils.DispatchNotification(utils.NotificationJob{
		Label: "RTI Application",
		Fields: map[string]string{
			"Application ID": strconv.FormatUint(uint64(application.ID), 10),
			"Name":           application.FullName,
			"Mobile":         application.Mobile,
			"Email":          application.Email,
			"Service":        service.Name,
			"State":          state.Name,
			"Payment ID":     application.PaymentID,
		},
	})

	utils.Created(c, "RTI application submitted successfully", gin.H{
		"id":         application.ID,
		"status":     application.Status,
		"service":    service.Name,
		"state":      state.Name,
		"payment_id": application.PaymentID,
	})
}

// writePaymentRecovery records everything known about a paid-for application
// that failed to persist. Failures here must never mask the original error,
// so they are logged and swallowed.
func writePaymentRecovery(req *rtiApplicationRequest, rawBody, errorMessage string) {
	recovery := models.PaymentRecovery{
		PaymentID:    req.PaymentID,
		OrderID:      req.OrderID,
		ServiceID:    req.ServiceID,
		StateID:      req.StateID,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		RTIQuery:     req.RTIQuery,
		Address:      req.Address,
		Pincode:      req.Pincode,
		ErrorMessage: errorMessage,
		RequestBody:  rawBody,
	}
	if err := config.DB.Create(&recovery).Error; err != nil {
		utils.LogError("Failed to write payment recovery for payment ID: %s: %v", req.PaymentID, err)
		return
	}
	utils.LogInfo("Wrote payment recovery record for payment ID: %s, order ID: %s", req.PaymentID, req.OrderID)
}
