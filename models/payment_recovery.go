package models

import (
	"gorm.io/gorm"
)

// PaymentRecovery captures everything known about a captured payment whose
// RTI application failed to persist, so an operator can reconcile the charge
// by hand. Rows are written at-least-once: a retried failing request may
// produce more than one row for the same payment id.
type PaymentRecovery struct {
	gorm.Model
	PaymentID    string `gorm:"index;not null" json:"payment_id"`
	OrderID      string `gorm:"not null" json:"order_id"`
	ServiceID    uint   `json:"service_id"`
	StateID      uint   `json:"state_id"`
	FullName     string `json:"full_name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	RTIQuery     string `gorm:"type:text" json:"rti_query"`
	Address      string `gorm:"type:text" json:"address"`
	Pincode      string `json:"pincode"`
	ErrorMessage string `gorm:"type:text" json:"error_message"`
	RequestBody  string `gorm:"type:text" json:"request_body"`
}
