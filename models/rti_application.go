package models

import (
	"gorm.io/gorm"
)

// RTI application statuses
const (
	RTIStatusPending    = "pending"
	RTIStatusSubmitted  = "submitted"
	RTIStatusInProgress = "in_progress"
	RTIStatusCompleted  = "completed"
	RTIStatusRejected   = "rejected"
)

// ValidRTIStatuses lists every status an admin may set on an application
var ValidRTIStatuses = []string{
	RTIStatusPending,
	RTIStatusSubmitted,
	RTIStatusInProgress,
	RTIStatusCompleted,
	RTIStatusRejected,
}

// IsValidRTIStatus reports whether status is part of the application lifecycle
func IsValidRTIStatus(status string) bool {
	for _, s := range ValidRTIStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// RTIApplication is the business record created after an applicant submits
// the RTI filing form, optionally referencing a completed payment
type RTIApplication struct {
	gorm.Model
	FullName  string  `gorm:"not null" json:"full_name"`
	Mobile    string  `gorm:"not null" json:"mobile"`
	Email     string  `gorm:"not null" json:"email"`
	Address   string  `gorm:"type:text;not null" json:"address"`
	Pincode   string  `gorm:"not null" json:"pincode"`
	RTIQuery  string  `gorm:"type:text" json:"rti_query"`
	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StateID   uint    `gorm:"not null" json:"state_id"`
	State     State   `json:"state,omitempty" gorm:"foreignKey:StateID"`
	PaymentID string  `gorm:"index" json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Status    string  `gorm:"default:'pending'" json:"status"`
}
