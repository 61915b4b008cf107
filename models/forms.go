package models

import (
	"gorm.io/gorm"
)

// Consultation is a request for a free consultation from a landing page form
type Consultation struct {
	gorm.Model
	FullName  string `gorm:"not null" json:"full_name"`
	Mobile    string `gorm:"not null" json:"mobile"`
	Email     string `json:"email"`
	ServiceID *uint  `json:"service_id"`
	StateID   *uint  `json:"state_id"`
	Message   string `json:"message"`
}

// CallbackRequest is a "call me back" form submission
type CallbackRequest struct {
	gorm.Model
	FullName      string `gorm:"not null" json:"full_name"`
	Mobile        string `gorm:"not null" json:"mobile"`
	PreferredTime string `json:"preferred_time"`
}

// ContactMessage is a contact-page form submission
type ContactMessage struct {
	gorm.Model
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Mobile   string `json:"mobile"`
	Subject  string `gorm:"not null" json:"subject"`
	Message  string `gorm:"type:text;not null" json:"message"`
}

// CareerApplication is a careers-page submission; resumes are linked, not uploaded
type CareerApplication struct {
	gorm.Model
	FullName   string `gorm:"not null" json:"full_name"`
	Email      string `gorm:"not null" json:"email"`
	Mobile     string `gorm:"not null" json:"mobile"`
	Position   string `gorm:"not null" json:"position"`
	Experience string `json:"experience"`
	ResumeURL  string `json:"resume_url"`
}

// NewsletterSubscriber holds a newsletter opt-in, unique per email
type NewsletterSubscriber struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}
