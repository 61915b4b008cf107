package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString escapes HTML special characters and strips any tags from
// free-text form input before it is persisted
func SanitizeString(input string) string {
	sanitized := html.EscapeString(strings.TrimSpace(input))
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateFullName checks the applicant name length bounds
func ValidateFullName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false, "Full name must be at least 2 characters"
	}
	if len(name) > 100 {
		return false, "Full name must not exceed 100 characters"
	}
	return true, ""
}

// ValidateMobile checks for a 10-digit Indian mobile number
func ValidateMobile(mobile string) (bool, string) {
	if mobile == "" {
		return false, "Mobile number is required"
	}
	if !mobileRegex.MatchString(mobile) {
		return false, "Mobile number must be a valid 10-digit Indian number"
	}
	return true, ""
}

// ValidateEmailAddress checks the email format
func ValidateEmailAddress(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Email address is not valid"
	}
	return true, ""
}

// ValidateAddress checks the postal address length bounds
func ValidateAddress(address string) (bool, string) {
	address = strings.TrimSpace(address)
	if len(address) < 10 {
		return false, "Address must be at least 10 characters"
	}
	if len(address) > 500 {
		return false, "Address must not exceed 500 characters"
	}
	return true, ""
}

// ValidatePincode checks for a 6-digit Indian postal code
func ValidatePincode(pincode string) (bool, string) {
	if !pincodeRegex.MatchString(pincode) {
		return false, "Pincode must be a valid 6-digit postal code"
	}
	return true, ""
}

// ValidateRTIQuery checks the optional query text length
func ValidateRTIQuery(query string) (bool, string) {
	if len(query) > 5000 {
		return false, "RTI query must not exceed 5000 characters"
	}
	return true, ""
}
