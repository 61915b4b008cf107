package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	ok, _ := ValidateFullName("Asha Verma")
	assert.True(t, ok)

	ok, msg := ValidateFullName("A")
	assert.False(t, ok)
	assert.Contains(t, msg, "at least 2")

	ok, _ = ValidateFullName(strings.Repeat("x", 101))
	assert.False(t, ok)
}

func TestValidateMobile(t *testing.T) {
	ok, _ := ValidateMobile("9876543210")
	assert.True(t, ok)

	for _, bad := range []string{"", "12345", "1234567890", "98765432100", "98765abc10"} {
		ok, _ := ValidateMobile(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestValidateEmailAddress(t *testing.T) {
	ok, _ := ValidateEmailAddress("user@example.com")
	assert.True(t, ok)

	for _, bad := range []string{"", "user", "user@", "user@host", "@example.com"} {
		ok, _ := ValidateEmailAddress(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestValidateAddress(t *testing.T) {
	ok, _ := ValidateAddress("12 MG Road, Bengaluru")
	assert.True(t, ok)

	ok, _ = ValidateAddress("short")
	assert.False(t, ok)

	ok, _ = ValidateAddress(strings.Repeat("x", 501))
	assert.False(t, ok)
}

func TestValidatePincode(t *testing.T) {
	ok, _ := ValidatePincode("560001")
	assert.True(t, ok)

	for _, bad := range []string{"", "05600", "0560011", "56000a", "012345"} {
		ok, _ := ValidatePincode(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestValidateRTIQuery(t *testing.T) {
	ok, _ := ValidateRTIQuery("")
	assert.True(t, ok, "query is optional")

	ok, _ = ValidateRTIQuery(strings.Repeat("x", 5001))
	assert.False(t, ok)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
}

func TestFieldValidationErrorsError(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "mobile", Message: "Mobile number is required"},
		{Field: "email", Message: "Email is required"},
	}
	assert.Equal(t, "mobile: Mobile number is required; email: Email is required", errs.Error())
}
