package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("employee@company.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("spaces in@mail.com"))
}

func TestIsValidPAN(t *testing.T) {
	assert.True(t, IsValidPAN("ABCDE1234F"))
	assert.True(t, IsValidPAN("abcde1234f"), "lowercase input is folded")
	assert.False(t, IsValidPAN("ABCD1234EF"))
	assert.False(t, IsValidPAN("ABCDE12345"))
	assert.False(t, IsValidPAN(""))
}

func TestIsValidAadhar(t *testing.T) {
	assert.True(t, IsValidAadhar("123456789012"))
	assert.False(t, IsValidAadhar("12345678901"))
	assert.False(t, IsValidAadhar("1234567890123"))
	assert.False(t, IsValidAadhar("12345678901a"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("98765-43210"), "separators stripped")
	assert.False(t, IsValidPhoneNumber("1234567890"), "must start with 6-9")
	assert.False(t, IsValidPhoneNumber("98765"))
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange("2025-01-01", "2025-01-02"))
	assert.False(t, IsValidDateRange("2025-01-02", "2025-01-01"))
	assert.False(t, IsValidDateRange("2025-01-01", "2025-01-01"), "start must be strictly before end")
	assert.False(t, IsValidDateRange("bad", "2025-01-01"))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-1"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "department", Message: "is required"},
	}
	assert.Equal(t, "email: is required; department: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":      "is required",
		"department": "is required",
	}, errs.ToMap())
}
