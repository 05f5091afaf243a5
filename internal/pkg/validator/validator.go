package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// PAN validation (Indian permanent account number): five letters, four
// digits, one letter. Case-insensitive on input.
var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

func IsValidPAN(pan string) bool {
	return panRegex.MatchString(strings.ToUpper(pan))
}

// Aadhar validation (Indian ID): exactly 12 digits.
var aadharRegex = regexp.MustCompile(`^[0-9]{12}$`)

func IsValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(aadhar)
}

// Phone number validation (Indian mobile): 10 digits starting 6-9, after
// stripping separators.
var (
	phoneRegex    = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(nonDigitRegex.ReplaceAllString(phone, ""))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateRange reports whether both dates parse and start is strictly
// before end.
func IsValidDateRange(startDate, endDate string) bool {
	start, ok := IsValidDate(startDate)
	if !ok {
		return false
	}
	end, ok := IsValidDate(endDate)
	if !ok {
		return false
	}
	return start.Before(end)
}

// Month token validation ("YYYY-MM")
func IsValidMonth(monthStr string) bool {
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
