package employee

import (
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

type Response struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Department     string  `json:"department"`
	Designation    string  `json:"designation"`
	EmploymentDate string  `json:"employment_date"`
	ExitDate       *string `json:"exit_date,omitempty"`
	Status         string  `json:"status"`
}

func ToResponse(e Employee) Response {
	return Response{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Designation:    e.Designation,
		EmploymentDate: e.EmploymentDate,
		ExitDate:       e.ExitDate,
		Status:         string(e.Status),
	}
}

// Validate accumulates every problem with an employee record so a caller can
// display all of them at once.
func (e Employee) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(e.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(e.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(e.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(e.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(e.EmploymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "employment_date", Message: "must be a valid date"})
	}
	if e.Phone != nil && !validator.IsValidPhoneNumber(*e.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if e.PANNumber != nil && !validator.IsValidPAN(*e.PANNumber) {
		errs = append(errs, validator.ValidationError{Field: "pan_number", Message: "must be a valid PAN"})
	}
	if e.AadharNumber != nil && !validator.IsValidAadhar(*e.AadharNumber) {
		errs = append(errs, validator.ValidationError{Field: "aadhar_number", Message: "must be a valid Aadhar number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
