package salary

import (
	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComponentResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"is_percentage"`
}

func ToComponentResponses(components []Component) []ComponentResponse {
	result := make([]ComponentResponse, 0, len(components))
	for _, c := range components {
		result = append(result, ComponentResponse{
			ID:           c.ID,
			Name:         c.Name,
			Type:         string(c.Type),
			Amount:       c.Amount,
			IsPercentage: c.IsPercentage,
		})
	}
	return result
}

// Validate checks the minimal structure invariants: a positive basic salary
// and a parseable effective date.
func (s Structure) Validate() error {
	var errs validator.ValidationErrors

	if !s.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(s.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
