package payroll

import (
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// PayslipResponse is the full monthly salary breakdown for one employee.
// AnnualIncomeTax is the projected tax for the whole financial year at the
// current monthly gross, not a monthly withholding figure.
type PayslipResponse struct {
	EmployeeID      string                     `json:"employee_id"`
	EmployeeName    string                     `json:"employee_name"`
	Month           string                     `json:"month"`
	BasicSalary     decimal.Decimal            `json:"basic_salary"`
	Allowances      []salary.ComponentResponse `json:"allowances"`
	Deductions      []salary.ComponentResponse `json:"deductions"`
	GrossSalary     decimal.Decimal            `json:"gross_salary"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
	NetSalary       decimal.Decimal            `json:"net_salary"`
	AnnualIncomeTax decimal.Decimal            `json:"annual_income_tax"`
	EPF             decimal.Decimal            `json:"epf"`
	ESI             decimal.Decimal            `json:"esi"`
}

// SocialSecurityResponse carries the statutory contribution figures computed
// from a salary structure.
type SocialSecurityResponse struct {
	EPF decimal.Decimal `json:"epf"`
	ESI decimal.Decimal `json:"esi"`
}
