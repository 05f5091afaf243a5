package payroll

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

type Service interface {
	// GrossSalary is basic plus every allowance, flat amounts only.
	GrossSalary(structure salary.Structure) decimal.Decimal

	// TotalDeductions is the sum of the structure's deduction components.
	TotalDeductions(structure salary.Structure) decimal.Decimal

	// NetSalary is gross minus deductions, floored at zero.
	NetSalary(structure salary.Structure) decimal.Decimal

	// LeaveImpact prices unpaid leave days at basic divided by the month's
	// working-day count, rounded to two decimals.
	LeaveImpact(basicSalary decimal.Decimal, leaveDays float64, workingDays int) decimal.Decimal

	// IncomeTax projects the annual tax owed at the given monthly gross using
	// the configured jurisdiction's slab.
	IncomeTax(ctx context.Context, monthlyGross decimal.Decimal) (decimal.Decimal, error)

	// SocialSecurity computes EPF on basic and ESI on gross.
	SocialSecurity(structure salary.Structure) SocialSecurityResponse

	// Payslip assembles the complete breakdown for an employee and month.
	Payslip(ctx context.Context, employeeID, month string) (PayslipResponse, error)
}
