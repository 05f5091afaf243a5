package payroll

import (
	"context"

	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/domain/payroll"
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/hrportal/payroll-backend-go/internal/pkg/clock"
	"github.com/hrportal/payroll-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultWorkingDays is the standard payroll month used when no explicit
// working-day count is supplied.
const DefaultWorkingDays = 22

const (
	epfGrossPercent = 12
	esiSalaryCap    = 21000
	monthsPerYear   = 12
)

// esiGrossRate is 0.75% of gross, applicable only below the salary cap.
var esiGrossRate = decimal.NewFromFloat(0.0075)

type PayrollServiceImpl struct {
	employeeRepo   employee.Repository
	salaryRepo     salary.Repository
	complianceRepo compliance.Repository
	jurisdiction   string
	financialYear  string
	now            clock.Func
}

func NewPayrollService(
	employeeRepo employee.Repository,
	salaryRepo salary.Repository,
	complianceRepo compliance.Repository,
	jurisdiction string,
	financialYear string,
	now clock.Func,
) payroll.Service {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		complianceRepo: complianceRepo,
		jurisdiction:   jurisdiction,
		financialYear:  financialYear,
		now:            now,
	}
}

// GrossSalary implements payroll.Service. Component amounts are treated as
// flat regardless of the is_percentage flag carried from the source data.
func (s *PayrollServiceImpl) GrossSalary(structure salary.Structure) decimal.Decimal {
	gross := structure.BasicSalary
	for _, a := range structure.Allowances {
		gross = gross.Add(a.Amount)
	}
	return gross
}

// TotalDeductions implements payroll.Service.
func (s *PayrollServiceImpl) TotalDeductions(structure salary.Structure) decimal.Decimal {
	total := decimal.Zero
	for _, d := range structure.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// NetSalary implements payroll.Service.
func (s *PayrollServiceImpl) NetSalary(structure salary.Structure) decimal.Decimal {
	net := s.GrossSalary(structure).Sub(s.TotalDeductions(structure))
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// LeaveImpact implements payroll.Service.
func (s *PayrollServiceImpl) LeaveImpact(basicSalary decimal.Decimal, leaveDays float64, workingDays int) decimal.Decimal {
	if workingDays <= 0 {
		workingDays = DefaultWorkingDays
	}
	dailyRate := basicSalary.Div(decimal.NewFromInt(int64(workingDays)))
	return dailyRate.Mul(decimal.NewFromFloat(leaveDays)).Round(2)
}

// IncomeTax implements payroll.Service. The monthly gross is annualized, the
// bottom bracket's standard deduction is applied once, and each bracket taxes
// only the slice of taxable income that falls inside it. The result is the
// ANNUAL liability.
func (s *PayrollServiceImpl) IncomeTax(ctx context.Context, monthlyGross decimal.Decimal) (decimal.Decimal, error) {
	slab, err := s.complianceRepo.GetSlab(ctx, s.jurisdiction, s.financialYear)
	if err != nil {
		return decimal.Zero, err
	}

	taxable := monthlyGross.Mul(decimal.NewFromInt(monthsPerYear))
	if len(slab.Brackets) > 0 && slab.Brackets[0].StandardDeduction != nil {
		taxable = taxable.Sub(*slab.Brackets[0].StandardDeduction)
	}
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	total := decimal.Zero
	for _, b := range slab.Brackets {
		if taxable.LessThanOrEqual(b.MinAmount) {
			continue
		}
		upper := taxable
		if b.MaxAmount != nil && b.MaxAmount.LessThan(upper) {
			upper = *b.MaxAmount
		}
		band := upper.Sub(b.MinAmount)
		if band.IsPositive() {
			total = total.Add(band.Mul(b.TaxRate))
		}
	}

	return total.Round(2), nil
}

// SocialSecurity implements payroll.Service. EPF is 12% of gross. ESI is
// 0.75% of gross but only when gross is under the statutory cap; at or above
// it the contribution is zero.
func (s *PayrollServiceImpl) SocialSecurity(structure salary.Structure) payroll.SocialSecurityResponse {
	gross := s.GrossSalary(structure)

	epf := gross.Mul(decimal.NewFromInt(epfGrossPercent)).Div(decimal.NewFromInt(100)).Round(2)

	esi := decimal.Zero
	if gross.LessThan(decimal.NewFromInt(esiSalaryCap)) {
		esi = gross.Mul(esiGrossRate).Round(2)
	}

	return payroll.SocialSecurityResponse{EPF: epf, ESI: esi}
}

// Payslip implements payroll.Service. An empty month defaults to the current
// calendar month.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, employeeID, month string) (payroll.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	structure, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	if month == "" {
		month = dateutil.CurrentMonth(s.now())
	}

	gross := s.GrossSalary(structure)
	tax, err := s.IncomeTax(ctx, gross)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	social := s.SocialSecurity(structure)

	return payroll.PayslipResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName(),
		Month:           month,
		BasicSalary:     structure.BasicSalary,
		Allowances:      salary.ToComponentResponses(structure.Allowances),
		Deductions:      salary.ToComponentResponses(structure.Deductions),
		GrossSalary:     gross,
		TotalDeductions: s.TotalDeductions(structure),
		NetSalary:       s.NetSalary(structure),
		AnnualIncomeTax: tax,
		EPF:             social.EPF,
		ESI:             social.ESI,
	}, nil
}
