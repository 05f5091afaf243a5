package settlement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
	"github.com/hrportal/payroll-backend-go/internal/pkg/clock"
	"github.com/hrportal/payroll-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// settlementWorkingDays is the divisor for the exit daily rate. Encashment
// and gratuity both price days at basic / 22.
const settlementWorkingDays = 22

type SettlementServiceImpl struct {
	settlementRepo settlement.Repository
	employeeRepo   employee.Repository
	salaryRepo     salary.Repository
	leaveRepo      leave.Repository
	now            clock.Func
}

func NewSettlementService(
	settlementRepo settlement.Repository,
	employeeRepo employee.Repository,
	salaryRepo salary.Repository,
	leaveRepo leave.Repository,
	now clock.Func,
) settlement.Service {
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		leaveRepo:      leaveRepo,
		now:            now,
	}
}

// GetByID implements settlement.Service.
func (s *SettlementServiceImpl) GetByID(ctx context.Context, id string) (settlement.Response, error) {
	stl, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.Response{}, err
	}
	return settlement.ToResponse(stl), nil
}

// List implements settlement.Service.
func (s *SettlementServiceImpl) List(ctx context.Context, status *settlement.Status) ([]settlement.Response, error) {
	var (
		settlements []settlement.Settlement
		err         error
	)
	if status != nil {
		settlements, err = s.settlementRepo.ListByStatus(ctx, *status)
	} else {
		settlements, err = s.settlementRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return settlement.ToResponses(settlements), nil
}

// Calculate implements settlement.Service.
func (s *SettlementServiceImpl) Calculate(ctx context.Context, req settlement.CalculateRequest, calculatedBy string) (settlement.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return settlement.Response{}, err
	}
	if emp.ExitDate == nil {
		return settlement.Response{}, settlement.ErrEmployeeNotExited
	}

	structure, err := s.salaryRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return settlement.Response{}, err
	}

	paid := leave.TypePaid
	balances, err := s.leaveRepo.ListBalances(ctx, req.EmployeeID, &paid)
	if err != nil {
		return settlement.Response{}, err
	}
	unusedLeaveDays := 0.0
	if len(balances) > 0 {
		unusedLeaveDays = balances[0].Available
	}

	years, err := dateutil.WholeYearsBetween(emp.EmploymentDate, req.ExitDate)
	if err != nil {
		return settlement.Response{}, err
	}

	pendingSalary, encashment, gratuity := computeComponents(structure.BasicSalary, unusedLeaveDays, years)

	otherBenefits := decimal.Zero
	if req.OtherBenefits != nil {
		otherBenefits = *req.OtherBenefits
	}
	totalDeductions := decimal.Zero
	if req.TotalDeductions != nil {
		totalDeductions = *req.TotalDeductions
	}

	today := s.now().Format(dateutil.DateLayout)

	stl, err := s.settlementRepo.GetByEmployeeID(ctx, req.EmployeeID)
	exists := err == nil
	if err != nil && !errors.Is(err, settlement.ErrSettlementNotFound) {
		return settlement.Response{}, err
	}
	if exists {
		if !stl.Status.CanTransitionTo(settlement.StatusCalculated) {
			return settlement.Response{}, settlement.ErrInvalidStatusTransition
		}
	} else {
		stl = settlement.Settlement{
			ID:          uuid.NewString(),
			EmployeeID:  req.EmployeeID,
			RequestDate: today,
		}
	}

	stl.ExitDate = req.ExitDate
	stl.Status = settlement.StatusCalculated
	stl.PendingSalary = pendingSalary
	stl.LeaveEncashment = encashment
	stl.Gratuity = gratuity
	stl.OtherBenefits = otherBenefits
	stl.TotalDeductions = totalDeductions
	// No floor: excess deductions surface as a negative total.
	stl.TotalSettlement = pendingSalary.Add(encashment).Add(gratuity).Add(otherBenefits).Sub(totalDeductions)
	stl.CalculatedBy = &calculatedBy
	stl.CalculationDate = &today
	if req.Notes != nil {
		stl.Notes = req.Notes
	}

	if exists {
		if err := s.settlementRepo.Update(ctx, stl); err != nil {
			return settlement.Response{}, err
		}
	} else {
		if _, err := s.settlementRepo.Insert(ctx, stl); err != nil {
			return settlement.Response{}, err
		}
	}

	return settlement.ToResponse(stl), nil
}

// Approve implements settlement.Service.
func (s *SettlementServiceImpl) Approve(ctx context.Context, id, approvedBy string) (settlement.Response, error) {
	stl, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.Response{}, err
	}
	if !stl.Status.CanTransitionTo(settlement.StatusApproved) {
		return settlement.Response{}, settlement.ErrInvalidStatusTransition
	}

	today := s.now().Format(dateutil.DateLayout)
	stl.Status = settlement.StatusApproved
	stl.ApprovedBy = &approvedBy
	stl.ApprovalDate = &today

	if err := s.settlementRepo.Update(ctx, stl); err != nil {
		return settlement.Response{}, err
	}
	return settlement.ToResponse(stl), nil
}

// MarkPaid implements settlement.Service.
func (s *SettlementServiceImpl) MarkPaid(ctx context.Context, id string) (settlement.Response, error) {
	stl, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.Response{}, err
	}
	if !stl.Status.CanTransitionTo(settlement.StatusPaid) {
		return settlement.Response{}, settlement.ErrInvalidStatusTransition
	}

	today := s.now().Format(dateutil.DateLayout)
	stl.Status = settlement.StatusPaid
	stl.PaidDate = &today

	if err := s.settlementRepo.Update(ctx, stl); err != nil {
		return settlement.Response{}, err
	}
	return settlement.ToResponse(stl), nil
}

// Cancel implements settlement.Service.
func (s *SettlementServiceImpl) Cancel(ctx context.Context, id string) (settlement.Response, error) {
	stl, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.Response{}, err
	}
	if !stl.Status.CanTransitionTo(settlement.StatusCancelled) {
		return settlement.Response{}, settlement.ErrInvalidStatusTransition
	}

	stl.Status = settlement.StatusCancelled

	if err := s.settlementRepo.Update(ctx, stl); err != nil {
		return settlement.Response{}, err
	}
	return settlement.ToResponse(stl), nil
}

// computeComponents prices the three earned components of an exit. Pending
// salary is one month of basic. Encashment and gratuity convert days to money
// at basic / 22.
func computeComponents(basicSalary decimal.Decimal, unusedLeaveDays float64, yearsOfService int) (pending, encashment, gratuity decimal.Decimal) {
	dailyRate := basicSalary.Div(decimal.NewFromInt(settlementWorkingDays))

	pending = basicSalary
	encashment = dailyRate.Mul(decimal.NewFromFloat(unusedLeaveDays)).Round(2)
	gratuity = dailyRate.Mul(decimal.NewFromInt(int64(gratuityDays(yearsOfService)))).Round(2)
	return pending, encashment, gratuity
}

// gratuityDays is 15 days per year for the first five years of service and 20
// days per year beyond that.
func gratuityDays(years int) int {
	if years <= 5 {
		return 15 * years
	}
	return 15*5 + 20*(years-5)
}
