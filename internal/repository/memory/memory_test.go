package memory

import (
	"context"
	"testing"

	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
	"github.com/hrportal/payroll-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(fixtures.GetEmployees())

	t.Run("get by id", func(t *testing.T) {
		emp, err := repo.GetByID(ctx, "EMP001")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", emp.FullName())
		assert.Equal(t, "SAL001", emp.SalaryStructureID)
	})

	t.Run("get by id not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "EMP999")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("get by email", func(t *testing.T) {
		emp, err := repo.GetByEmail(ctx, "jane.smith@company.com")
		require.NoError(t, err)
		assert.Equal(t, "EMP002", emp.ID)
	})

	t.Run("list preserves source order", func(t *testing.T) {
		emps, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, emps, 6)
		assert.Equal(t, "EMP001", emps[0].ID)
		assert.Equal(t, "EMP006", emps[5].ID)
	})

	t.Run("list by status", func(t *testing.T) {
		emps, err := repo.ListByStatus(ctx, employee.StatusInactive)
		require.NoError(t, err)
		require.Len(t, emps, 1)
		assert.Equal(t, "EMP006", emps[0].ID)
	})

	t.Run("list by department", func(t *testing.T) {
		emps, err := repo.ListByDepartment(ctx, "Engineering")
		require.NoError(t, err)
		assert.Len(t, emps, 2)
	})
}

func TestSalaryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSalaryRepository(fixtures.GetSalaryStructures())

	t.Run("get by employee id", func(t *testing.T) {
		s, err := repo.GetByEmployeeID(ctx, "EMP001")
		require.NoError(t, err)
		assert.Equal(t, "SAL001", s.ID)
		assert.True(t, s.BasicSalary.Equal(decimal.NewFromInt(100000)))
		assert.Len(t, s.Allowances, 3)
		assert.Len(t, s.Deductions, 2)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByEmployeeID(ctx, "EMP999")
		assert.ErrorIs(t, err, salary.ErrStructureNotFound)
	})
}

func TestLeaveRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRepository(fixtures.GetLeaveBalances(), fixtures.GetLeaveRequests())

	t.Run("list balances all types", func(t *testing.T) {
		balances, err := repo.ListBalances(ctx, "EMP001", nil)
		require.NoError(t, err)
		require.Len(t, balances, 3)
		assert.Equal(t, leave.TypePaid, balances[0].LeaveType)
		assert.Equal(t, 13.0, balances[0].Available)
	})

	t.Run("list balances filtered by type", func(t *testing.T) {
		sick := leave.TypeSick
		balances, err := repo.ListBalances(ctx, "EMP001", &sick)
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, 8.0, balances[0].Available)
	})

	t.Run("available matches the derivation", func(t *testing.T) {
		balances, err := repo.ListBalances(ctx, "EMP001", nil)
		require.NoError(t, err)
		for _, b := range balances {
			assert.Equal(t, b.ComputeAvailable(), b.Available)
		}
	})

	t.Run("no balances yields empty list", func(t *testing.T) {
		balances, err := repo.ListBalances(ctx, "EMP004", nil)
		require.NoError(t, err)
		assert.Empty(t, balances)
	})

	t.Run("list requests", func(t *testing.T) {
		requests, err := repo.ListRequests(ctx, "EMP001")
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, leave.RequestStatusApproved, requests[0].Status)
	})
}

func TestAttendanceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(fixtures.GetAttendanceRecords(), fixtures.GetAttendanceSummaries())

	t.Run("list records for month", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, "EMP001", "2025-01")
		require.NoError(t, err)
		assert.Len(t, records, 10)
	})

	t.Run("month filter excludes other months", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, "EMP001", "2025-02")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("get summary", func(t *testing.T) {
		summary, err := repo.GetSummary(ctx, "EMP002", "2025-01")
		require.NoError(t, err)
		assert.Equal(t, 19, summary.PresentDays)
		assert.Equal(t, 95.5, summary.AttendancePercentage)
	})

	t.Run("summary not found", func(t *testing.T) {
		_, err := repo.GetSummary(ctx, "EMP001", "2024-12")
		assert.ErrorIs(t, err, attendance.ErrSummaryNotFound)
	})
}

func TestSettlementRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get seeded settlement", func(t *testing.T) {
		repo := NewSettlementRepository(fixtures.GetSettlements())
		s, err := repo.GetByID(ctx, "SETL001")
		require.NoError(t, err)
		assert.Equal(t, "EMP006", s.EmployeeID)
		assert.Equal(t, settlement.StatusPending, s.Status)
		assert.True(t, s.TotalSettlement.Equal(decimal.NewFromInt(325000)))
	})

	t.Run("insert rejects duplicate id", func(t *testing.T) {
		repo := NewSettlementRepository(fixtures.GetSettlements())
		_, err := repo.Insert(ctx, settlement.Settlement{ID: "SETL001"})
		assert.ErrorIs(t, err, settlement.ErrSettlementAlreadyExists)
	})

	t.Run("update replaces the stored row", func(t *testing.T) {
		repo := NewSettlementRepository(fixtures.GetSettlements())

		s, err := repo.GetByID(ctx, "SETL001")
		require.NoError(t, err)
		s.Status = settlement.StatusCalculated

		require.NoError(t, repo.Update(ctx, s))

		updated, err := repo.GetByID(ctx, "SETL001")
		require.NoError(t, err)
		assert.Equal(t, settlement.StatusCalculated, updated.Status)
	})

	t.Run("update unknown id", func(t *testing.T) {
		repo := NewSettlementRepository(nil)
		err := repo.Update(ctx, settlement.Settlement{ID: "SETL999"})
		assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
	})

	t.Run("list by status", func(t *testing.T) {
		repo := NewSettlementRepository(fixtures.GetSettlements())
		pending, err := repo.ListByStatus(ctx, settlement.StatusPending)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		paid, err := repo.ListByStatus(ctx, settlement.StatusPaid)
		require.NoError(t, err)
		assert.Empty(t, paid)
	})
}

func TestComplianceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewComplianceRepository(fixtures.GetComplianceRules(), fixtures.GetTaxSlabs())

	t.Run("list rules by type", func(t *testing.T) {
		rules, err := repo.ListRulesByType(ctx, compliance.RuleTypeDeduction)
		require.NoError(t, err)
		require.Len(t, rules, 3)
		assert.Equal(t, "COMP001", rules[0].ID)
	})

	t.Run("get slab", func(t *testing.T) {
		slab, err := repo.GetSlab(ctx, "India", "2025-26")
		require.NoError(t, err)
		require.Len(t, slab.Brackets, 6)
		require.NotNil(t, slab.Brackets[0].StandardDeduction)
		assert.True(t, slab.Brackets[0].StandardDeduction.Equal(decimal.NewFromInt(75000)))
		assert.Nil(t, slab.Brackets[5].MaxAmount)
	})

	t.Run("slab not found", func(t *testing.T) {
		_, err := repo.GetSlab(ctx, "India", "2019-20")
		assert.ErrorIs(t, err, compliance.ErrSlabNotFound)
	})
}

func TestFAQRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFAQRepository(fixtures.GetFAQs())

	t.Run("list sorted by display order", func(t *testing.T) {
		faqs, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, faqs, 10)
		for i := 1; i < len(faqs); i++ {
			assert.LessOrEqual(t, faqs[i-1].DisplayOrder, faqs[i].DisplayOrder)
		}
	})

	t.Run("list filtered by category", func(t *testing.T) {
		faqs, err := repo.List(ctx, "salary")
		require.NoError(t, err)
		require.Len(t, faqs, 3)
		for _, f := range faqs {
			assert.Equal(t, "Salary", f.Category)
		}
	})

	t.Run("search matches question and answer text", func(t *testing.T) {
		faqs, err := repo.Search(ctx, "gratuity")
		require.NoError(t, err)
		require.NotEmpty(t, faqs)
		assert.Equal(t, "FAQ005", faqs[0].ID)
	})

	t.Run("blank query lists everything", func(t *testing.T) {
		faqs, err := repo.Search(ctx, "   ")
		require.NoError(t, err)
		assert.Len(t, faqs, 10)
	})

	t.Run("categories sorted and distinct", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Attendance", "Leave", "Salary", "Settlement"}, categories)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(fixtures.GetUsers())

	t.Run("get by email", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "jane.smith@company.com")
		require.NoError(t, err)
		assert.Equal(t, "EMP002", user.ID)
		assert.True(t, user.Role.IsAdmin())
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "ghost@company.com")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("list", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(fixtures.GetDemoCredentials())

	t.Run("lookup is case insensitive on email", func(t *testing.T) {
		cred, err := repo.GetByEmail(ctx, "Employee@Company.com")
		require.NoError(t, err)
		assert.NotEmpty(t, cred.PasswordHash)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@company.com")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
