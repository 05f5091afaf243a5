package fixtures

import (
	"github.com/hrportal/payroll-backend-go/internal/domain/attendance"
	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/domain/compliance"
	"github.com/hrportal/payroll-backend-go/internal/domain/employee"
	"github.com/hrportal/payroll-backend-go/internal/domain/faq"
	"github.com/hrportal/payroll-backend-go/internal/domain/leave"
	"github.com/hrportal/payroll-backend-go/internal/domain/salary"
	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func dec(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic("failed to hash demo password: " + err.Error())
	}
	return hash
}

// ==========================================
// EMPLOYEES
// ==========================================

func GetEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:                "EMP001",
			FirstName:         "John",
			LastName:          "Doe",
			Email:             "john.doe@company.com",
			Phone:             strPtr("9876543210"),
			Department:        "Engineering",
			Designation:       "Senior Software Engineer",
			EmploymentDate:    "2020-03-15",
			Status:            employee.StatusActive,
			SalaryStructureID: "SAL001",
			PANNumber:         strPtr("ABCDE1234F"),
			AadharNumber:      strPtr("123456789012"),
		},
		{
			ID:                "EMP002",
			FirstName:         "Jane",
			LastName:          "Smith",
			Email:             "jane.smith@company.com",
			Phone:             strPtr("9876543211"),
			Department:        "Human Resources",
			Designation:       "HR Manager",
			EmploymentDate:    "2019-06-01",
			Status:            employee.StatusActive,
			SalaryStructureID: "SAL002",
		},
		{
			ID:                "EMP003",
			FirstName:         "Alice",
			LastName:          "Johnson",
			Email:             "alice.johnson@company.com",
			Department:        "Finance",
			Designation:       "Finance Manager",
			EmploymentDate:    "2018-01-10",
			Status:            employee.StatusActive,
			SalaryStructureID: "SAL003",
		},
		{
			ID:                "EMP004",
			FirstName:         "Bob",
			LastName:          "Williams",
			Email:             "bob.williams@company.com",
			Department:        "Operations",
			Designation:       "Operations Executive",
			EmploymentDate:    "2022-07-01",
			Status:            employee.StatusActive,
			SalaryStructureID: "SAL004",
		},
		{
			ID:                "EMP005",
			FirstName:         "Carol",
			LastName:          "Davis",
			Email:             "carol.davis@company.com",
			Department:        "Marketing",
			Designation:       "Marketing Specialist",
			EmploymentDate:    "2021-02-15",
			Status:            employee.StatusOnLeave,
			SalaryStructureID: "SAL005",
		},
		{
			ID:                "EMP006",
			FirstName:         "David",
			LastName:          "Brown",
			Email:             "david.brown@company.com",
			Department:        "Engineering",
			Designation:       "Software Engineer",
			EmploymentDate:    "2017-04-01",
			ExitDate:          strPtr("2025-12-31"),
			Status:            employee.StatusInactive,
			SalaryStructureID: "SAL006",
		},
	}
}

// ==========================================
// SALARY STRUCTURES
// ==========================================

func GetSalaryStructures() []salary.Structure {
	return []salary.Structure{
		{
			ID:          "SAL001",
			EmployeeID:  "EMP001",
			BasicSalary: dec(100000),
			Allowances: []salary.Component{
				{ID: "AL001", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(30000)},
				{ID: "AL002", Name: "Dearness Allowance", Type: salary.ComponentTypeEarning, Amount: dec(15000)},
				{ID: "AL003", Name: "Special Allowance", Type: salary.ComponentTypeEarning, Amount: dec(10000)},
			},
			Deductions: []salary.Component{
				{ID: "DED001", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(12000)},
				{ID: "DED002", Name: "Professional Tax", Type: salary.ComponentTypeDeduction, Amount: dec(200)},
			},
			EffectiveDate: "2024-01-01",
		},
		{
			ID:          "SAL002",
			EmployeeID:  "EMP002",
			BasicSalary: dec(80000),
			Allowances: []salary.Component{
				{ID: "AL004", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(24000)},
				{ID: "AL005", Name: "Dearness Allowance", Type: salary.ComponentTypeEarning, Amount: dec(12000)},
			},
			Deductions: []salary.Component{
				{ID: "DED003", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(9600)},
				{ID: "DED004", Name: "Professional Tax", Type: salary.ComponentTypeDeduction, Amount: dec(200)},
			},
			EffectiveDate: "2024-01-01",
		},
		{
			ID:          "SAL003",
			EmployeeID:  "EMP003",
			BasicSalary: dec(120000),
			Allowances: []salary.Component{
				{ID: "AL006", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(36000)},
				{ID: "AL007", Name: "Dearness Allowance", Type: salary.ComponentTypeEarning, Amount: dec(18000)},
				{ID: "AL008", Name: "Conveyance Allowance", Type: salary.ComponentTypeEarning, Amount: dec(5000)},
			},
			Deductions: []salary.Component{
				{ID: "DED005", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(14400)},
				{ID: "DED006", Name: "Professional Tax", Type: salary.ComponentTypeDeduction, Amount: dec(200)},
			},
			EffectiveDate: "2024-01-01",
		},
		{
			ID:          "SAL004",
			EmployeeID:  "EMP004",
			BasicSalary: dec(50000),
			Allowances: []salary.Component{
				{ID: "AL009", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(15000)},
				{ID: "AL010", Name: "Dearness Allowance", Type: salary.ComponentTypeEarning, Amount: dec(7500)},
			},
			Deductions: []salary.Component{
				{ID: "DED007", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(6000)},
				{ID: "DED008", Name: "Professional Tax", Type: salary.ComponentTypeDeduction, Amount: dec(200)},
			},
			EffectiveDate: "2024-01-01",
		},
		{
			ID:          "SAL005",
			EmployeeID:  "EMP005",
			BasicSalary: dec(75000),
			Allowances: []salary.Component{
				{ID: "AL011", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(22500)},
				{ID: "AL012", Name: "Dearness Allowance", Type: salary.ComponentTypeEarning, Amount: dec(11250)},
			},
			Deductions: []salary.Component{
				{ID: "DED009", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(9000)},
				{ID: "DED010", Name: "Professional Tax", Type: salary.ComponentTypeDeduction, Amount: dec(200)},
			},
			EffectiveDate: "2024-01-01",
		},
		{
			ID:          "SAL006",
			EmployeeID:  "EMP006",
			BasicSalary: dec(120000),
			Allowances: []salary.Component{
				{ID: "AL013", Name: "House Rent Allowance", Type: salary.ComponentTypeEarning, Amount: dec(36000)},
			},
			Deductions: []salary.Component{
				{ID: "DED011", Name: "Provident Fund", Type: salary.ComponentTypeDeduction, Amount: dec(14400)},
			},
			EffectiveDate: "2024-01-01",
			EndDate:       strPtr("2025-12-31"),
		},
	}
}

// ==========================================
// LEAVE BALANCES & REQUESTS
// ==========================================

func GetLeaveBalances() []leave.Balance {
	return []leave.Balance{
		{EmployeeID: "EMP001", LeaveType: leave.TypePaid, TotalEntitlement: 20, Used: 5, Pending: 2, Available: 13, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP001", LeaveType: leave.TypeSick, TotalEntitlement: 10, Used: 2, Pending: 0, Available: 8, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP001", LeaveType: leave.TypeCasual, TotalEntitlement: 5, Used: 1, Pending: 0, Available: 4, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP002", LeaveType: leave.TypePaid, TotalEntitlement: 20, Used: 8, Pending: 1, Available: 11, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP002", LeaveType: leave.TypeSick, TotalEntitlement: 10, Used: 3, Pending: 0, Available: 7, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP003", LeaveType: leave.TypePaid, TotalEntitlement: 20, Used: 10, Pending: 0, Available: 10, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
		{EmployeeID: "EMP006", LeaveType: leave.TypePaid, TotalEntitlement: 20, Used: 11, Pending: 0, Available: 9, YearStartDate: "2025-01-01", YearEndDate: "2025-12-31"},
	}
}

func GetLeaveRequests() []leave.Request {
	return []leave.Request{
		{
			ID:           "LVE001",
			EmployeeID:   "EMP001",
			LeaveType:    leave.TypePaid,
			StartDate:    "2025-01-09",
			EndDate:      "2025-01-09",
			RequestDate:  "2025-01-02",
			Status:       leave.RequestStatusApproved,
			Reason:       strPtr("Personal work"),
			ApprovedBy:   strPtr("EMP002"),
			ApprovalDate: strPtr("2025-01-03"),
			NumberOfDays: 1,
		},
		{
			ID:           "LVE002",
			EmployeeID:   "EMP001",
			LeaveType:    leave.TypePaid,
			StartDate:    "2025-02-17",
			EndDate:      "2025-02-18",
			RequestDate:  "2025-01-20",
			Status:       leave.RequestStatusPending,
			Reason:       strPtr("Family function"),
			NumberOfDays: 2,
		},
		{
			ID:              "LVE003",
			EmployeeID:      "EMP002",
			LeaveType:       leave.TypeSick,
			StartDate:       "2025-01-13",
			EndDate:         "2025-01-14",
			RequestDate:     "2025-01-13",
			Status:          leave.RequestStatusRejected,
			Reason:          strPtr("Fever"),
			RejectionReason: strPtr("Medical certificate missing"),
			NumberOfDays:    2,
		},
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

func GetAttendanceRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "ATT001", EmployeeID: "EMP001", Date: "2025-01-01", Status: attendance.StatusHoliday},
		{ID: "ATT002", EmployeeID: "EMP001", Date: "2025-01-02", Status: attendance.StatusPresent, CheckInTime: strPtr("08:45"), CheckOutTime: strPtr("18:00")},
		{ID: "ATT003", EmployeeID: "EMP001", Date: "2025-01-03", Status: attendance.StatusPresent, CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:15")},
		{ID: "ATT004", EmployeeID: "EMP001", Date: "2025-01-04", Status: attendance.StatusWeekend},
		{ID: "ATT005", EmployeeID: "EMP001", Date: "2025-01-05", Status: attendance.StatusWeekend},
		{ID: "ATT006", EmployeeID: "EMP001", Date: "2025-01-06", Status: attendance.StatusPresent, CheckInTime: strPtr("08:50"), CheckOutTime: strPtr("17:45")},
		{ID: "ATT007", EmployeeID: "EMP001", Date: "2025-01-07", Status: attendance.StatusPresent, CheckInTime: strPtr("09:05"), CheckOutTime: strPtr("18:00")},
		{ID: "ATT008", EmployeeID: "EMP001", Date: "2025-01-08", Status: attendance.StatusPresent, CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:00")},
		{ID: "ATT009", EmployeeID: "EMP001", Date: "2025-01-09", Status: attendance.StatusLeave},
		{ID: "ATT010", EmployeeID: "EMP001", Date: "2025-01-10", Status: attendance.StatusHalfDay, CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("13:00")},
	}
}

func GetAttendanceSummaries() []attendance.Summary {
	return []attendance.Summary{
		{EmployeeID: "EMP001", Month: "2025-01", TotalWorkingDays: 22, PresentDays: 16, AbsentDays: 2, HalfDays: 1, LeaveDays: 1, AttendancePercentage: 79.5},
		{EmployeeID: "EMP002", Month: "2025-01", TotalWorkingDays: 22, PresentDays: 19, AbsentDays: 1, HalfDays: 0, LeaveDays: 2, AttendancePercentage: 95.5},
		{EmployeeID: "EMP003", Month: "2025-01", TotalWorkingDays: 22, PresentDays: 20, AbsentDays: 0, HalfDays: 1, LeaveDays: 1, AttendancePercentage: 95.5},
	}
}

// ==========================================
// SETTLEMENTS
// ==========================================

func GetSettlements() []settlement.Settlement {
	return []settlement.Settlement{
		{
			ID:              "SETL001",
			EmployeeID:      "EMP006",
			ExitDate:        "2025-12-31",
			RequestDate:     "2025-10-01",
			Status:          settlement.StatusPending,
			PendingSalary:   dec(120000),
			LeaveEncashment: dec(50000),
			Gratuity:        dec(180000),
			OtherBenefits:   dec(0),
			TotalDeductions: dec(25000),
			TotalSettlement: dec(325000),
			Notes:           strPtr("Regular exit"),
		},
	}
}

// ==========================================
// COMPLIANCE RULES & TAX SLABS
// ==========================================

func GetComplianceRules() []compliance.Rule {
	return []compliance.Rule{
		{
			ID:            "COMP001",
			Name:          "Provident Fund (PF)",
			Jurisdiction:  "India",
			Type:          compliance.RuleTypeDeduction,
			Rule:          "12% of basic salary",
			EffectiveDate: "2024-01-01",
			Percentage:    decPtr(dec(12)),
			IsActive:      true,
		},
		{
			ID:            "COMP002",
			Name:          "Employees State Insurance (ESI)",
			Jurisdiction:  "India",
			Type:          compliance.RuleTypeDeduction,
			Rule:          "0.75% of salary if salary < 21000",
			EffectiveDate: "2024-01-01",
			Percentage:    decPtr(decimal.NewFromFloat(0.75)),
			IsActive:      true,
		},
		{
			ID:            "COMP003",
			Name:          "Professional Tax",
			Jurisdiction:  "India",
			Type:          compliance.RuleTypeDeduction,
			Rule:          "Up to Rs. 200 per month",
			EffectiveDate: "2024-01-01",
			Amount:        decPtr(dec(200)),
			IsActive:      true,
		},
		{
			ID:            "COMP004",
			Name:          "Minimum Wage",
			Jurisdiction:  "India",
			Type:          compliance.RuleTypeEarning,
			Rule:          "Minimum wage must be at least regional minimum",
			EffectiveDate: "2024-01-01",
			Amount:        decPtr(dec(18000)),
			IsActive:      true,
		},
	}
}

func GetTaxSlabs() []compliance.Slab {
	return []compliance.Slab{
		{
			ID:            "TAX001",
			Jurisdiction:  "India",
			FinancialYear: "2025-26",
			Brackets: []compliance.Bracket{
				{MinAmount: dec(0), MaxAmount: decPtr(dec(300000)), TaxRate: decimal.Zero, StandardDeduction: decPtr(dec(75000))},
				{MinAmount: dec(300000), MaxAmount: decPtr(dec(600000)), TaxRate: decimal.NewFromFloat(0.05)},
				{MinAmount: dec(600000), MaxAmount: decPtr(dec(900000)), TaxRate: decimal.NewFromFloat(0.1)},
				{MinAmount: dec(900000), MaxAmount: decPtr(dec(1200000)), TaxRate: decimal.NewFromFloat(0.15)},
				{MinAmount: dec(1200000), MaxAmount: decPtr(dec(1500000)), TaxRate: decimal.NewFromFloat(0.2)},
				{MinAmount: dec(1500000), TaxRate: decimal.NewFromFloat(0.3)},
			},
			Surcharge:   decimal.Zero,
			CessPercent: decimal.Zero,
		},
	}
}

// ==========================================
// FAQS
// ==========================================

func GetFAQs() []faq.FAQ {
	return []faq.FAQ{
		{ID: "FAQ001", Question: "How do I access my salary slip?", Answer: "You can access your salary slip by logging in to the Employee Self-Service portal and navigating to the Salary section. You'll see your current month's payslip along with previous months.", Category: "Salary", DisplayOrder: 1, IsActive: true},
		{ID: "FAQ002", Question: "How can I request leave?", Answer: "Go to the Leave section in your ESS portal, click 'Request Leave', select the dates and leave type, add a reason, and submit. Your manager will receive a notification for approval.", Category: "Leave", DisplayOrder: 2, IsActive: true},
		{ID: "FAQ003", Question: "How do I check my attendance?", Answer: "Navigate to the Attendance section in your ESS portal to view your daily attendance records and monthly summary with attendance percentage.", Category: "Attendance", DisplayOrder: 3, IsActive: true},
		{ID: "FAQ004", Question: "What is leave encashment?", Answer: "Leave encashment is the payment of cash equivalent of unused leave days. When you exit the company, your unused leave balance is converted to cash and paid as part of your full and final settlement.", Category: "Settlement", DisplayOrder: 4, IsActive: true},
		{ID: "FAQ005", Question: "How is gratuity calculated?", Answer: "Gratuity is typically calculated as 15 days of last drawn salary per year for the first 5 years, and 20 days for each year after that. Exact calculation may vary based on your employment contract.", Category: "Settlement", DisplayOrder: 5, IsActive: true},
		{ID: "FAQ006", Question: "What deductions are made from my salary?", Answer: "Common deductions include Provident Fund (PF), Professional Tax (PT), and Income Tax (if applicable). These are deducted as per government regulations and your salary structure.", Category: "Salary", DisplayOrder: 6, IsActive: true},
		{ID: "FAQ007", Question: "Can I modify my leave request after submission?", Answer: "You can modify or cancel a pending leave request before it's approved by your manager. Once approved or rejected, you cannot modify it. Contact your HR for special cases.", Category: "Leave", DisplayOrder: 7, IsActive: true},
		{ID: "FAQ008", Question: "How many days of leave am I entitled to?", Answer: "Leave entitlement depends on your designation and company policy. You can view your leave balance in the Leave section of your ESS portal. It typically includes paid leave, sick leave, and casual leave.", Category: "Leave", DisplayOrder: 8, IsActive: true},
		{ID: "FAQ009", Question: "What happens if I take leave without approval?", Answer: "Unauthorized absence is treated as absent and may impact your salary and attendance records. Always submit a leave request in advance or inform your manager immediately.", Category: "Leave", DisplayOrder: 9, IsActive: true},
		{ID: "FAQ010", Question: "How is gross salary calculated?", Answer: "Gross salary = Basic Salary + Allowances. It does not include deductions. Deductions are subtracted from gross salary to calculate net salary (take-home amount).", Category: "Salary", DisplayOrder: 10, IsActive: true},
	}
}

// ==========================================
// USERS & DEMO CREDENTIALS
// ==========================================

func GetUsers() []auth.User {
	return []auth.User{
		{ID: "EMP001", Email: "john.doe@company.com", FirstName: "John", LastName: "Doe", Role: auth.RoleEmployee},
		{ID: "EMP002", Email: "jane.smith@company.com", FirstName: "Jane", LastName: "Smith", Role: auth.RoleAdmin},
		{ID: "EMP003", Email: "alice.johnson@company.com", FirstName: "Alice", LastName: "Johnson", Role: auth.RoleAdmin},
	}
}

// GetDemoCredentials returns the fixed demo login table. Hashing happens at
// startup so no plaintext comparison is done at login time.
func GetDemoCredentials() []auth.DemoCredential {
	return []auth.DemoCredential{
		{
			Email:        "employee@company.com",
			PasswordHash: mustHash("password123"),
			Role:         auth.RoleEmployee,
			DisplayName:  "Demo Employee",
		},
		{
			Email:        "admin@company.com",
			PasswordHash: mustHash("admin123"),
			Role:         auth.RoleAdmin,
			DisplayName:  "Demo Admin",
		},
	}
}
